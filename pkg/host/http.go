package host

import (
	"io"
	"net/http"
)

// Client is the HTTP collaborator: url in, status code and body text out.
type Client interface {
	Get(url string) (status int, body string, err error)
}

// HTTPClient issues requests through a net/http client.
type HTTPClient struct {
	Client *http.Client
}

// Get fetches url and returns the status code and body text.
func (c *HTTPClient) Get(url string) (int, string, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(body), nil
}
