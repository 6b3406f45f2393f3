package native

import (
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/vela-lang/vela/pkg/host"
)

// Context carries the interpreter-owned collaborators injected into
// capability groups that declare RequiresContext. The bridge invokes
// them opaquely; any asynchronous host work is awaited inside the
// collaborator before its result crosses back as a value.
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Files  host.FileStore
	HTTP   host.Client
	Now    func() time.Time
	Rand   *rand.Rand
}

// NewContext returns a context wired to the process environment.
func NewContext() *Context {
	return &Context{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Files:  host.OSFileStore{},
		HTTP:   &host.HTTPClient{Client: http.DefaultClient},
		Now:    time.Now,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
