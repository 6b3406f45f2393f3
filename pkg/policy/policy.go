// Package policy implements capability-group policy loading and
// enforcement for Vela hosts. The core registry stays policy-free;
// filtering what Build exposes is a host concern.
package policy

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Policy defines which context-requiring capability groups a host
// exposes to scripts.
type Policy struct {
	Allowed map[string]bool
}

// File represents the JSON structure of a policy file.
type File struct {
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

// IsAllowed checks whether a capability group is permitted. A nil
// Allowed map signals "allow all".
func (p *Policy) IsAllowed(group string) bool {
	if p == nil {
		return false
	}
	if p.Allowed == nil {
		return true
	}
	return p.Allowed[group]
}

// Load loads the policy from project and user config files.
// Precedence: project (.velapolicy.json), then user
// (~/.vela/policy.json), then deny-all.
func Load(projectDir string) *Policy {
	projectPath := filepath.Join(projectDir, ".velapolicy.json")
	if f, err := loadFile(projectPath); err == nil {
		return build(f)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(homeDir, ".vela", "policy.json")
		if f, err := loadFile(userPath); err == nil {
			return build(f)
		}
	}

	return DenyAll()
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func build(f *File) *Policy {
	allowed := make(map[string]bool)
	for _, group := range f.Allow {
		allowed[group] = true
	}
	// Deny overrides allow
	for _, group := range f.Deny {
		delete(allowed, group)
	}
	return &Policy{Allowed: allowed}
}

// Build constructs a policy directly from a parsed file. Exposed for
// hosts that load policy text themselves.
func Build(f *File) *Policy {
	return build(f)
}

// AllowAll returns a policy that permits every capability group.
func AllowAll() *Policy {
	return &Policy{Allowed: nil}
}

// DenyAll returns a policy that denies every context-requiring group.
func DenyAll() *Policy {
	return &Policy{Allowed: make(map[string]bool)}
}
