package native_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/native"
	"github.com/vela-lang/vela/pkg/value"
)

// testContext returns a context detached from the process environment.
func testContext() *native.Context {
	return &native.Context{
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Now:    func() time.Time { return time.Unix(1700000000, 0) },
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func TestBuildKeySet(t *testing.T) {
	ns, err := native.NewRegistry().Build(testContext())
	if err != nil {
		t.Fatalf("Build failed: %s", err)
	}

	expected := []string{
		"array", "convert", "error", "file", "http", "io", "json",
		"math", "object", "random", "range", "string", "time",
		"int", "str",
	}
	for _, name := range expected {
		if _, ok := ns[name]; !ok {
			t.Errorf("namespace missing %q", name)
		}
	}
	if len(ns) != len(expected) {
		t.Errorf("namespace has %d bindings, want %d", len(ns), len(expected))
	}
}

func TestBuildIdempotent(t *testing.T) {
	reg := native.NewRegistry()
	ctx := testContext()

	first, err := reg.Build(ctx)
	if err != nil {
		t.Fatalf("first Build failed: %s", err)
	}
	second, err := reg.Build(ctx)
	if err != nil {
		t.Fatalf("second Build failed: %s", err)
	}

	keysOf := func(ns native.Namespace) []string {
		keys := make([]string, 0, len(ns))
		for k := range ns {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}

	a, b := keysOf(first), keysOf(second)
	if len(a) != len(b) {
		t.Fatalf("key sets differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("key %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestBuildWithoutContextFails(t *testing.T) {
	_, err := native.NewRegistry().Build(nil)
	if err == nil {
		t.Fatal("expected error building context-requiring modules without a context")
	}
	if kind := errors.KindOf(err); kind != errors.KindRegistration {
		t.Errorf("kind = %q, want RegistrationError", kind)
	}
}

func TestBuildFactoryFailureIsFatal(t *testing.T) {
	descriptors := []native.Descriptor{
		{Name: "GoodModule", Factory: func(*native.Context) (native.Module, error) {
			return native.Module{}, nil
		}},
		{Name: "BrokenModule", Factory: func(*native.Context) (native.Module, error) {
			return nil, fmt.Errorf("boom")
		}},
	}

	ns, err := native.NewRegistryFrom(descriptors, nil).Build(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := errors.KindOf(err); kind != errors.KindRegistration {
		t.Errorf("kind = %q, want RegistrationError", kind)
	}
	// no partial registration
	if ns != nil {
		t.Errorf("namespace should be nil on failure, got %d entries", len(ns))
	}
}

func TestBuildDuplicateNameIsFatal(t *testing.T) {
	empty := func(*native.Context) (native.Module, error) { return native.Module{}, nil }
	descriptors := []native.Descriptor{
		{Name: "EchoModule", Factory: empty},
		{Name: "Echo", Factory: empty},
	}

	_, err := native.NewRegistryFrom(descriptors, nil).Build(nil)
	if err == nil {
		t.Fatal("expected error for duplicate published name")
	}
	if kind := errors.KindOf(err); kind != errors.KindRegistration {
		t.Errorf("kind = %q, want RegistrationError", kind)
	}
}

func TestPublishedName(t *testing.T) {
	tests := []struct {
		declared string
		expected string
	}{
		{"JsonModule", "json"},
		{"IoModule", "io"},
		{"HttpGetModule", "http_get"},
		{"RangeIterators", "range_iterators"},
		{"Module", "module"},
		{"convert", "convert"},
	}

	for i, tt := range tests {
		if got := native.PublishedName(tt.declared); got != tt.expected {
			t.Errorf("test %d: PublishedName(%q) = %q, want %q", i, tt.declared, got, tt.expected)
		}
	}
}

func TestModuleBindingShape(t *testing.T) {
	ns, err := native.NewRegistry().Build(testContext())
	if err != nil {
		t.Fatalf("Build failed: %s", err)
	}

	arr, ok := ns["array"].(*value.Map)
	if !ok {
		t.Fatalf("array binding is %s, want map", value.TypeName(ns["array"]))
	}
	member, found := arr.Get(value.NewString("sort"))
	if !found {
		t.Fatal("array module missing sort")
	}
	if _, ok := member.(*value.Callable); !ok {
		t.Errorf("array.sort is %s, want function", value.TypeName(member))
	}

	if _, ok := ns["int"].(*value.Callable); !ok {
		t.Errorf("int binding is %s, want function", value.TypeName(ns["int"]))
	}
}
