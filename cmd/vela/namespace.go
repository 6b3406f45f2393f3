package main

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/pkg/native"
	"github.com/vela-lang/vela/pkg/policy"
	"github.com/vela-lang/vela/pkg/value"
)

// buildNamespace builds the full namespace once and removes the
// context-requiring groups the active policy denies.
func buildNamespace(allowAll bool) (native.Namespace, error) {
	reg := native.NewRegistry()
	ns, err := reg.Build(native.NewContext())
	if err != nil {
		return nil, err
	}

	pol := policy.AllowAll()
	if !allowAll {
		pol = policy.Load(".")
	}
	for _, d := range reg.Descriptors() {
		if !d.RequiresContext {
			continue
		}
		name := native.PublishedName(d.Name)
		if !pol.IsAllowed(name) {
			delete(ns, name)
		}
	}
	return ns, nil
}

// resolve finds a callable by path: either an ungrouped builtin name
// or "group.function".
func resolve(ns native.Namespace, path string) (*value.Callable, error) {
	group, fn, grouped := strings.Cut(path, ".")

	binding, ok := ns[group]
	if !ok {
		return nil, fmt.Errorf("unknown name %q", group)
	}

	if !grouped {
		c, ok := binding.(*value.Callable)
		if !ok {
			return nil, fmt.Errorf("%q is a module; call %s.<function>", group, group)
		}
		return c, nil
	}

	mod, ok := binding.(*value.Map)
	if !ok {
		return nil, fmt.Errorf("%q is not a module", group)
	}
	member, found := mod.Get(value.NewString(fn))
	if !found {
		return nil, fmt.Errorf("module %q has no function %q", group, fn)
	}
	c, ok := member.(*value.Callable)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not callable", group, fn)
	}
	return c, nil
}
