package native

import (
	"sort"
	"strings"
	"unicode"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// Module is a built capability group: its functions keyed by name.
type Module map[string]*Fn

// Factory constructs a capability group. Groups that declared
// RequiresContext receive the interpreter context; the rest get nil.
type Factory func(ctx *Context) (Module, error)

// Descriptor is the static, compile-time metadata for one capability
// group. The descriptor list is built once and immutable thereafter.
type Descriptor struct {
	Name            string // declared name, e.g. "JsonModule"
	RequiresContext bool
	Factory         Factory
}

// Namespace is the global binding set produced by Build: capability
// groups published as maps of callables, ungrouped builtins as bare
// callables.
type Namespace map[string]value.Value

// Registry discovers capability groups from its descriptor list and
// publishes them into a namespace.
type Registry struct {
	descriptors []Descriptor
	builtins    []*Fn
}

// NewRegistry returns a registry holding the default descriptor list
// and the ungrouped builtins.
func NewRegistry() *Registry {
	return NewRegistryFrom(defaultDescriptors(), ungroupedBuiltins())
}

// NewRegistryFrom returns a registry over an explicit descriptor list.
// Embedding hosts use this to expose their own capability groups.
func NewRegistryFrom(descriptors []Descriptor, builtins []*Fn) *Registry {
	return &Registry{
		descriptors: descriptors,
		builtins:    builtins,
	}
}

// Descriptors returns the descriptor list. The slice is shared; callers
// must not mutate it.
func (r *Registry) Descriptors() []Descriptor {
	return r.descriptors
}

// Build instantiates every descriptor and publishes the results. A
// factory failure is fatal: Build returns a RegistrationError and no
// partial namespace. Build is idempotent given the same inputs and has
// no side effects beyond its return value.
func (r *Registry) Build(ctx *Context) (Namespace, error) {
	ns := make(Namespace, len(r.descriptors)+len(r.builtins))

	for _, d := range r.descriptors {
		if d.RequiresContext && ctx == nil {
			return nil, errors.NewRegistrationError("module %s requires an interpreter context", d.Name)
		}
		factoryCtx := ctx
		if !d.RequiresContext {
			factoryCtx = nil
		}
		mod, err := d.Factory(factoryCtx)
		if err != nil {
			return nil, errors.NewRegistrationError("module %s failed to construct: %s", d.Name, err)
		}
		name := PublishedName(d.Name)
		if _, taken := ns[name]; taken {
			return nil, errors.NewRegistrationError("module name %s published twice", name)
		}
		ns[name] = bindModule(mod)
	}

	for _, fn := range r.builtins {
		if _, taken := ns[fn.Name]; taken {
			return nil, errors.NewRegistrationError("builtin name %s published twice", fn.Name)
		}
		ns[fn.Name] = fn.Callable()
	}

	return ns, nil
}

// bindModule publishes a group as a map of function-name to callable.
func bindModule(mod Module) value.Value {
	names := make([]string, 0, len(mod))
	for name := range mod {
		names = append(names, name)
	}
	// deterministic binding order
	sort.Strings(names)

	entries := make([]value.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, value.Entry{
			Key: value.NewString(name),
			Val: mod[name].Callable(),
		})
	}
	return value.NewMap(entries)
}

// PublishedName derives the namespace entry for a declared group name:
// a trailing "Module" suffix is stripped, then the CamelCase remainder
// is folded to lower_snake ("JsonModule" -> "json", "HttpGetModule" ->
// "http_get"). This is the one naming policy; callers must not apply
// their own casing.
func PublishedName(declared string) string {
	name := strings.TrimSuffix(declared, "Module")
	if name == "" {
		name = declared
	}

	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
