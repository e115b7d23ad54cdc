package annotation

import (
	"sort"
	"strings"
)

// Instance is one discovered occurrence of an annotation: a name plus its
// parameter values, kept sorted by the parameter order. A nil Params slice
// means "no parameters known" and is distinct from an empty list.
//
// Instances are created once per discovered occurrence, optionally mutated
// a single time by ApplyDefaults before being shared, and immutable
// thereafter. Once sharing starts they are safe for concurrent reads.
type Instance struct {
	Name   string
	Params []Param
}

// New constructs an instance, sorting the parameter list in place. This is
// the single point establishing the sort invariant; every input order
// yields the same stored sequence.
func New(name string, params []Param) *Instance {
	if params != nil {
		sortParams(params)
	}
	return &Instance{Name: name, Params: params}
}

func sortParams(params []Param) {
	sort.Slice(params, func(i, j int) bool {
		return params[i].Compare(params[j]) < 0
	})
}

// ApplyDefaults overlays the default parameter values declared on the
// annotation's defining type. Explicit values win on name collision, so
// re-applying the same default set is a no-op.
func (a *Instance) ApplyDefaults(defaults []Param) {
	if len(defaults) > 0 {
		if len(a.Params) == 0 {
			a.Params = make([]Param, len(defaults))
			copy(a.Params, defaults)
		} else {
			merged := make(map[string]Value, len(defaults)+len(a.Params))
			for _, p := range defaults {
				merged[p.Name] = p.Value
			}
			for _, p := range a.Params {
				merged[p.Name] = p.Value
			}
			a.Params = a.Params[:0]
			for name, value := range merged {
				a.Params = append(a.Params, Param{Name: name, Value: value})
			}
		}
	}
	if a.Params != nil {
		sortParams(a.Params)
	}
}

// Param returns the named parameter's value and whether it is present
func (a *Instance) Param(name string) (Value, bool) {
	for _, p := range a.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// ParamValue returns the named parameter's unwrapped value, or nil when
// the parameter is missing or absent
func (a *Instance) ParamValue(name string) any {
	v, ok := a.Param(name)
	if !ok || v == nil {
		return nil
	}
	return v.Unwrap()
}

// Compare imposes a total order: by name, then parameter lists pairwise in
// sorted order with the prefix rule (a shorter list orders first once the
// common prefix is exhausted); a nil parameter list orders strictly before
// any present one.
func (a *Instance) Compare(o *Instance) int {
	if d := strings.Compare(a.Name, o.Name); d != 0 {
		return d
	}
	if a.Params == nil || o.Params == nil {
		switch {
		case a.Params == nil && o.Params == nil:
			return 0
		case a.Params == nil:
			return -1
		default:
			return 1
		}
	}
	for i := 0; i < len(a.Params) && i < len(o.Params); i++ {
		if d := a.Params[i].Compare(o.Params[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(a.Params) < len(o.Params):
		return -1
	case len(a.Params) > len(o.Params):
		return 1
	default:
		return 0
	}
}

// Equal is defined as Compare == 0
func (a *Instance) Equal(o *Instance) bool {
	return a.Compare(o) == 0
}

// Hash computes a structural hash consistent with Equal
func (a *Instance) Hash() uint64 {
	return HashValue(a)
}

func (*Instance) isValue() {}

// Kind marks the instance as the nested-annotation variant
func (*Instance) Kind() Kind { return KindAnnotation }

func (a *Instance) Unwrap() any { return a }

// String renders the instance as @Name followed by the sorted parameters
// in parentheses when any exist. A sole parameter named "value" renders
// value-only, the conventional single-element-annotation shorthand.
func (a *Instance) String() string {
	var b strings.Builder
	a.render(&b, 0)
	return b.String()
}

func (a *Instance) render(b *strings.Builder, depth int) {
	b.WriteByte('@')
	b.WriteString(a.Name)
	if len(a.Params) == 0 {
		return
	}
	b.WriteByte('(')
	for i, p := range a.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		valueOnly := len(a.Params) == 1 && p.Name == "value"
		p.appendTo(b, !valueOnly, depth)
	}
	b.WriteByte(')')
}

// UniqueNamesSorted extracts the distinct instance names from a collection
// as an ascending lexicographic sequence with no duplicates. Empty or nil
// input yields an empty sequence.
func UniqueNamesSorted(instances []*Instance) []string {
	if len(instances) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(instances))
	names := make([]string, 0, len(instances))
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		if _, ok := seen[inst.Name]; ok {
			continue
		}
		seen[inst.Name] = struct{}{}
		names = append(names, inst.Name)
	}
	sort.Strings(names)
	return names
}
