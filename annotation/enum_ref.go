package annotation

import (
	"strings"

	"github.com/wippyai/classmeta/errors"
)

// EnumRef references a constant of a named enumeration type, stored as
// plain names rather than a loaded value. Immutable after construction.
type EnumRef struct {
	TypeName  string
	ConstName string
}

// NewEnumRef creates an enum constant reference
func NewEnumRef(typeName, constName string) *EnumRef {
	return &EnumRef{TypeName: typeName, ConstName: constName}
}

func (*EnumRef) isValue() {}

func (*EnumRef) Kind() Kind { return KindEnum }

func (e *EnumRef) Unwrap() any { return e }

// String renders the reference as Type.CONSTANT
func (e *EnumRef) String() string {
	return e.TypeName + "." + e.ConstName
}

// Compare orders references by (declaring type name, constant name)
func (e *EnumRef) Compare(o *EnumRef) int {
	if d := strings.Compare(e.TypeName, o.TypeName); d != 0 {
		return d
	}
	return strings.Compare(e.ConstName, o.ConstName)
}

// Equal reports whether both references name the same constant
func (e *EnumRef) Equal(o *EnumRef) bool {
	return e.Compare(o) == 0
}

// Resolve dereferences the constant through the resolver context. The
// declaring type must exist, be an enumeration, declare the named field as
// an accessible enum constant. Resolution is performed on every call so it
// reflects the resolver's current state; callers needing stability must
// cache the result themselves.
func (e *EnumRef) Resolve(r Resolver) (any, error) {
	if r == nil {
		return nil, errors.InvalidData(errors.PhaseResolve, nil, "nil resolver context")
	}

	t, err := r.ResolveType(e.TypeName)
	if err != nil {
		return nil, err
	}
	if !t.IsEnum() {
		return nil, errors.NotAnEnum(e.TypeName)
	}

	f, ok := t.DeclaredField(e.ConstName)
	if !ok {
		return nil, errors.ConstantNotFound(e.TypeName, e.ConstName)
	}
	if !f.IsEnumConstant() {
		return nil, errors.NotAConstant(e.TypeName, e.ConstName)
	}

	return f.Get()
}
