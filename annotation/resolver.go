package annotation

import "github.com/wippyai/classmeta/descriptor"

// Resolver turns textual type and constant names into live type information.
// It is consumed, never implemented, by this package: the host collaborator
// that loaded the type space supplies one, and every resolution operation
// takes it as an explicit argument. Nothing in this package stores a
// Resolver, calls it during construction, merge, comparison, or rendering,
// or caches what it returns.
type Resolver interface {
	// ResolveType looks up a type by its dotted name.
	ResolveType(name string) (Type, error)

	// InstantiateSignature maps a parsed type signature to a live type.
	InstantiateSignature(sig *descriptor.TypeSignature) (Type, error)
}

// Type is a resolved type handle
type Type interface {
	// Name returns the dotted type name.
	Name() string

	// IsEnum reports whether the type is an enumeration.
	IsEnum() bool

	// DeclaredField looks up a declared field by name.
	DeclaredField(name string) (Field, bool)
}

// Field is a resolved field handle
type Field interface {
	// Name returns the field name.
	Name() string

	// IsEnumConstant reports whether the field is an enumeration constant.
	IsEnumConstant() bool

	// Get reads the field value; visibility rules may block the read.
	Get() (any, error)
}
