package descriptor

import (
	"strings"

	"github.com/wippyai/classmeta/errors"
)

// Primitive identifies a JVM primitive base type
type Primitive byte

const (
	PrimNone    Primitive = 0
	PrimBoolean Primitive = 'Z'
	PrimByte    Primitive = 'B'
	PrimChar    Primitive = 'C'
	PrimShort   Primitive = 'S'
	PrimInt     Primitive = 'I'
	PrimLong    Primitive = 'J'
	PrimFloat   Primitive = 'F'
	PrimDouble  Primitive = 'D'
)

// String returns the Java source name of the primitive
func (p Primitive) String() string {
	switch p {
	case PrimBoolean:
		return "boolean"
	case PrimByte:
		return "byte"
	case PrimChar:
		return "char"
	case PrimShort:
		return "short"
	case PrimInt:
		return "int"
	case PrimLong:
		return "long"
	case PrimFloat:
		return "float"
	case PrimDouble:
		return "double"
	default:
		return "unknown"
	}
}

// TypeSignature is the parsed, canonical form of a type descriptor:
// a base type (primitive or dotted class name) plus array dimensions.
type TypeSignature struct {
	class string
	prim  Primitive
	dims  int
}

// Parse parses a type descriptor into a TypeSignature.
//
// Accepted forms, each optionally preceded by '[' per array dimension:
//
//	Z B C S I J F D        primitive base types
//	Ljava/lang/String;     class reference (slashes or dots)
//	java.lang.String       bare class name (slashes or dots)
func Parse(desc string) (*TypeSignature, error) {
	pos := 0
	for pos < len(desc) && desc[pos] == '[' {
		pos++
	}
	dims := pos

	rest := desc[pos:]
	if rest == "" {
		return nil, errors.MalformedDescriptor(desc, pos, "missing base type")
	}

	if len(rest) == 1 {
		switch Primitive(rest[0]) {
		case PrimBoolean, PrimByte, PrimChar, PrimShort, PrimInt, PrimLong, PrimFloat, PrimDouble:
			return &TypeSignature{prim: Primitive(rest[0]), dims: dims}, nil
		}
	}

	if rest[0] == 'L' {
		if rest[len(rest)-1] != ';' {
			return nil, errors.MalformedDescriptor(desc, len(desc)-1, "unterminated class name")
		}
		name := rest[1 : len(rest)-1]
		if name == "" {
			return nil, errors.MalformedDescriptor(desc, pos+1, "empty class name")
		}
		if strings.ContainsAny(name, ";[") {
			return nil, errors.MalformedDescriptor(desc, pos+1, "invalid character in class name")
		}
		return &TypeSignature{class: dotted(name), dims: dims}, nil
	}

	// Bare class name, already stripped of the L...; envelope.
	if strings.ContainsAny(rest, ";[") {
		return nil, errors.MalformedDescriptor(desc, pos, "invalid character in class name")
	}
	return &TypeSignature{class: dotted(rest), dims: dims}, nil
}

func dotted(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// Dims returns the number of array dimensions (0 for a non-array type)
func (s *TypeSignature) Dims() int {
	return s.dims
}

// IsPrimitive reports whether the base type is a primitive
func (s *TypeSignature) IsPrimitive() bool {
	return s.prim != PrimNone
}

// Primitive returns the primitive base type, or PrimNone for class types
func (s *TypeSignature) Primitive() Primitive {
	return s.prim
}

// ClassName returns the dotted base class name, or "" for primitive types
func (s *TypeSignature) ClassName() string {
	return s.class
}

// BaseName returns the textual base type name without array suffixes
func (s *TypeSignature) BaseName() string {
	if s.prim != PrimNone {
		return s.prim.String()
	}
	return s.class
}

// String renders the canonical textual form, e.g. "java.lang.String[][]"
func (s *TypeSignature) String() string {
	if s.dims == 0 {
		return s.BaseName()
	}
	var b strings.Builder
	b.WriteString(s.BaseName())
	for i := 0; i < s.dims; i++ {
		b.WriteString("[]")
	}
	return b.String()
}

// Equal reports whether two signatures denote the same type
func (s *TypeSignature) Equal(o *TypeSignature) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.prim == o.prim && s.class == o.class && s.dims == o.dims
}

// Compare orders signatures by their canonical textual form; nil sorts first
func (s *TypeSignature) Compare(o *TypeSignature) int {
	if s == nil || o == nil {
		switch {
		case s == o:
			return 0
		case s == nil:
			return -1
		default:
			return 1
		}
	}
	return strings.Compare(s.String(), o.String())
}
