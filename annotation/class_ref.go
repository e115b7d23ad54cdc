package annotation

import (
	"strings"
	"sync"

	"github.com/wippyai/classmeta/descriptor"
	"github.com/wippyai/classmeta/errors"
)

// ClassRef references a type used as an annotation parameter value, stored
// as a raw type descriptor (array dimensions plus base type, e.g.
// "[[Ljava/lang/String;"). The descriptor is parsed into a structured
// signature on first access; the parse result is cached for the life of
// the node, the resolved type never is.
type ClassRef struct {
	Descriptor string

	once   sync.Once
	sig    *descriptor.TypeSignature
	sigErr error
}

// NewClassRef creates a class reference from a type descriptor
func NewClassRef(typeDescriptor string) *ClassRef {
	return &ClassRef{Descriptor: typeDescriptor}
}

func (*ClassRef) isValue() {}

func (*ClassRef) Kind() Kind { return KindClass }

func (c *ClassRef) Unwrap() any { return c }

// TypeSignature parses the stored descriptor, caching the result.
// Concurrent callers observe the same parse outcome.
func (c *ClassRef) TypeSignature() (*descriptor.TypeSignature, error) {
	c.once.Do(func() {
		c.sig, c.sigErr = descriptor.Parse(c.Descriptor)
	})
	return c.sig, c.sigErr
}

// ResolveClass maps the parsed signature to a live type through the
// resolver context.
func (c *ClassRef) ResolveClass(r Resolver) (Type, error) {
	if r == nil {
		return nil, errors.InvalidData(errors.PhaseResolve, nil, "nil resolver context")
	}
	sig, err := c.TypeSignature()
	if err != nil {
		return nil, err
	}
	return r.InstantiateSignature(sig)
}

// canonicalText is the ordering and rendering key: the signature's textual
// form when the descriptor parses, the raw descriptor otherwise, so
// comparison stays total on malformed input.
func (c *ClassRef) canonicalText() string {
	if sig, err := c.TypeSignature(); err == nil {
		return sig.String()
	}
	return c.Descriptor
}

// String renders the signature's textual form
func (c *ClassRef) String() string {
	return c.canonicalText()
}

// Compare orders references by their parsed signature, so two descriptors
// that denormalize to the same signature compare equal
func (c *ClassRef) Compare(o *ClassRef) int {
	return strings.Compare(c.canonicalText(), o.canonicalText())
}

// Equal reports whether both references denote the same type
func (c *ClassRef) Equal(o *ClassRef) bool {
	return c.Compare(o) == 0
}
