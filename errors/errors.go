package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // value construction from raw input
	PhaseParse     Phase = "parse"     // type descriptor parsing
	PhaseResolve   Phase = "resolve"   // lazy type/constant resolution
	PhaseDecode    Phase = "decode"    // deserialization
	PhaseEncode    Phase = "encode"    // serialization
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedValue    Kind = "unsupported_value"
	KindTypeNotFound        Kind = "type_not_found"
	KindNotAnEnum           Kind = "not_an_enum"
	KindConstantNotFound    Kind = "constant_not_found"
	KindNotAConstant        Kind = "not_a_constant"
	KindAccessDenied        Kind = "access_denied"
	KindMalformedDescriptor Kind = "malformed_descriptor"
	KindInvalidData         Kind = "invalid_data"
	KindDepthExceeded       Kind = "depth_exceeded"
)

// Error is the structured error type used throughout classmeta
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.TypeName != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.TypeName != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", type ")
			b.WriteString(e.TypeName)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("type ")
			b.WriteString(e.TypeName)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the parameter path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// TypeName sets the JVM type name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedValue creates a construction error for a raw value whose shape
// matches no value variant
func UnsupportedValue(goType string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindUnsupportedValue,
		GoType: goType,
		Detail: "no matching annotation value variant",
	}
}

// TypeNotFound creates a resolution error for a type missing from the
// resolver context
func TypeNotFound(typeName string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindTypeNotFound,
		TypeName: typeName,
		Detail:   "type not present in resolver context",
	}
}

// NotAnEnum creates a resolution error for an enum constant reference whose
// declaring type is not an enumeration
func NotAnEnum(typeName string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindNotAnEnum,
		TypeName: typeName,
		Detail:   "type is not an enum",
	}
}

// ConstantNotFound creates a resolution error for a missing enum constant
func ConstantNotFound(typeName, constName string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindConstantNotFound,
		TypeName: typeName,
		Detail:   fmt.Sprintf("no field %q declared on type", constName),
	}
}

// NotAConstant creates a resolution error for a field that exists but is not
// an enum constant
func NotAConstant(typeName, constName string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindNotAConstant,
		TypeName: typeName,
		Detail:   fmt.Sprintf("field %q is not an enum constant", constName),
	}
}

// AccessDenied creates a resolution error for a field blocked by visibility
// rules
func AccessDenied(typeName, fieldName string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindAccessDenied,
		TypeName: typeName,
		Detail:   fmt.Sprintf("field %q is not accessible", fieldName),
	}
}

// MalformedDescriptor creates a parse error for a type descriptor that does
// not match the descriptor grammar
func MalformedDescriptor(descriptor string, offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedDescriptor,
		Value:  descriptor,
		Detail: fmt.Sprintf("%s at offset %d in %q", detail, offset, descriptor),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// DepthExceeded creates an error for a value nested beyond the supported depth
func DepthExceeded(phase Phase, path []string, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDepthExceeded,
		Path:   path,
		Detail: fmt.Sprintf("value nesting exceeds %d levels", limit),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
