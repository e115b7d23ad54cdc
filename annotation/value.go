package annotation

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/classmeta/errors"
)

// maxNestingDepth bounds recursion over value trees. Enforced at every
// construction boundary so render, compare, and hash never recurse
// unboundedly on adversarial input.
const maxNestingDepth = 64

// Kind discriminates the value union
type Kind int

const (
	KindAbsent Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindBool
	KindFloat
	KindDouble
	KindChar
	KindString
	KindArray
	KindEnum
	KindClass
	KindAnnotation
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindByte:
		return "byte"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindEnum:
		return "enum"
	case KindClass:
		return "class"
	case KindAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Value is the closed union over annotation parameter values. A nil Value
// is the absent variant: no value was supplied, which is distinct from any
// scalar zero.
type Value interface {
	isValue()

	// Kind returns the populated variant's discriminant.
	Kind() Kind

	// Unwrap returns the concrete payload. Arrays unwrap recursively into
	// []any, so a 2-D array round-trips as a slice of slices.
	Unwrap() any
}

// Byte is a signed 8-bit integer constant
type Byte int8

// Short is a signed 16-bit integer constant
type Short int16

// Int is a signed 32-bit integer constant
type Int int32

// Long is a signed 64-bit integer constant
type Long int64

// Bool is a boolean constant
type Bool bool

// Float is a single-precision float constant
type Float float32

// Double is a double-precision float constant
type Double float64

// Char is a UTF-16 code unit constant
type Char uint16

// String is a string constant
type String string

// Array is an ordered sequence of values; elements may themselves be
// arrays, enabling multi-dimensional encoding. Element kinds are not
// required to be homogeneous; enforcement, if desired, belongs to the
// producer.
type Array []Value

func (Byte) isValue()   {}
func (Short) isValue()  {}
func (Int) isValue()    {}
func (Long) isValue()   {}
func (Bool) isValue()   {}
func (Float) isValue()  {}
func (Double) isValue() {}
func (Char) isValue()   {}
func (String) isValue() {}
func (Array) isValue()  {}

func (Byte) Kind() Kind   { return KindByte }
func (Short) Kind() Kind  { return KindShort }
func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (Bool) Kind() Kind   { return KindBool }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (Char) Kind() Kind   { return KindChar }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (v Byte) Unwrap() any   { return int8(v) }
func (v Short) Unwrap() any  { return int16(v) }
func (v Int) Unwrap() any    { return int32(v) }
func (v Long) Unwrap() any   { return int64(v) }
func (v Bool) Unwrap() any   { return bool(v) }
func (v Float) Unwrap() any  { return float32(v) }
func (v Double) Unwrap() any { return float64(v) }
func (v Char) Unwrap() any   { return uint16(v) }
func (v String) Unwrap() any { return string(v) }

func (v Array) Unwrap() any {
	out := make([]any, len(v))
	for i, e := range v {
		if e != nil {
			out[i] = e.Unwrap()
		}
	}
	return out
}

// FromRaw constructs the matching union variant from an opaque raw value
// handed over by the classfile parser.
//
// Supported shapes: nil (absent), an existing Value, int8, int16, int32,
// int64, bool, float32, float64, uint16 (UTF-16 code unit), string, and
// []any (recursed per element, order preserved). Any other shape fails
// with an unsupported_value error carrying the offending Go type.
func FromRaw(raw any) (Value, error) {
	return fromRaw(raw, 0)
}

func fromRaw(raw any, depth int) (Value, error) {
	if depth > maxNestingDepth {
		return nil, errors.DepthExceeded(errors.PhaseConstruct, nil, maxNestingDepth)
	}

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Value:
		return v, nil
	case int8:
		return Byte(v), nil
	case int16:
		return Short(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Long(v), nil
	case bool:
		return Bool(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Double(v), nil
	case uint16:
		return Char(v), nil
	case string:
		return String(v), nil
	case []any:
		arr := make(Array, len(v))
		for i, e := range v {
			ev, err := fromRaw(e, depth+1)
			if err != nil {
				return nil, err
			}
			arr[i] = ev
		}
		return arr, nil
	default:
		return nil, errors.UnsupportedValue(fmt.Sprintf("%T", raw))
	}
}

// Equal reports structural equality: same variant and recursively equal
// payload. Arrays are equal iff same length and pairwise-equal elements
// in order. Two nil values are equal.
func Equal(a, b Value) bool {
	return equalValue(a, b, 0)
}

func equalValue(a, b Value, depth int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if depth > maxNestingDepth {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i], depth+1) {
				return false
			}
		}
		return true
	case *EnumRef:
		return av.Equal(b.(*EnumRef))
	case *ClassRef:
		return av.Equal(b.(*ClassRef))
	case *Instance:
		return av.Equal(b.(*Instance))
	default:
		// Scalar variants of the same kind share a comparable concrete type.
		return a == b
	}
}

// HashValue computes a structural hash consistent with Equal: the variant
// discriminant combined with the payload hash, folding array elements by
// position.
func HashValue(v Value) uint64 {
	h := fnv.New64a()
	hashValue(h, v, 0)
	return h.Sum64()
}

func hashValue(h hash.Hash64, v Value, depth int) {
	if v == nil {
		h.Write([]byte{byte(KindAbsent)})
		return
	}
	if depth > maxNestingDepth {
		return
	}
	h.Write([]byte{byte(v.Kind())})

	var buf [8]byte
	switch t := v.(type) {
	case Byte:
		binary.BigEndian.PutUint64(buf[:], uint64(int64(t)))
		h.Write(buf[:])
	case Short:
		binary.BigEndian.PutUint64(buf[:], uint64(int64(t)))
		h.Write(buf[:])
	case Int:
		binary.BigEndian.PutUint64(buf[:], uint64(int64(t)))
		h.Write(buf[:])
	case Long:
		binary.BigEndian.PutUint64(buf[:], uint64(int64(t)))
		h.Write(buf[:])
	case Bool:
		if t {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case Float:
		binary.BigEndian.PutUint64(buf[:], uint64(math.Float32bits(float32(t))))
		h.Write(buf[:])
	case Double:
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(float64(t)))
		h.Write(buf[:])
	case Char:
		binary.BigEndian.PutUint64(buf[:], uint64(t))
		h.Write(buf[:])
	case String:
		io.WriteString(h, string(t))
	case Array:
		binary.BigEndian.PutUint64(buf[:], uint64(len(t)))
		h.Write(buf[:])
		for _, e := range t {
			hashValue(h, e, depth+1)
		}
	case *EnumRef:
		io.WriteString(h, t.TypeName)
		h.Write([]byte{0})
		io.WriteString(h, t.ConstName)
	case *ClassRef:
		io.WriteString(h, t.canonicalText())
	case *Instance:
		io.WriteString(h, t.Name)
		for _, p := range t.Params {
			io.WriteString(h, p.Name)
			h.Write([]byte{0})
			hashValue(h, p.Value, depth+1)
		}
	}
}

var (
	stringEscaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`, "\r", `\r`)
	charEscaper   = strings.NewReplacer(`'`, `\'`, "\n", `\n`, "\r", `\r`)
)

// appendValue renders v in its textual form: numeric and boolean literals,
// escaped quoted strings and chars, brace-delimited arrays, Type.CONSTANT
// for enum refs, signature text for class refs, @Name(...) for nested
// instances, and "null" for absent.
func appendValue(b *strings.Builder, v Value, depth int) {
	if v == nil {
		b.WriteString("null")
		return
	}
	if depth > maxNestingDepth {
		b.WriteString("...")
		return
	}

	switch t := v.(type) {
	case Byte:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Short:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Int:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Long:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(t)))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case Double:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
	case Char:
		b.WriteByte('\'')
		charEscaper.WriteString(b, string(rune(t)))
		b.WriteByte('\'')
	case String:
		b.WriteByte('"')
		stringEscaper.WriteString(b, string(t))
		b.WriteByte('"')
	case Array:
		b.WriteByte('{')
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			appendValue(b, e, depth+1)
		}
		b.WriteByte('}')
	case *EnumRef:
		b.WriteString(t.TypeName)
		b.WriteByte('.')
		b.WriteString(t.ConstName)
	case *ClassRef:
		b.WriteString(t.canonicalText())
	case *Instance:
		t.render(b, depth+1)
	}
}

func valueText(v Value) string {
	var b strings.Builder
	appendValue(&b, v, 0)
	return b.String()
}
