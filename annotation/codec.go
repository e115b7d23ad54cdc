package annotation

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/classmeta/errors"
)

// Wire layout: {name, params: [{name, value}]} where value is a one-of
// encoding with exactly one populated alternative, or none for absent.
// Scalars and arrays use pointer fields so zero values and empty arrays
// survive omitempty. A resolver context is never part of the layout.

type wireInstance struct {
	Name   string      `json:"name" cbor:"name"`
	Params []wireParam `json:"params" cbor:"params"`
}

type wireParam struct {
	Name  string     `json:"name" cbor:"name"`
	Value *wireValue `json:"value,omitempty" cbor:"value,omitempty"`
}

type wireValue struct {
	Byte   *int8         `json:"byte,omitempty" cbor:"byte,omitempty"`
	Short  *int16        `json:"short,omitempty" cbor:"short,omitempty"`
	Int    *int32        `json:"int,omitempty" cbor:"int,omitempty"`
	Long   *int64        `json:"long,omitempty" cbor:"long,omitempty"`
	Bool   *bool         `json:"bool,omitempty" cbor:"bool,omitempty"`
	Float  *float32      `json:"float,omitempty" cbor:"float,omitempty"`
	Double *float64      `json:"double,omitempty" cbor:"double,omitempty"`
	Char   *uint16       `json:"char,omitempty" cbor:"char,omitempty"`
	String *string       `json:"string,omitempty" cbor:"string,omitempty"`
	Array  *[]*wireValue `json:"array,omitempty" cbor:"array,omitempty"`
	Enum   *wireEnumRef  `json:"enum,omitempty" cbor:"enum,omitempty"`
	Class  *string       `json:"class,omitempty" cbor:"class,omitempty"`
	Nested *wireInstance `json:"annotation,omitempty" cbor:"annotation,omitempty"`
}

type wireEnumRef struct {
	Type  string `json:"type" cbor:"type"`
	Const string `json:"const" cbor:"const"`
}

// EncodeJSON serializes instances in the wire layout
func EncodeJSON(instances []*Instance) ([]byte, error) {
	wire, err := toWireInstances(instances)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "marshal annotation dump")
	}
	return data, nil
}

// DecodeJSON deserializes instances from the wire layout, validating the
// one-populated-alternative invariant and the nesting depth bound
func DecodeJSON(data []byte) ([]*Instance, error) {
	var wire []*wireInstance
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "unmarshal annotation dump")
	}
	return fromWireInstances(wire)
}

// EncodeCBOR serializes instances in the wire layout as CBOR
func EncodeCBOR(instances []*Instance) ([]byte, error) {
	wire, err := toWireInstances(instances)
	if err != nil {
		return nil, err
	}
	data, err := cbor.Marshal(wire)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "marshal annotation dump")
	}
	return data, nil
}

// DecodeCBOR deserializes instances from the CBOR wire layout
func DecodeCBOR(data []byte) ([]*Instance, error) {
	var wire []*wireInstance
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "unmarshal annotation dump")
	}
	return fromWireInstances(wire)
}

// MarshalJSON implements json.Marshaler using the wire layout
func (a *Instance) MarshalJSON() ([]byte, error) {
	wire, err := toWireInstance(a, []string{a.Name}, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler using the wire layout
func (a *Instance) UnmarshalJSON(data []byte) error {
	var wire wireInstance
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "unmarshal annotation instance")
	}
	inst, err := fromWireInstance(&wire, []string{wire.Name}, 0)
	if err != nil {
		return err
	}
	*a = *inst
	return nil
}

func toWireInstances(instances []*Instance) ([]*wireInstance, error) {
	wire := make([]*wireInstance, len(instances))
	for i, inst := range instances {
		if inst == nil {
			continue
		}
		w, err := toWireInstance(inst, []string{inst.Name}, 0)
		if err != nil {
			return nil, err
		}
		wire[i] = w
	}
	return wire, nil
}

func fromWireInstances(wire []*wireInstance) ([]*Instance, error) {
	instances := make([]*Instance, len(wire))
	for i, w := range wire {
		if w == nil {
			continue
		}
		inst, err := fromWireInstance(w, []string{w.Name}, 0)
		if err != nil {
			return nil, err
		}
		instances[i] = inst
	}
	return instances, nil
}

func toWireInstance(a *Instance, path []string, depth int) (*wireInstance, error) {
	if depth > maxNestingDepth {
		return nil, errors.DepthExceeded(errors.PhaseEncode, path, maxNestingDepth)
	}
	w := &wireInstance{Name: a.Name}
	if a.Params != nil {
		w.Params = make([]wireParam, len(a.Params))
		for i, p := range a.Params {
			wv, err := toWireValue(p.Value, append(path, p.Name), depth+1)
			if err != nil {
				return nil, err
			}
			w.Params[i] = wireParam{Name: p.Name, Value: wv}
		}
	}
	return w, nil
}

func fromWireInstance(w *wireInstance, path []string, depth int) (*Instance, error) {
	if depth > maxNestingDepth {
		return nil, errors.DepthExceeded(errors.PhaseDecode, path, maxNestingDepth)
	}
	var params []Param
	if w.Params != nil {
		params = make([]Param, len(w.Params))
		for i, wp := range w.Params {
			v, err := fromWireValue(wp.Value, append(path, wp.Name), depth+1)
			if err != nil {
				return nil, err
			}
			params[i] = Param{Name: wp.Name, Value: v}
		}
	}
	return New(w.Name, params), nil
}

func toWireValue(v Value, path []string, depth int) (*wireValue, error) {
	if v == nil {
		return nil, nil
	}
	if depth > maxNestingDepth {
		return nil, errors.DepthExceeded(errors.PhaseEncode, path, maxNestingDepth)
	}

	w := &wireValue{}
	switch t := v.(type) {
	case Byte:
		n := int8(t)
		w.Byte = &n
	case Short:
		n := int16(t)
		w.Short = &n
	case Int:
		n := int32(t)
		w.Int = &n
	case Long:
		n := int64(t)
		w.Long = &n
	case Bool:
		b := bool(t)
		w.Bool = &b
	case Float:
		f := float32(t)
		w.Float = &f
	case Double:
		f := float64(t)
		w.Double = &f
	case Char:
		c := uint16(t)
		w.Char = &c
	case String:
		s := string(t)
		w.String = &s
	case Array:
		elems := make([]*wireValue, len(t))
		for i, e := range t {
			ew, err := toWireValue(e, append(path, fmt.Sprintf("[%d]", i)), depth+1)
			if err != nil {
				return nil, err
			}
			elems[i] = ew
		}
		w.Array = &elems
	case *EnumRef:
		w.Enum = &wireEnumRef{Type: t.TypeName, Const: t.ConstName}
	case *ClassRef:
		d := t.Descriptor
		w.Class = &d
	case *Instance:
		nested, err := toWireInstance(t, path, depth+1)
		if err != nil {
			return nil, err
		}
		w.Nested = nested
	}
	return w, nil
}

func fromWireValue(w *wireValue, path []string, depth int) (Value, error) {
	if w == nil {
		return nil, nil
	}
	if depth > maxNestingDepth {
		return nil, errors.DepthExceeded(errors.PhaseDecode, path, maxNestingDepth)
	}

	var (
		out   Value
		count int
	)
	if w.Byte != nil {
		out = Byte(*w.Byte)
		count++
	}
	if w.Short != nil {
		out = Short(*w.Short)
		count++
	}
	if w.Int != nil {
		out = Int(*w.Int)
		count++
	}
	if w.Long != nil {
		out = Long(*w.Long)
		count++
	}
	if w.Bool != nil {
		out = Bool(*w.Bool)
		count++
	}
	if w.Float != nil {
		out = Float(*w.Float)
		count++
	}
	if w.Double != nil {
		out = Double(*w.Double)
		count++
	}
	if w.Char != nil {
		out = Char(*w.Char)
		count++
	}
	if w.String != nil {
		out = String(*w.String)
		count++
	}
	if w.Array != nil {
		arr := make(Array, len(*w.Array))
		for i, ew := range *w.Array {
			ev, err := fromWireValue(ew, append(path, fmt.Sprintf("[%d]", i)), depth+1)
			if err != nil {
				return nil, err
			}
			arr[i] = ev
		}
		out = arr
		count++
	}
	if w.Enum != nil {
		out = NewEnumRef(w.Enum.Type, w.Enum.Const)
		count++
	}
	if w.Class != nil {
		out = NewClassRef(*w.Class)
		count++
	}
	if w.Nested != nil {
		nested, err := fromWireInstance(w.Nested, path, depth+1)
		if err != nil {
			return nil, err
		}
		out = nested
		count++
	}

	if count > 1 {
		return nil, errors.InvalidData(errors.PhaseDecode, path,
			fmt.Sprintf("%d value alternatives populated, want at most 1", count))
	}
	return out, nil
}
