package annotation

import "strings"

// Param pairs an annotation parameter name with its value. An absent value
// (nil) means the parameter was named without a supplied value.
type Param struct {
	Value Value
	Name  string
}

// NewParam constructs a parameter from a raw value via FromRaw
func NewParam(name string, raw any) (Param, error) {
	v, err := FromRaw(raw)
	if err != nil {
		return Param{}, err
	}
	return Param{Name: name, Value: v}, nil
}

// Compare imposes a total order: by name first, ties broken by the textual
// rendering of the values with absent ordering before present. The value
// tie-break only triggers when one annotation carries the same parameter
// name with different values, which indicates malformed producer input but
// must still order deterministically.
func (p Param) Compare(o Param) int {
	if d := strings.Compare(p.Name, o.Name); d != 0 {
		return d
	}
	if p.Value == nil || o.Value == nil {
		switch {
		case p.Value == nil && o.Value == nil:
			return 0
		case p.Value == nil:
			return -1
		default:
			return 1
		}
	}
	return strings.Compare(valueText(p.Value), valueText(o.Value))
}

// Equal is defined as Compare == 0
func (p Param) Equal(o Param) bool {
	return p.Compare(o) == 0
}

// String renders the parameter as "name = value"
func (p Param) String() string {
	var b strings.Builder
	p.appendTo(&b, true, 0)
	return b.String()
}

// ValueString renders only the value, used for the conventional
// single-element-annotation shorthand
func (p Param) ValueString() string {
	var b strings.Builder
	p.appendTo(&b, false, 0)
	return b.String()
}

func (p Param) appendTo(b *strings.Builder, withName bool, depth int) {
	if withName {
		b.WriteString(p.Name)
		b.WriteString(" = ")
	}
	appendValue(b, p.Value, depth)
}
