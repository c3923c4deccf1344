package domain

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the variants of a PropValue.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// PropValue is a tagged union over the value shapes a prop may carry
// (string | number | boolean | object | array). Each variant has its
// own coercion branch in the resolver; consumers switch on Kind()
// exhaustively instead of chaining runtime type assertions.
type PropValue struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  map[string]any
	arr  []any
}

// StringValue creates a string prop value.
func StringValue(s string) PropValue { return PropValue{kind: KindString, str: s} }

// NumberValue creates a numeric prop value.
func NumberValue(n float64) PropValue { return PropValue{kind: KindNumber, num: n} }

// BoolValue creates a boolean prop value.
func BoolValue(b bool) PropValue { return PropValue{kind: KindBool, b: b} }

// ObjectValue creates an object prop value.
func ObjectValue(m map[string]any) PropValue {
	if m == nil {
		m = map[string]any{}
	}
	return PropValue{kind: KindObject, obj: m}
}

// ArrayValue creates an array prop value.
func ArrayValue(a []any) PropValue {
	if a == nil {
		a = []any{}
	}
	return PropValue{kind: KindArray, arr: a}
}

// ValueFrom converts a dynamically-typed value (as produced by
// encoding/json or yaml.v3 unmarshaling into any) into a PropValue.
func ValueFrom(v any) (PropValue, error) {
	switch t := v.(type) {
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case float64:
		return NumberValue(t), nil
	case float32:
		return NumberValue(float64(t)), nil
	case int:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return PropValue{}, fmt.Errorf("invalid numeric prop %q: %w", t.String(), err)
		}
		return NumberValue(f), nil
	case map[string]any:
		return ObjectValue(t), nil
	case []any:
		return ArrayValue(t), nil
	case PropValue:
		return t, nil
	default:
		return PropValue{}, fmt.Errorf("unsupported prop value type %T", v)
	}
}

// Kind reports which variant the value holds.
func (p PropValue) Kind() Kind { return p.kind }

// Str returns the string variant. Valid only when Kind is KindString.
func (p PropValue) Str() string { return p.str }

// Num returns the numeric variant. Valid only when Kind is KindNumber.
func (p PropValue) Num() float64 { return p.num }

// Bool returns the boolean variant. Valid only when Kind is KindBool.
func (p PropValue) Bool() bool { return p.b }

// Object returns the object variant. Valid only when Kind is KindObject.
func (p PropValue) Object() map[string]any { return p.obj }

// Array returns the array variant. Valid only when Kind is KindArray.
func (p PropValue) Array() []any { return p.arr }

// Interface returns the dynamically-typed representation of the value.
func (p PropValue) Interface() any {
	switch p.kind {
	case KindString:
		return p.str
	case KindNumber:
		return p.num
	case KindBool:
		return p.b
	case KindObject:
		return p.obj
	case KindArray:
		return p.arr
	default:
		return nil
	}
}

// MarshalJSON writes the underlying variant directly, so props
// round-trip through JSON in their natural shape.
func (p PropValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Interface())
}

// UnmarshalJSON decodes any JSON value into the matching variant.
func (p *PropValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pv, err := ValueFrom(raw)
	if err != nil {
		return err
	}
	*p = pv
	return nil
}

// UnmarshalYAML decodes a YAML scalar/map/sequence into the matching
// variant, mirroring the JSON path.
func (p *PropValue) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	pv, err := ValueFrom(raw)
	if err != nil {
		return err
	}
	*p = pv
	return nil
}
