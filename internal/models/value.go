package models

import (
	"encoding/json"
	"strconv"
)

// Kind is the JSON type of a field value
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindOther
)

// Value is a JSON field value that keeps its type. Two values are equal only
// when both kind and canonical text match, so 1 and "1" differ while 1024
// and 1024.0 are the same number.
type Value struct {
	kind Kind
	text string
}

// StringValue returns a string value
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// NumberValue returns a number value from its JSON text. Text that does not
// parse as a number is kept verbatim.
func NumberValue(raw string) Value {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{kind: KindNumber, text: raw}
	}
	if f == 0 {
		// -0 and 0 are the same number
		f = 0
	}
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// BoolValue returns a boolean value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// NullValue returns the JSON null value
func NullValue() Value {
	return Value{kind: KindNull}
}

// ValueOf converts a decoded JSON value; nil is null
func ValueOf(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(t)
	case json.Number:
		return NumberValue(t.String())
	case float64:
		return NumberValue(strconv.FormatFloat(t, 'g', -1, 64))
	case int:
		return NumberValue(strconv.Itoa(t))
	case int64:
		return NumberValue(strconv.FormatInt(t, 10))
	case bool:
		return BoolValue(t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return Value{kind: KindOther}
		}
		return Value{kind: KindOther, text: string(data)}
	}
}

// Kind returns the JSON type of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Equal reports strict equality
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.text == o.text
}

// Text returns the canonical text; empty for absent and null
func (v Value) Text() string {
	return v.text
}

// Truthy reports whether the value counts as present: absent, null, false,
// "" and 0 do not
func (v Value) Truthy() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return false
	case KindString:
		return v.text != ""
	case KindNumber:
		f, err := strconv.ParseFloat(v.text, 64)
		return err != nil || f != 0
	case KindBool:
		return v.text == "true"
	default:
		return true
	}
}

// Display returns the text shown for the value, empty when it is not truthy
func (v Value) Display() string {
	if !v.Truthy() {
		return ""
	}
	return v.text
}

// MapKey returns a lookup key that keeps values of different kinds apart.
// Strings map to themselves; absent maps to "".
func (v Value) MapKey() string {
	switch v.kind {
	case KindString, KindAbsent:
		return v.text
	default:
		return "\x00" + strconv.Itoa(int(v.kind)) + ":" + v.text
	}
}

func fieldValue(m map[string]interface{}, key string) Value {
	raw, ok := m[key]
	if !ok {
		return Value{}
	}
	return ValueOf(raw)
}
