// Package json5 provides an order-preserving document model for JSON5 text.
//
// Parse reads JSON5 (comments, trailing commas, unquoted keys, single-quoted
// strings, hexadecimal numbers, Infinity and NaN) into a Value tree whose
// objects remember the order their keys appeared in. Encode writes a Value
// back out as indented, JSON-compatible text.
package json5

// Value is a node of a parsed document.
type Value interface {
	isValue()
}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a mapping whose members keep their insertion order.
type Object struct {
	Members []Member
}

// Array is an ordered sequence of values.
type Array []Value

// String is a decoded string value.
type String string

// Number holds the normalized literal text of a numeric value.
type Number string

// Bool is true or false.
type Bool bool

// Null is the null literal.
type Null struct{}

func (*Object) isValue() {}
func (Array) isValue()   {}
func (String) isValue()  {}
func (Number) isValue()  {}
func (Bool) isValue()    {}
func (Null) isValue()    {}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}

	return nil, false
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}

	return keys
}

// set stores value under key. A repeated key keeps its first position and
// takes the new value.
func (o *Object) set(index map[string]int, key string, value Value) {
	if i, ok := index[key]; ok {
		o.Members[i].Value = value
		return
	}

	index[key] = len(o.Members)
	o.Members = append(o.Members, Member{Key: key, Value: value})
}
