// Package record provides the schemaless key-value persistence layer:
// a closed set of attribute value variants, a partial-update command
// builder, and store implementations (DynamoDB, in-memory).
package record

import "strconv"

// Value is the closed set of attribute encodings a record may hold.
// Only StringValue, NumberValue and StringListValue implement it.
type Value interface {
	isValue()
}

// StringValue holds a plain string attribute.
type StringValue string

// NumberValue holds a numeric attribute in its decimal string form,
// matching how the store transports numbers on the wire.
type NumberValue string

// StringListValue holds an ordered list of strings.
type StringListValue []string

func (StringValue) isValue()     {}
func (NumberValue) isValue()     {}
func (StringListValue) isValue() {}

// Number encodes a float as a NumberValue.
func Number(f float64) NumberValue {
	return NumberValue(strconv.FormatFloat(f, 'f', -1, 64))
}

// Float returns the numeric value of n.
func (n NumberValue) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Item is one stored record: attribute name to value.
type Item map[string]Value

// String returns the attribute named field as a plain string, or "" when
// absent or of a different variant.
func (it Item) String(field string) string {
	if s, ok := it[field].(StringValue); ok {
		return string(s)
	}
	return ""
}

// StringList returns the attribute named field as a string slice, or nil.
func (it Item) StringList(field string) []string {
	if l, ok := it[field].(StringListValue); ok {
		return []string(l)
	}
	return nil
}

// Float returns the attribute named field as a float64, or 0.
func (it Item) Float(field string) float64 {
	if n, ok := it[field].(NumberValue); ok {
		f, err := n.Float()
		if err == nil {
			return f
		}
	}
	return 0
}
