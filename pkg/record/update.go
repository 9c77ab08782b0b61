package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFieldsToUpdate is returned by Build when no field was set. Callers
// must reject the request instead of issuing an empty mutation.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// reservedWords are attribute names that collide with keywords in the
// store's expression language and must go through an alias token.
var reservedWords = map[string]string{
	"name": "#name",
}

// UpdateCommand is a minimal partial mutation against one item: a SET
// expression plus the alias and placeholder tables it references.
//
// Placeholders are always ":" + the external field name, so a store that
// does not parse expressions (the in-memory one) can apply the command
// from Fields and Values alone.
type UpdateCommand struct {
	Expression string
	Names      map[string]string
	Values     map[string]Value
	Fields     []string
}

// UpdateBuilder accumulates field assignments for a partial update. The
// zero value is ready to use. The builder never contacts a store and does
// not validate values; callers must reject malformed input before setting.
type UpdateBuilder struct {
	clauses []string
	names   map[string]string
	values  map[string]Value
	fields  []string
}

// Set appends one assignment clause for field. Reserved attribute names
// are substituted with their alias token in the generated clause; the
// external field name is preserved in the built command's Fields.
func (b *UpdateBuilder) Set(field string, v Value) *UpdateBuilder {
	token := field
	if alias, ok := reservedWords[field]; ok {
		token = alias
		if b.names == nil {
			b.names = map[string]string{}
		}
		b.names[alias] = field
	}

	placeholder := ":" + field
	if b.values == nil {
		b.values = map[string]Value{}
	}
	b.clauses = append(b.clauses, fmt.Sprintf("%s = %s", token, placeholder))
	b.values[placeholder] = v
	b.fields = append(b.fields, field)
	return b
}

// SetString is shorthand for Set with a StringValue.
func (b *UpdateBuilder) SetString(field, v string) *UpdateBuilder {
	return b.Set(field, StringValue(v))
}

// SetStringList is shorthand for Set with a StringListValue.
func (b *UpdateBuilder) SetStringList(field string, v []string) *UpdateBuilder {
	return b.Set(field, StringListValue(v))
}

// Build produces the update command, or ErrNoFieldsToUpdate when nothing
// was set.
func (b *UpdateBuilder) Build() (UpdateCommand, error) {
	if len(b.clauses) == 0 {
		return UpdateCommand{}, ErrNoFieldsToUpdate
	}
	return UpdateCommand{
		Expression: "SET " + strings.Join(b.clauses, ", "),
		Names:      b.names,
		Values:     b.values,
		Fields:     b.fields,
	}, nil
}
