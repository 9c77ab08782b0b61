package record

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilder_ClausePerPresentField(t *testing.T) {
	fieldSets := [][]string{
		{"description"},
		{"description", "address"},
		{"name", "description", "address", "latitude"},
	}

	for _, fields := range fieldSets {
		var b UpdateBuilder
		for _, f := range fields {
			b.SetString(f, "v-"+f)
		}

		cmd, err := b.Build()
		require.NoError(t, err)

		clauses := strings.Split(strings.TrimPrefix(cmd.Expression, "SET "), ", ")
		assert.Len(t, clauses, len(fields))
		assert.Equal(t, fields, cmd.Fields)
		for _, f := range fields {
			assert.Contains(t, cmd.Values, ":"+f)
		}
	}
}

func TestUpdateBuilder_EmptyFailsWithNoFieldsToUpdate(t *testing.T) {
	var b UpdateBuilder
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUpdateBuilder_ReservedWordAliased(t *testing.T) {
	var b UpdateBuilder
	b.SetString("name", "Playa Escondida")
	b.SetString("lastName", "x")

	cmd, err := b.Build()
	require.NoError(t, err)

	clauses := strings.Split(strings.TrimPrefix(cmd.Expression, "SET "), ", ")
	for _, clause := range clauses {
		// The reserved identifier must never appear literally on the left
		// side of a clause; only its alias token may.
		assert.False(t, strings.HasPrefix(clause, "name "), "clause %q uses reserved word literally", clause)
	}
	assert.Contains(t, cmd.Expression, "#name = :name")
	assert.Equal(t, map[string]string{"#name": "name"}, cmd.Names)

	// lastName is not reserved and needs no alias
	assert.Contains(t, cmd.Expression, "lastName = :lastName")

	// the external field name is still reported
	assert.Equal(t, []string{"name", "lastName"}, cmd.Fields)
}

func TestUpdateBuilder_ValueVariants(t *testing.T) {
	var b UpdateBuilder
	b.SetString("description", "d")
	b.Set("latitude", Number(-12.5))
	b.SetStringList("categories", []string{"beach", "food"})

	cmd, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, StringValue("d"), cmd.Values[":description"])
	assert.Equal(t, NumberValue("-12.5"), cmd.Values[":latitude"])
	assert.Equal(t, StringListValue{"beach", "food"}, cmd.Values[":categories"])
}

func TestMemoryStore_UpdateTouchesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.DeclareTable("destinations", "idDestination")

	err := store.PutRecord(ctx, "destinations", Item{
		"idDestination": StringValue("DEST_1"),
		"name":          StringValue("old"),
		"description":   StringValue("old"),
		"imageUrls":     StringListValue{"https://a/1.jpeg"},
	})
	require.NoError(t, err)

	var b UpdateBuilder
	b.SetString("description", "new")
	cmd, err := b.Build()
	require.NoError(t, err)

	updated, err := store.UpdateRecord(ctx, "destinations", Key{Field: "idDestination", Value: "DEST_1"}, cmd)
	require.NoError(t, err)
	assert.Equal(t, Item{"description": StringValue("new")}, updated)

	item, err := store.GetRecord(ctx, "destinations", Key{Field: "idDestination", Value: "DEST_1"})
	require.NoError(t, err)
	assert.Equal(t, "new", item.String("description"))
	assert.Equal(t, "old", item.String("name"))
	assert.Equal(t, []string{"https://a/1.jpeg"}, item.StringList("imageUrls"))
}

func TestMemoryStore_FindByField(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.DeclareTable("users", "idUser")

	require.NoError(t, store.PutRecord(ctx, "users", Item{
		"idUser": StringValue("USR_1"),
		"email":  StringValue("a@b.com"),
	}))

	item, err := store.FindByField(ctx, "users", "email", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "USR_1", item.String("idUser"))

	_, err = store.FindByField(ctx, "users", "email", "missing@b.com")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
