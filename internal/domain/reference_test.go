package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_Resolved(t *testing.T) {
	customer := &Customer{ID: 7, Name: "Acme"}
	ref := Resolved(customer)

	assert.True(t, ref.IsResolved())
	assert.False(t, ref.IsUnresolved())

	entity, ok := ref.Entity()
	require.True(t, ok)
	assert.Equal(t, customer, entity)

	_, ok = ref.ID()
	assert.False(t, ok)
}

func TestReference_ByID(t *testing.T) {
	ref := ByID[Customer](42)

	assert.False(t, ref.IsResolved())
	assert.False(t, ref.IsUnresolved())

	id, ok := ref.ID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ref.Entity()
	assert.False(t, ok)
}

func TestReference_Unresolved(t *testing.T) {
	ref := Unresolved[Project]()

	assert.True(t, ref.IsUnresolved())
	assert.False(t, ref.IsResolved())

	_, ok := ref.Entity()
	assert.False(t, ok)
	_, ok = ref.ID()
	assert.False(t, ok)
}

func TestReference_ZeroValueIsUnresolved(t *testing.T) {
	var ref Reference[Customer]
	assert.True(t, ref.IsUnresolved())
}
