package postgres_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilderNumbersPlaceholdersSequentially(t *testing.T) {
	ub := newUpdateBuilder()
	title := "new title"
	price := 1850.0

	ub.AddString("title", &title)
	ub.AddFloat("price", &price)
	ub.Add("status", "published")

	set, args := ub.Build()
	assert.Equal(t, "title = $1, price = $2, status = $3", set)
	require.Len(t, args, 3)
	assert.Equal(t, "new title", args[0])
	assert.Equal(t, 1850.0, args[1])
}

func TestUpdateBuilderSkipsNilPointers(t *testing.T) {
	ub := newUpdateBuilder()

	ub.AddString("title", nil)
	ub.AddFloat("price", nil)

	assert.True(t, ub.Empty())

	set, args := ub.Build()
	assert.Empty(t, set)
	assert.Empty(t, args)
}
