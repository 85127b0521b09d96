/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multikeydict/errors"
)

func TestNew(t *testing.T) {
	r, err := New([]string{"table_id", "stock_code", "stock_name"}, ByName("table_id"))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"table_id", "stock_code", "stock_name"}, r.Names())
	assert.Equal(t, TypeIndex(0), r.Default())
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name        string
		types       []string
		defaultType Ref
	}{
		{"empty type list", nil, ByIndex(0)},
		{"duplicate type", []string{"id", "id"}, ByIndex(0)},
		{"empty type name", []string{"id", ""}, ByIndex(0)},
		{"zero default ref", []string{"id", "name"}, Ref{}},
		{"unknown default name", []string{"id", "name"}, ByName("age")},
		{"default index out of range", []string{"id", "name"}, ByIndex(2)},
		{"negative default index", []string{"id", "name"}, ByIndex(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.types, tt.defaultType)
			require.Error(t, err)
			assert.True(t, errors.IsConfiguration(err), "expected configuration error, got %v", err)
		})
	}
}

func TestResolve(t *testing.T) {
	r, err := New([]string{"table_id", "stock_code"}, ByIndex(0))
	require.NoError(t, err)

	idx, err := r.Resolve(ByName("stock_code"))
	require.NoError(t, err)
	assert.Equal(t, TypeIndex(1), idx)

	idx, err = r.Resolve(ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, TypeIndex(1), idx)

	_, err = r.Resolve(ByName("stock_name"))
	assert.True(t, errors.IsUnknownType(err))

	_, err = r.Resolve(ByIndex(2))
	assert.True(t, errors.IsUnknownType(err))

	_, err = r.Resolve(Ref{})
	assert.True(t, errors.IsUnknownType(err))
}

func TestSetDefault(t *testing.T) {
	r, err := New([]string{"table_id", "stock_code"}, ByIndex(0))
	require.NoError(t, err)

	require.NoError(t, r.SetDefault(ByName("stock_code")))
	assert.Equal(t, TypeIndex(1), r.Default())
	assert.Equal(t, "stock_code", r.Name(r.Default()))

	err = r.SetDefault(ByName("bogus"))
	assert.True(t, errors.IsUnknownType(err))
	// A failed SetDefault must leave the previous default in place.
	assert.Equal(t, TypeIndex(1), r.Default())
}

func TestClone(t *testing.T) {
	r, err := New([]string{"id", "name"}, ByName("name"))
	require.NoError(t, err)

	c := r.Clone()
	assert.Equal(t, r.Names(), c.Names())
	assert.Equal(t, r.Default(), c.Default())

	require.NoError(t, c.SetDefault(ByName("id")))
	assert.Equal(t, TypeIndex(1), r.Default(), "clone default change must not leak back")
	assert.Equal(t, TypeIndex(0), c.Default())
}
