/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnknownTypeError(t *testing.T) {
	err := NewUnknownTypeError(`name "stock_code"`)

	expected := `unknown key type name "stock_code"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnknownType) {
		t.Error("UnknownTypeError should match ErrUnknownType")
	}

	if !IsUnknownType(err) {
		t.Error("IsUnknownType should return true for UnknownTypeError")
	}
}

func TestKeyNotFoundError(t *testing.T) {
	err := NewKeyNotFoundError("table_id", 42)

	expected := "no entity indexed under table_id key 42"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrKeyNotFound) {
		t.Error("KeyNotFoundError should match ErrKeyNotFound")
	}

	if !IsKeyNotFound(err) {
		t.Error("IsKeyNotFound should return true for KeyNotFoundError")
	}
}

func TestEntityNotFoundError(t *testing.T) {
	err := NewEntityNotFoundError(7)

	expected := "no record for entity id 7"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsEntityNotFound(err) {
		t.Error("IsEntityNotFound should return true for EntityNotFoundError")
	}

	// The internal and the public lookup failures must stay distinct.
	if IsKeyNotFound(err) {
		t.Error("EntityNotFoundError must not match ErrKeyNotFound")
	}
}

func TestKeyConflictError(t *testing.T) {
	err := NewKeyConflictError([]any{"x", "y"}, []uint64{1, 2})

	if !errors.Is(err, ErrKeyConflict) {
		t.Error("KeyConflictError should match ErrKeyConflict")
	}

	if !IsKeyConflict(err) {
		t.Error("IsKeyConflict should return true for KeyConflictError")
	}

	var kc *KeyConflictError
	if !errors.As(err, &kc) {
		t.Fatal("errors.As should recover *KeyConflictError")
	}
	if len(kc.IDs) != 2 {
		t.Errorf("Expected 2 conflicting ids, got %d", len(kc.IDs))
	}
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "types",
			message:  "duplicate key type",
			expected: `invalid configuration for "types": duplicate key type`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing default type",
			expected: "invalid configuration: missing default type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigurationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsConfiguration(err) {
				t.Error("IsConfiguration should return true for ConfigurationError")
			}
		})
	}
}

func TestWrapping(t *testing.T) {
	inner := NewKeyNotFoundError("stock_code", "AAPL")
	wrapped := fmt.Errorf("lookup failed: %w", inner)

	if !IsKeyNotFound(wrapped) {
		t.Error("IsKeyNotFound should see through fmt.Errorf wrapping")
	}

	var knf *KeyNotFoundError
	if !errors.As(wrapped, &knf) {
		t.Fatal("errors.As should recover *KeyNotFoundError through wrapping")
	}
	if knf.Type != "stock_code" {
		t.Errorf("Expected type stock_code, got %q", knf.Type)
	}
}
