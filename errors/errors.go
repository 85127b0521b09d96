/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnknownType is returned when a type reference does not resolve to a registered key type
	ErrUnknownType = errors.New("unknown key type")

	// ErrKeyNotFound is returned when a (type, key) pair addresses no indexed entity
	ErrKeyNotFound = errors.New("key not found")

	// ErrEntityNotFound is returned when the data store is addressed with an absent entity id.
	// It signals a broken internal invariant and is never expected in correct operation.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrKeyConflict is returned when the keys of a single assignment resolve to
	// two or more distinct pre-existing entities
	ErrKeyConflict = errors.New("conflicting keys")

	// ErrConfiguration is returned for missing/duplicate type declarations,
	// a missing default type, or malformed key-set input
	ErrConfiguration = errors.New("invalid configuration")
)

// UnknownTypeError reports a type reference that resolves to no registered key type
type UnknownTypeError struct {
	Ref string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown key type %s", e.Ref)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// KeyNotFoundError reports a (type, key) lookup that found no entity
type KeyNotFoundError struct {
	Type string
	Key  any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no entity indexed under %s key %v", e.Type, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// EntityNotFoundError reports a data store access with an id that has no record
type EntityNotFoundError struct {
	ID uint64
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("no record for entity id %d", e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// KeyConflictError reports an assignment whose keys resolve to more than one
// pre-existing entity
type KeyConflictError struct {
	Keys []any
	IDs  []uint64
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("keys %v resolve to %d distinct entities %v", e.Keys, len(e.IDs), e.IDs)
}

func (e *KeyConflictError) Is(target error) bool {
	return target == ErrKeyConflict
}

// ConfigurationError reports invalid construction or key-set input
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Helper functions for creating errors

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(ref string) error {
	return &UnknownTypeError{Ref: ref}
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(typeName string, key any) error {
	return &KeyNotFoundError{Type: typeName, Key: key}
}

// NewEntityNotFoundError creates a new EntityNotFoundError
func NewEntityNotFoundError(id uint64) error {
	return &EntityNotFoundError{ID: id}
}

// NewKeyConflictError creates a new KeyConflictError
func NewKeyConflictError(keys []any, ids []uint64) error {
	return &KeyConflictError{Keys: keys, IDs: ids}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, message string) error {
	return &ConfigurationError{Field: field, Message: message}
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsEntityNotFound checks if an error is an entity not found error
func IsEntityNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsKeyConflict checks if an error is a key conflict error
func IsKeyConflict(err error) bool {
	return errors.Is(err, ErrKeyConflict)
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
