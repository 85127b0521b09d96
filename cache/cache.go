/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cache

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/multikeydict"
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// DefaultKeyConnector joins the fragments of a composite key.
const DefaultKeyConnector = "__"

// Row is one cached record: field name -> field value.
type Row = map[string]any

// TypeSpec declares one cache key type. A single-field type uses the raw
// row value of that field as its key; a composite type joins the normalized
// values of several fields with the key connector.
type TypeSpec struct {
	Name   string
	Fields []string
}

// fields returns the row fields backing the type.
func (s TypeSpec) fields() []string {
	if len(s.Fields) == 0 {
		return []string{s.Name}
	}
	return s.Fields
}

func (s TypeSpec) composite() bool {
	return len(s.Fields) > 1
}

// Config declares a RowCache.
type Config struct {
	// Types is the ordered list of key types.
	Types []TypeSpec
	// MustTypes names the types every upserted row must be able to produce.
	MustTypes []string
	// DefaultType names the type used by bare-key operations. It must be
	// one of the must types.
	DefaultType string
	// KeyConnector joins composite key fragments. Defaults to "__".
	KeyConnector string
}

// RowCache caches row records addressable through several key types, some
// derived from a single row field and some composed from several.
type RowCache struct {
	types       []TypeSpec
	byName      map[string]TypeSpec
	must        map[string]bool
	defaultType string
	prevDefault string
	hasPrev     bool
	connector   string

	mkd *multikeydict.Container[Row]
}

// New builds a RowCache from cfg.
func New(cfg Config) (*RowCache, error) {
	if len(cfg.Types) == 0 {
		return nil, errors.NewConfigurationError("types", "at least one key type is required")
	}
	if len(cfg.MustTypes) == 0 {
		return nil, errors.NewConfigurationError("mustTypes", "at least one must type is required")
	}
	connector := cfg.KeyConnector
	if connector == "" {
		connector = DefaultKeyConnector
	}

	byName := make(map[string]TypeSpec, len(cfg.Types))
	names := make([]string, 0, len(cfg.Types))
	for _, spec := range cfg.Types {
		if spec.Name == "" {
			return nil, errors.NewConfigurationError("types", "key type name must not be empty")
		}
		if _, exists := byName[spec.Name]; exists {
			return nil, errors.NewConfigurationError("types", fmt.Sprintf("duplicate key type %q", spec.Name))
		}
		byName[spec.Name] = spec
		names = append(names, spec.Name)
	}

	must := make(map[string]bool, len(cfg.MustTypes))
	for _, name := range cfg.MustTypes {
		if _, ok := byName[name]; !ok {
			return nil, errors.NewConfigurationError("mustTypes", fmt.Sprintf("must type %q is not declared", name))
		}
		must[name] = true
	}

	if cfg.DefaultType == "" {
		return nil, errors.NewConfigurationError("defaultType", "a default key type is required")
	}
	if !must[cfg.DefaultType] {
		return nil, errors.NewConfigurationError("defaultType",
			fmt.Sprintf("default type %q is not among the must types", cfg.DefaultType))
	}

	mkd, err := multikeydict.New[Row](names, registry.ByName(cfg.DefaultType))
	if err != nil {
		return nil, err
	}

	return &RowCache{
		types:       cfg.Types,
		byName:      byName,
		must:        must,
		defaultType: cfg.DefaultType,
		connector:   connector,
		mkd:         mkd,
	}, nil
}

// normalizeValue renders one row value as a composite key fragment.
// Timestamps collapse to a connector-safe form, nil to "None".
func normalizeValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return "None"
	case time.Time:
		return tv.Format("2006-01-02-15-04-05")
	case strfmt.DateTime:
		return time.Time(tv).Format("2006-01-02-15-04-05")
	case *strfmt.DateTime:
		if tv == nil {
			return "None"
		}
		return time.Time(*tv).Format("2006-01-02-15-04-05")
	default:
		return fmt.Sprintf("%v", tv)
	}
}

// GenerateKey joins the normalized values of the named row fields with the
// key connector. Every field must be present in the row.
func (c *RowCache) GenerateKey(row Row, fields []string) (string, error) {
	if len(fields) == 0 {
		return "", errors.NewConfigurationError("fields", "field list must not be empty")
	}
	fragments := make([]string, 0, len(fields))
	for _, field := range fields {
		v, ok := row[field]
		if !ok {
			return "", errors.NewConfigurationError("fields",
				fmt.Sprintf("field %q is not in the row", field))
		}
		fragments = append(fragments, normalizeValue(v))
	}
	return strings.Join(fragments, c.connector), nil
}

// TryGenerateKey is GenerateKey without the error path; it reports false
// when a field is missing.
func (c *RowCache) TryGenerateKey(row Row, fields []string) (string, bool) {
	key, err := c.GenerateKey(row, fields)
	return key, err == nil
}

// rowKeys derives the positional key set a row yields, nil for types the
// row cannot produce, plus the default-type key.
func (c *RowCache) rowKeys(row Row) ([]storagemodels.Key, storagemodels.Key) {
	keys := make([]storagemodels.Key, len(c.types))
	var defaultKey storagemodels.Key
	for i, spec := range c.types {
		var key storagemodels.Key
		if spec.composite() {
			if joined, ok := c.TryGenerateKey(row, spec.fields()); ok {
				key = joined
			}
		} else if v, ok := row[spec.fields()[0]]; ok && v != nil {
			key = v
		}
		keys[i] = key
		if spec.Name == c.defaultType {
			defaultKey = key
		}
	}
	return keys, defaultKey
}

// checkMustKeys verifies the row can produce every must type's key.
func (c *RowCache) checkMustKeys(keys []storagemodels.Key) error {
	for i, spec := range c.types {
		if c.must[spec.Name] && keys[i] == nil {
			return errors.NewConfigurationError("row",
				fmt.Sprintf("row cannot produce required key type %q", spec.Name))
		}
	}
	return nil
}

// Upsert inserts row, or merges it field-by-field into the record already
// cached under the row's default-type key.
func (c *RowCache) Upsert(row Row) error {
	if row == nil {
		return errors.NewConfigurationError("row", "row must not be nil")
	}
	keys, defaultKey := c.rowKeys(row)
	if err := c.checkMustKeys(keys); err != nil {
		return err
	}

	if existing, ok := c.mkd.Lookup(defaultKey); ok {
		for field, v := range row {
			existing[field] = v
		}
		return nil
	}

	stored := make(Row, len(row))
	for field, v := range row {
		stored[field] = v
	}
	return c.mkd.SetKeys(keys, stored)
}

// BatchUpsert applies Upsert to each row; per-row errors are joined.
func (c *RowCache) BatchUpsert(rows []Row) error {
	var errs []error
	for _, row := range rows {
		if err := c.Upsert(row); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Fetch returns a copy of the record cached under the default type at key,
// or nil when absent.
func (c *RowCache) Fetch(key storagemodels.Key) Row {
	return c.FetchBy(c.defaultType, key)
}

// FetchBy returns a copy of the record cached under the named type at key,
// or nil when absent or when the type is unknown.
func (c *RowCache) FetchBy(typeName string, key storagemodels.Key) Row {
	row, ok := c.mkd.LookupBy(registry.ByName(typeName), key)
	if !ok {
		return nil
	}
	return copyRow(row)
}

// Query derives whatever keys the partial row yields and returns the first
// record any of them resolves, or nil when none do.
func (c *RowCache) Query(sub Row) Row {
	keys, _ := c.rowKeys(sub)
	for i, spec := range c.types {
		if keys[i] == nil {
			continue
		}
		if row := c.FetchBy(spec.Name, keys[i]); row != nil {
			return row
		}
	}
	return nil
}

// FetchAll returns copies of all records keyed by their default-type keys.
// Records without a default-type key are not included.
func (c *RowCache) FetchAll() map[storagemodels.Key]Row {
	out := make(map[storagemodels.Key]Row, c.mkd.Len())
	for key, row := range c.mkd.Items() {
		out[key] = copyRow(row)
	}
	return out
}

// FetchAllBy is FetchAll over the named key type.
func (c *RowCache) FetchAllBy(typeName string) (map[storagemodels.Key]Row, error) {
	if typeName == "" {
		typeName = c.defaultType
	}
	seq, err := c.mkd.KeysOf(registry.ByName(typeName))
	if err != nil {
		return nil, err
	}
	out := make(map[storagemodels.Key]Row)
	for key := range seq {
		if row, ok := c.mkd.LookupBy(registry.ByName(typeName), key); ok {
			out[key] = copyRow(row)
		}
	}
	return out, nil
}

// Exists reports whether any key derived from the partial row resolves a
// cached record.
func (c *RowCache) Exists(sub Row) bool {
	keys, _ := c.rowKeys(sub)
	for i, spec := range c.types {
		if keys[i] == nil {
			continue
		}
		if c.mkd.ContainsBy(registry.ByName(spec.Name), keys[i]) {
			return true
		}
	}
	return false
}

// ExistsKey reports whether the named type (default when empty) indexes key.
func (c *RowCache) ExistsKey(key storagemodels.Key, typeName string) bool {
	if typeName == "" {
		typeName = c.defaultType
	}
	return c.mkd.ContainsBy(registry.ByName(typeName), key)
}

// Count returns the number of keys under the named type (default when
// empty).
func (c *RowCache) Count(typeName string) (int, error) {
	if typeName == "" {
		typeName = c.defaultType
	}
	return c.mkd.LenOf(registry.ByName(typeName))
}

// CountEntities returns the number of cached records across all types.
func (c *RowCache) CountEntities() int {
	return c.mkd.Len()
}

// DefaultType returns the current default key type name.
func (c *RowCache) DefaultType() string {
	return c.defaultType
}

// SetDefaultType moves the default to the named must type and remembers the
// previous default for RestoreDefaultType.
func (c *RowCache) SetDefaultType(name string) error {
	if !c.must[name] {
		return errors.NewConfigurationError("defaultType",
			fmt.Sprintf("default type %q is not among the must types", name))
	}
	if err := c.mkd.SetDefaultType(registry.ByName(name)); err != nil {
		return err
	}
	c.prevDefault = c.defaultType
	c.hasPrev = true
	c.defaultType = name
	return nil
}

// RestoreDefaultType restores the default type that was active before the
// last SetDefaultType call.
func (c *RowCache) RestoreDefaultType() error {
	if !c.hasPrev {
		return errors.NewConfigurationError("defaultType", "no previous default type to restore")
	}
	if err := c.mkd.SetDefaultType(registry.ByName(c.prevDefault)); err != nil {
		return err
	}
	c.defaultType, c.prevDefault = c.prevDefault, c.defaultType
	return nil
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for field, v := range row {
		out[field] = v
	}
	return out
}
