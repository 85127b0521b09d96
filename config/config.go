/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/multikeydict"
	"github.com/suparena/multikeydict/cache"
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/registry"
)

// TypeDef declares one key type. In YAML it is either a bare string (a
// single-field type whose field shares its name) or a mapping with an
// explicit field list:
//
//	types:
//	  - stock_code
//	  - name: code_time
//	    fields: [stock_code, trade_time]
type TypeDef struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand as well as the mapping form.
func (d *TypeDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Fields = nil
		return node.Decode(&d.Name)
	}
	type plain TypeDef
	return node.Decode((*plain)(d))
}

// ContainerDef declares a bare container: its type catalog and default.
type ContainerDef struct {
	Types   []TypeDef `yaml:"types"`
	Default string    `yaml:"default"`
}

// TypeNames returns the declared type names in catalog order.
func (d ContainerDef) TypeNames() []string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = t.Name
	}
	return names
}

// CacheDef declares a row cache on top of a container definition.
type CacheDef struct {
	Types        []TypeDef `yaml:"types"`
	Must         []string  `yaml:"must"`
	Default      string    `yaml:"default"`
	KeyConnector string    `yaml:"key_connector,omitempty"`
}

// CacheConfig converts the definition into a cache configuration.
func (d CacheDef) CacheConfig() cache.Config {
	specs := make([]cache.TypeSpec, len(d.Types))
	for i, t := range d.Types {
		specs[i] = cache.TypeSpec{Name: t.Name, Fields: t.Fields}
	}
	return cache.Config{
		Types:        specs,
		MustTypes:    d.Must,
		DefaultType:  d.Default,
		KeyConnector: d.KeyConnector,
	}
}

// File is the top-level YAML document. A file may declare a container, a
// cache, or both.
type File struct {
	Container *ContainerDef `yaml:"container,omitempty"`
	Cache     *CacheDef     `yaml:"cache,omitempty"`
}

// Parse decodes a YAML document into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigurationError("yaml", err.Error())
	}
	if f.Container == nil && f.Cache == nil {
		return nil, errors.NewConfigurationError("yaml",
			"document declares neither a container nor a cache")
	}
	return &f, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// NewContainer builds a container from the definition. Definition-level
// checks (per-type field lists, presence of the default) run here; catalog
// checks are left to the container constructor.
func NewContainer[V any](d ContainerDef, opts ...multikeydict.Option[V]) (*multikeydict.Container[V], error) {
	for _, t := range d.Types {
		if len(t.Fields) > 0 {
			return nil, errors.NewConfigurationError("container.types",
				fmt.Sprintf("type %q declares fields; composite types need a cache", t.Name))
		}
	}
	if d.Default == "" {
		return nil, errors.NewConfigurationError("container.default", "default type is required")
	}
	return multikeydict.New(d.TypeNames(), registry.ByName(d.Default), opts...)
}

// NewCache builds a row cache from the definition.
func NewCache(d CacheDef) (*cache.RowCache, error) {
	return cache.New(d.CacheConfig())
}
