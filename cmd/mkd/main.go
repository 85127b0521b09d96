/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command mkd loads a cache definition, populates it from a JSON row file,
// and answers key lookups. It is a smoke tool for definition files rather
// than a production surface.
//
// Usage:
//
//	mkd -config stocks.yaml -rows rows.json -get AAPL
//	mkd -config stocks.yaml -rows rows.json -get "Apple Inc." -type stock_name
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/multikeydict"
	"github.com/suparena/multikeydict/cache"
	"github.com/suparena/multikeydict/config"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	configPath = flag.String("config", "", "Path to a YAML cache definition (or set MKD_CONFIG)")
	rowsPath   = flag.String("rows", "", "Path to a JSON array of row objects to load")
	getKey     = flag.String("get", "", "Key to look up after loading")
	typeName   = flag.String("type", "", "Key type for -get (default type when empty)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := multikeydict.GetVersionInfo()
		fmt.Printf("mkd version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mkd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; flags win over the environment.
	_ = godotenv.Load()

	path := *configPath
	if path == "" {
		path = os.Getenv("MKD_CONFIG")
	}
	if path == "" {
		return fmt.Errorf("no definition file: pass -config or set MKD_CONFIG")
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}
	if f.Cache == nil {
		return fmt.Errorf("%s declares no cache section", path)
	}

	rc, err := config.NewCache(*f.Cache)
	if err != nil {
		return err
	}

	if *rowsPath != "" {
		rows, err := readRows(*rowsPath)
		if err != nil {
			return err
		}
		if err := rc.BatchUpsert(rows); err != nil {
			return fmt.Errorf("loading %s: %w", *rowsPath, err)
		}
		fmt.Printf("loaded %d rows (%d entities)\n", len(rows), rc.CountEntities())
	}

	if *getKey != "" {
		name := *typeName
		if name == "" {
			name = rc.DefaultType()
		}
		row := rc.FetchBy(name, *getKey)
		if row == nil {
			return fmt.Errorf("no record under %s=%q", name, *getKey)
		}
		out, err := json.MarshalIndent(row, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}

	return nil
}

func readRows(path string) ([]cache.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []cache.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}
