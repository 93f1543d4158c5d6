// Package config loads the page list from the project root.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/multipage/internal/core"
)

//go:embed schema.json
var schemaJSON []byte

// SupportedFiles are looked up in order in the project root.
var SupportedFiles = []string{"pages.config.json", "pages.config.yaml", "pages.config.yml"}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("pages.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("pages.schema.json")
	})
	return schema, schemaErr
}

// FindFile returns the first supported configuration file in root.
func FindFile(root string) (string, bool) {
	for _, name := range SupportedFiles {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load reads the configuration file from root. A missing or invalid file is a
// ConfigError.
func Load(root string) (*core.Config, string, error) {
	file, ok := FindFile(root)
	if !ok {
		return nil, "", &core.ConfigError{
			Message: fmt.Sprintf("not found configuration file, support %s", strings.Join(SupportedFiles, ",")),
		}
	}

	cfg, err := LoadFile(file)
	if err != nil {
		return nil, file, err
	}
	return cfg, file, nil
}

func LoadFile(file string) (*core.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &core.NotFoundError{Path: file, Err: err}
		}
		return nil, err
	}

	cfg, err := Parse(data, filepath.Ext(file))
	if err != nil {
		return nil, &core.ConfigError{Message: "invalid configuration file " + file, Err: err}
	}
	return cfg, nil
}

// Parse decodes a JSON or YAML document (chosen by ext) and checks it against
// the configuration schema.
func Parse(data []byte, ext string) (*core.Config, error) {
	if ext == ".yaml" || ext == ".yml" {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var cfg core.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func schemaError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return errors.New(strings.Join(issues, "; "))
}
