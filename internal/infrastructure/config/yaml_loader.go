package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/machine.schema.json
var machineSchemaJSON []byte

const machineSchemaURL = "machine.schema.json"

var (
	machineSchemaOnce sync.Once
	machineSchema     *jsonschema.Schema
	machineSchemaErr  error
)

func compiledMachineSchema() (*jsonschema.Schema, error) {
	machineSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(machineSchemaURL, bytes.NewReader(machineSchemaJSON)); err != nil {
			machineSchemaErr = fmt.Errorf("failed to add machine schema: %w", err)
			return
		}
		machineSchema, machineSchemaErr = compiler.Compile(machineSchemaURL)
	})
	return machineSchema, machineSchemaErr
}

// ParseYAML reads a YAML machine description:
//
//	alphabet: A-Z
//	slots: 5
//	pawls: 3
//	rotors:
//	  - name: I
//	    kind: moving
//	    notches: Q
//	    cycles: (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//
// The document is checked against the machine JSON Schema before it is
// decoded.
func ParseYAML(r io.Reader) (*MachineConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine YAML: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode machine YAML: %w", err)
	}

	// The validator expects encoding/json value types.
	var doc interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode machine YAML: %w", err)
	}

	schema, err := compiledMachineSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, formatSchemaValidationError(validationErr)
		}
		return nil, fmt.Errorf("machine validation failed: %w", err)
	}

	var cfg MachineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode machine YAML: %w", err)
	}
	return &cfg, nil
}

// formatSchemaValidationError flattens a JSON Schema validation error into
// one line per failing location.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("machine validation failed")
	}
	return fmt.Errorf("machine validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
