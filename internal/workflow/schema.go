package workflow

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://schemas.inkwell.app/workflow/"

var (
	compileOnce       sync.Once
	compiledSchemas   map[Action]*jsonschema.Schema
	compiledSchemaErr error
)

func loadSchemas() (map[Action]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		entries, err := schemaFS.ReadDir("schemas")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("read schemas: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := schemaFS.ReadFile("schemas/" + entry.Name())
			if err != nil {
				compiledSchemaErr = fmt.Errorf("read %s: %w", entry.Name(), err)
				return
			}
			if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
				compiledSchemaErr = fmt.Errorf("add schema resource %s: %w", entry.Name(), err)
				return
			}
		}

		schemas := make(map[Action]*jsonschema.Schema, len(allActions))
		for _, action := range allActions {
			schema, err := compiler.Compile(schemaBaseURL + string(action) + ".schema.json")
			if err != nil {
				compiledSchemaErr = fmt.Errorf("compile %s schema: %w", action, err)
				return
			}
			schemas[action] = schema
		}
		compiledSchemas = schemas
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	return compiledSchemas, nil
}

// validateResponse checks body against the response schema of action and
// returns the normalized JSON object to decode.
func validateResponse(action Action, body []byte) ([]byte, error) {
	value, err := decodeStrictJSON(body)
	if err != nil {
		return nil, &SchemaError{Action: action, Err: err}
	}

	// n8n "Respond to Webhook" nodes commonly wrap the object in a one-element array.
	if arr, ok := value.([]any); ok && len(arr) == 1 {
		value = arr[0]
	}

	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	schema, ok := schemas[action]
	if !ok {
		return nil, fmt.Errorf("no schema for action %q", action)
	}
	if err := schema.Validate(value); err != nil {
		return nil, &SchemaError{Action: action, Err: err}
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize %s response: %w", action, err)
	}
	return normalized, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("response is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("response contains trailing content")
	}
	return value, nil
}
