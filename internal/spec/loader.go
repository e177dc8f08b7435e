package spec

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/app-requirement.v1.schema.json
var schemaFS embed.FS

// Load reads a requirement file in YAML or JSON (decided by extension),
// validates it against the embedded JSON Schema, then runs the semantic
// checks the schema cannot express (endpoint uniqueness, component/endpoint
// coupling).
func Load(path string) (*AppRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement file: %w", err)
	}

	jsonBytes := data
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		jsonBytes, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := validateSchema(jsonBytes); err != nil {
		return nil, err
	}

	var req AppRequirement
	if err := json.Unmarshal(jsonBytes, &req); err != nil {
		return nil, fmt.Errorf("failed to decode requirement: %w", err)
	}

	if err := ValidateDefinitions(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// validateSchema checks a JSON document against the embedded schema.
func validateSchema(doc []byte) error {
	schemaBytes, err := schemaFS.ReadFile("schemas/app-requirement.v1.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load JSON schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("requirement file is invalid: %s", strings.Join(msgs, "; "))
	}

	return nil
}

// yamlToJSON converts a YAML document to JSON so it can be validated with
// gojsonschema, which only understands JSON documents.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeKeys(doc))
}

// normalizeKeys rewrites map[any]any trees from the YAML decoder into
// map[string]any trees the JSON encoder accepts.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeKeys(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeKeys(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalizeKeys(t[i])
		}
		return t
	default:
		return v
	}
}
