package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition. It is compiled on first use
// and must not be copied after that.
type Schema struct {
	Name       string
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// ErrInvalid indicates a document that is not valid JSON or does not have
// the expected shape.
type ErrInvalid struct {
	Schema string
	Err    error
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *ErrInvalid) Unwrap() error { return e.Err }

// Decode validates raw against schema and decodes it into dst.
// Returns *ErrInvalid when raw is not JSON or fails validation.
func Decode(raw []byte, schema *Schema, dst any) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalid{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := schema.compile()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalid{Schema: schema.Name, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &ErrInvalid{Schema: schema.Name, Err: err}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = buildSchema(s.Name, s.Definition)
	})
	return s.compiled, s.err
}

// buildSchema registers def under a schema:// URL and compiles it. The
// compiler wants the generic form jsonschema.UnmarshalJSON produces, not a
// Go map with typed slices.
func buildSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	url := "schema://" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
