package llm

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled schemas keyed by name and a digest of the definition, so two
// schemas sharing a name never collide.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// structuredContent prepares a structured reply for use: markdown code
// fences are stripped and the result is checked against schema. The
// cleaned content is returned.
func structuredContent(schema *Schema, raw json.RawMessage) (json.RawMessage, error) {
	if schema == nil {
		return raw, nil
	}
	cleaned := stripCodeFence(raw)
	if err := validateResponse(schema, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// decodeResponse validates raw against schema and decodes it into v.
func decodeResponse(schema *Schema, raw json.RawMessage, v any) error {
	cleaned, err := structuredContent(schema, raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(cleaned, v); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("decode %s: %w", schema.Name, err)}
	}
	return nil
}

// validateResponse checks raw JSON against schema. A nil schema accepts
// anything. Failures are *ErrInvalidResponse.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("empty content")}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("%s: %w", schema.Name, err),
		}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	sum := sha256.Sum256(def)
	key := schema.Name + "@" + hex.EncodeToString(sum[:8])

	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	url := fmt.Sprintf("schema://%s.json", key)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	actual, _ := schemaCache.LoadOrStore(key, compiled)
	return actual.(*jsonschema.Schema), nil
}

// stripCodeFence removes a surrounding ``` or ```json fence. Models
// without native structured output often wrap JSON this way.
func stripCodeFence(raw json.RawMessage) json.RawMessage {
	s := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(s, []byte("```")) || !bytes.HasSuffix(s, []byte("```")) || len(s) < 6 {
		return raw
	}
	s = s[3 : len(s)-3]
	if nl := bytes.IndexByte(s, '\n'); nl >= 0 && !bytes.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	}
	return json.RawMessage(bytes.TrimSpace(s))
}
