package deck

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedJSON []byte

// SeedCards parses and validates the embedded seed deck.
func SeedCards() ([]Card, error) {
	return parseSeed(seedJSON)
}

// parseSeed validates raw deck JSON against the seed schema and
// unmarshals it into cards.
func parseSeed(raw []byte) ([]Card, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid seed JSON: %w", err)
	}

	compiled, err := compileSeedSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed deck validation failed: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("unmarshal seed deck: %w", err)
	}
	return cards, nil
}

// compileSeedSchema compiles the seed schema definition.
// The jsonschema library expects a parsed JSON value (any), not raw bytes.
func compileSeedSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(seedSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal seed schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse seed schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://seed-deck.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	return compiled, nil
}
