package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildCriterionResultSchema returns the JSON-Schema (draft 2020-12 subset)
// for a single-criterion evaluation response. Passed to the model as a
// structured-output constraint and used locally for the strict-path check.
// Responses failing it are re-decoded leniently rather than rejected.
func BuildCriterionResultSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"score":           map[string]any{"type": "number", "minimum": 0.0, "maximum": 5.0},
			"commentaire":     map[string]any{"type": "string"},
			"preuves":         stringArrayProp(),
			"forces":          stringArrayProp(),
			"faiblesses":      stringArrayProp(),
			"recommandations": stringArrayProp(),
		},
		"required": []string{"score", "commentaire"},
	}
}

// BuildChapterConformitySchema returns the schema for a chapter-conformity
// response: five fixed dimensions plus the global classification.
func BuildChapterConformitySchema() map[string]any {
	dim := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":       map[string]any{"type": "number", "minimum": 0.0, "maximum": 5.0},
			"commentaire": map[string]any{"type": "string"},
		},
		"required": []string{"score"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"objectifs":    dim,
			"competences":  dim,
			"contenu":      dim,
			"references":   dim,
			"volume":       dim,
			"score_global": map[string]any{"type": "number", "minimum": 0.0, "maximum": 5.0},
			"conformite": map[string]any{
				"type": "string",
				"enum": []string{"conforme", "partiellement_conforme", "non_conforme"},
			},
			"recommandations": stringArrayProp(),
		},
		"required": []string{"conformite"},
	}
}

func stringArrayProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
