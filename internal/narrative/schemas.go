package narrative

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON schemas the LLM responses must satisfy before being accepted.
// A response that fails validation is treated like any other call
// failure and replaced with fallback content.

const insightsSchema = `{
  "type": "object",
  "required": ["summary", "key_insights", "recommendations"],
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "key_insights": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "recommendations": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

const characteristicsSchema = `{
  "type": "object",
  "required": ["characteristics"],
  "properties": {
    "characteristics": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "description"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// validateJSON checks a raw LLM response against a schema and reports
// the first violation.
func validateJSON(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("response violates schema: %s", result.Errors()[0])
	}
	return nil
}
