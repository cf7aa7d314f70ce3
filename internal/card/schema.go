package card

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema reflects the CardDoc document.
func JSONSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(CardDoc))
	schema.Title = "Card Forge card"
	schema.Description = "Card definition priced by the balance engine and rendered by the description engine."
	return schema
}

// Schema returns the indented JSON of JSONSchema.
func Schema() ([]byte, error) {
	data, err := json.MarshalIndent(JSONSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
