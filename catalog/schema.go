package catalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema reflects the JSON schema of the catalog override Document
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "Health Snake Catalog"
	schema.Description = "Collectible fact catalog loaded in place of the built-in facts."
	return schema
}

// SchemaJSON returns the indented schema document with a trailing newline
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "catalog: marshal schema")
	}
	return append(data, '\n'), nil
}
