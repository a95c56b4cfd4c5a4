// Where: internal/manifest/validator.go
// What: Schema validation for manifest documents.
// Why: Reject corrupt manifests before update mode patches them.
package manifest

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "version": {"type": "string"},
    "dependencies": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "devDependencies": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "scripts": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validateManifest(document any) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", strings.NewReader(manifestSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("manifest.schema.json")
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	return compiledSchema, nil
}
