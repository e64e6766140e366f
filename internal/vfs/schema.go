package vfs

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// ManifestSchema returns a JSON Schema for a catalog manifest.
// Shape: top-level array of VirtualFile objects.
func ManifestSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	fileSch := r.Reflect(&VirtualFile{})
	fileSch.Version = ""
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "maraos console manifest",
		Description: "Files and folders of the virtual drive, in listing order.",
		Type:        "array",
		Items:       fileSch,
	}
}
