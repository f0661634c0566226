// Package ifdo validates iFDO (image File Descriptor) metadata documents
// against the iFDO JSON schema, and extracts the fields other commands need
// from conforming documents.
package ifdo

import (
	"bytes"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/oceanbound/marlin/pkg/errors"
	"github.com/oceanbound/marlin/pkg/metadata"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Schema resource file names expected under the schema directory, and the
// URIs the root schema references them by.
const (
	RootSchemaFile       = "ifdo-v2.1.0.json"
	ProvenanceSchemaFile = "provenance-v0.1.0.json"
	AnnotationSchemaFile = "annotation-v2.0.0.json"

	provenanceSchemaURI = "https://marine-imaging.com/fair/schemas/provenance.json"
	annotationSchemaURI = "https://marine-imaging.com/fair/schemas/annotation.json"

	rootSchemaURI = "https://marine-imaging.com/fair/schemas/ifdo.json"
)

// Validator checks iFDO documents against the composed iFDO schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator loads the root iFDO schema and its two referenced sub-schemas
// from schemaDir on fs and compiles them. Construction fails if any resource
// is missing or malformed; there is no partially-usable validator.
func NewValidator(fs afero.Fs, schemaDir string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	resources := map[string]string{
		rootSchemaURI:       RootSchemaFile,
		provenanceSchemaURI: ProvenanceSchemaFile,
		annotationSchemaURI: AnnotationSchemaFile,
	}
	for uri, name := range resources {
		raw, err := loadSchemaObject(fs, filepath.Join(schemaDir, name))
		if err != nil {
			return nil, err
		}
		if err := compiler.AddResource(uri, bytes.NewReader(raw)); err != nil {
			return nil, errors.ErrInvalidSchema.Wrap(err)
		}
	}

	schema, err := compiler.Compile(rootSchemaURI)
	if err != nil {
		return nil, errors.ErrInvalidSchema.Wrap(err)
	}
	return &Validator{schema: schema}, nil
}

// loadSchemaObject reads a schema file and requires its top level to be a
// JSON object.
func loadSchemaObject(fs afero.Fs, path string) ([]byte, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.ErrInvalidSchema.Wrap(err)
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.ErrInvalidSchema.Wrap(err)
	}
	if obj == nil {
		return nil, errors.ErrInvalidSchema
	}
	return raw, nil
}

// Validate reports whether the document conforms to the iFDO schema.
// Non-conformance is a normal false result, never an error.
func (v *Validator) Validate(doc metadata.Document) bool {
	instance, err := jsonInstance(doc)
	if err != nil {
		return false
	}
	return v.schema.Validate(instance) == nil
}

// Violation describes one schema violation within a document.
type Violation struct {
	InstanceLocation string
	Message          string
}

// Report returns the violations for a non-conforming document, or nil when
// the document conforms.
func (v *Validator) Report(doc metadata.Document) []Violation {
	instance, err := jsonInstance(doc)
	if err != nil {
		return []Violation{{InstanceLocation: "/", Message: err.Error()}}
	}
	err = v.schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Violation{{InstanceLocation: "/", Message: err.Error()}}
	}
	var out []Violation
	for _, be := range ve.BasicOutput().Errors {
		if be.Error == "" {
			continue
		}
		out = append(out, Violation{InstanceLocation: be.InstanceLocation, Message: be.Error})
	}
	return out
}

// jsonInstance re-decodes the document through JSON so the schema engine
// sees the exact types encoding/json would produce.
func jsonInstance(doc metadata.Document) (interface{}, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var instance interface{}
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, err
	}
	return instance, nil
}
