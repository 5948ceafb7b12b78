/*
Copyright 2026 The containerimage-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package manifest

import "github.com/xeipuuv/gojsonschema"

// descriptorSchemaJSON mirrors descriptor.schemaJSON; duplicated locally
// since it is embedded inline inside the manifest/list/entry schemas
// below rather than $ref'd, matching how manifestschema.py inlines
// MANIFEST_DESCRIPTOR_SCHEMA as a nested object rather than a $ref.
const descriptorSchemaJSON = `{
	"type": "object",
	"required": ["mediaType", "size", "digest"],
	"additionalProperties": false,
	"properties": {
		"mediaType": {"type": "string"},
		"digest": {"type": "string"},
		"size": {"type": "integer"},
		"urls": {"type": "array", "items": {"type": "string"}},
		"annotations": {"type": "object"}
	}
}`

const platformSchemaJSON = `{
	"type": "object",
	"required": ["os", "architecture"],
	"additionalProperties": false,
	"properties": {
		"architecture": {"type": "string"},
		"os": {"type": "string"},
		"os.version": {"type": "string"},
		"os.features": {"type": "array", "items": {"type": "string"}},
		"variant": {"type": "string"},
		"features": {"type": "array"}
	}
}`

const v2s2ManifestSchemaJSON = `{
	"type": "object",
	"required": ["schemaVersion", "mediaType", "config", "layers"],
	"additionalProperties": false,
	"properties": {
		"schemaVersion": {"type": "integer"},
		"mediaType": {"type": "string"},
		"config": ` + descriptorSchemaJSON + `,
		"layers": {"type": "array", "items": ` + descriptorSchemaJSON + `}
	}
}`

const v2s2ListEntrySchemaJSON = `{
	"type": "object",
	"required": ["mediaType", "size", "digest", "platform"],
	"additionalProperties": false,
	"properties": {
		"mediaType": {"type": "string"},
		"size": {"type": "integer"},
		"digest": {"type": "string"},
		"platform": ` + platformSchemaJSON + `
	}
}`

const v2s2ListSchemaJSON = `{
	"type": "object",
	"required": ["mediaType", "schemaVersion", "manifests"],
	"additionalProperties": false,
	"properties": {
		"mediaType": {"type": "string"},
		"schemaVersion": {"type": "integer"},
		"manifests": {"type": "array", "items": ` + v2s2ListEntrySchemaJSON + `}
	}
}`

const ociManifestSchemaJSON = `{
	"type": "object",
	"required": ["schemaVersion", "config", "layers"],
	"additionalProperties": false,
	"properties": {
		"schemaVersion": {"type": "integer"},
		"mediaType": {"type": "string"},
		"config": ` + descriptorSchemaJSON + `,
		"layers": {"type": "array", "items": ` + descriptorSchemaJSON + `},
		"annotations": {"type": "object"}
	}
}`

const ociIndexEntrySchemaJSON = `{
	"type": "object",
	"required": ["mediaType", "digest", "size"],
	"additionalProperties": false,
	"properties": {
		"mediaType": {"type": "string"},
		"digest": {"type": "string"},
		"size": {"type": "integer"},
		"platform": ` + platformSchemaJSON + `,
		"annotations": {"type": "object"}
	}
}`

const ociIndexSchemaJSON = `{
	"type": "object",
	"required": ["schemaVersion", "manifests"],
	"additionalProperties": false,
	"properties": {
		"schemaVersion": {"type": "integer"},
		"mediaType": {"type": "string"},
		"manifests": {"type": "array", "items": ` + ociIndexEntrySchemaJSON + `},
		"annotations": {"type": "object"}
	}
}`

var (
	v2s2ManifestSchema   = gojsonschema.NewStringLoader(v2s2ManifestSchemaJSON)
	v2s2ListEntrySchema  = gojsonschema.NewStringLoader(v2s2ListEntrySchemaJSON)
	v2s2ListSchema       = gojsonschema.NewStringLoader(v2s2ListSchemaJSON)
	ociManifestSchema    = gojsonschema.NewStringLoader(ociManifestSchemaJSON)
	ociIndexEntrySchema  = gojsonschema.NewStringLoader(ociIndexEntrySchemaJSON)
	ociIndexSchema       = gojsonschema.NewStringLoader(ociIndexSchemaJSON)
)

func validateAgainst(loader gojsonschema.JSONLoader, doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(loader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return schemaError{errs: result.Errors()}
	}
	return nil
}

type schemaError struct {
	errs []gojsonschema.ResultError
}

func (e schemaError) Error() string {
	if len(e.errs) == 0 {
		return "schema validation failed"
	}
	return e.errs[0].String()
}
