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

package image

import "github.com/xeipuuv/gojsonschema"

const layerInspectSchemaJSON = `{
	"type": "object",
	"required": ["MIMEType", "Digest", "Size"],
	"additionalProperties": false,
	"properties": {
		"MIMEType": {"type": "string"},
		"Digest": {"type": "string"},
		"Size": {"type": "integer"},
		"Annotations": {"type": "object"}
	}
}`

const inspectSchemaJSON = `{
	"type": "object",
	"required": [
		"Digest", "Created", "DockerVersion", "Labels", "Architecture", "Os",
		"Layers", "LayersData", "Env"
	],
	"additionalProperties": false,
	"properties": {
		"Name": {"type": "string"},
		"Digest": {"type": "string"},
		"Tag": {"type": "string"},
		"Created": {"type": "string"},
		"DockerVersion": {"type": "string"},
		"Labels": {"type": "object"},
		"Architecture": {"type": "string"},
		"Variant": {"type": "string"},
		"Os": {"type": "string"},
		"Layers": {"type": "array", "items": {"type": "string"}},
		"LayersData": {"type": "array", "items": ` + layerInspectSchemaJSON + `},
		"Env": {"type": "array", "items": {"type": "string"}},
		"Author": {"type": "string"}
	}
}`

var inspectSchemaLoader = gojsonschema.NewStringLoader(inspectSchemaJSON)
