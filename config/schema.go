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

package config

import "github.com/xeipuuv/gojsonschema"

// schemaJSON is the OCI image config schema. additionalProperties is
// intentionally left unconstrained (the OCI spec's config schema does
// not forbid extra top-level properties, unlike the descriptor and
// manifest schemas).
const schemaJSON = `{
	"type": "object",
	"required": ["architecture", "os", "rootfs"],
	"properties": {
		"created": {"type": "string"},
		"author": {"type": "string"},
		"architecture": {"type": "string"},
		"os": {"type": "string"},
		"os.version": {"type": "string"},
		"os.features": {"type": "string"},
		"variant": {"type": "string"},
		"config": {
			"type": "object",
			"properties": {
				"User": {"type": "string"},
				"ExposedPorts": {"type": "object"},
				"Env": {"type": "array", "items": {"type": "string"}},
				"Entrypoint": {"oneOf": [{"type": "array"}, {"type": "null"}]},
				"Cmd": {"oneOf": [{"type": "array"}, {"type": "null"}]},
				"Volumes": {"oneOf": [{"type": "object"}, {"type": "null"}]},
				"WorkingDir": {"type": "string"},
				"Labels": {"oneOf": [{"type": "object"}, {"type": "null"}]},
				"StopSignal": {"type": "string"},
				"ArgsEscaped": {"type": "boolean"}
			}
		},
		"rootfs": {
			"type": "object",
			"required": ["type", "diff_ids"],
			"properties": {
				"type": {"type": "string"},
				"diff_ids": {"type": "array", "items": {"type": "string"}}
			}
		},
		"history": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"created": {"type": "string"},
					"author": {"type": "string"},
					"created_by": {"type": "string"},
					"comment": {"type": "string"},
					"empty_layer": {"type": "boolean"}
				}
			}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)
