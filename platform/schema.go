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

package platform

// schemaJSON is the OCI image index / v2s2 manifest list entry platform
// schema. It is identical across both specs, so it is shared the way
// image/manifestschema.py shares IMAGE_INDEX_ENTRY_PLATFORM_SCHEMA.
const schemaJSON = `{
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
