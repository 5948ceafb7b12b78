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

// Package descriptor implements the OCI content descriptor, reused across
// v2s2 layers/configs and OCI descriptors since both specs share the same
// shape.
package descriptor

import (
	"encoding/json"
	"regexp"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	digest "github.com/opencontainers/go-digest"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

const schemaJSON = `{
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

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// anchoredDigest mirrors reference's ANCHORED_DIGEST pattern; duplicated
// here (rather than importing the reference package) to keep descriptor
// free of a dependency on reference's reference-grammar concerns - a
// descriptor digest is validated on its own, not as part of a reference.
var anchoredDigest = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*:[0-9a-fA-F]{32,}$`)

// Descriptor describes some content stored by a registry: a config or
// layer blob, or a child manifest in a manifest list / image index.
type Descriptor struct {
	raw map[string]interface{}
}

// Parse validates raw descriptor JSON and returns a Descriptor.
func Parse(data []byte) (Descriptor, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Descriptor{}, xerrors.Errorf("decoding descriptor: %w", cierrors.ErrInvalidDescriptor)
	}
	return FromMap(doc)
}

// FromMap validates an already-decoded descriptor document.
func FromMap(doc map[string]interface{}) (Descriptor, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Descriptor{}, xerrors.Errorf("validating descriptor: %w", err)
	}
	if !result.Valid() {
		return Descriptor{}, xerrors.Errorf("%v: %w", result.Errors(), cierrors.ErrInvalidDescriptor)
	}
	digestStr, _ := doc["digest"].(string)
	if !anchoredDigest.MatchString(digestStr) {
		return Descriptor{}, xerrors.Errorf("%q: %w", digestStr, cierrors.ErrInvalidDigest)
	}
	return Descriptor{raw: doc}, nil
}

// Digest returns the descriptor's content digest.
func (d Descriptor) Digest() digest.Digest {
	return digest.Digest(d.raw["digest"].(string))
}

// Size returns the content size in bytes.
func (d Descriptor) Size() int64 {
	switch v := d.raw["size"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

// MediaType returns the descriptor's media type.
func (d Descriptor) MediaType() string {
	return d.raw["mediaType"].(string)
}

// URLs returns the descriptor's alternate download URLs, if present.
func (d Descriptor) URLs() ([]string, bool) {
	raw, ok := d.raw["urls"].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		if s, ok := u.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Annotations returns the descriptor's annotation map, if present.
func (d Descriptor) Annotations() (map[string]string, bool) {
	raw, ok := d.raw["annotations"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, true
}

// MarshalJSON returns the descriptor's underlying JSON document.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}
