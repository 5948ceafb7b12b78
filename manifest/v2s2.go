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

import (
	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/descriptor"
	"github.com/whatsacomputertho/containerimage-go/platform"
	"golang.org/x/xerrors"
)

// v2s2UnsupportedMediaTypes lists the mediaTypes the v2s2 manifest spec
// does not support (an OCI manifest masquerading as v2s2).
var v2s2UnsupportedMediaTypes = map[string]bool{
	MediaTypeOCIManifest: true,
}

// v2s2ListUnsupportedMediaTypes lists the mediaTypes the v2s2 manifest
// list spec does not support (an OCI index masquerading as v2s2).
var v2s2ListUnsupportedMediaTypes = map[string]bool{
	MediaTypeOCIIndex: true,
}

// V2S2Manifest is a Docker distribution schema2 arch manifest.
type V2S2Manifest struct {
	base
}

// ParseV2S2Manifest validates raw manifest JSON as a v2s2 manifest.
func ParseV2S2Manifest(data []byte) (V2S2Manifest, error) {
	doc, err := decodeDoc(data)
	if err != nil {
		return V2S2Manifest{}, err
	}
	return V2S2ManifestFromMap(doc)
}

// V2S2ManifestFromMap validates an already-decoded v2s2 manifest document.
func V2S2ManifestFromMap(doc map[string]interface{}) (V2S2Manifest, error) {
	if err := validateV2S2Manifest(doc); err != nil {
		return V2S2Manifest{}, err
	}
	return V2S2Manifest{base{raw: doc}}, nil
}

func validateV2S2Manifest(doc map[string]interface{}) error {
	if err := validateAgainst(v2s2ManifestSchema, doc); err != nil {
		return xerrors.Errorf("%w: %v", cierrors.ErrInvalidManifest, err)
	}
	config, _ := doc["config"].(map[string]interface{})
	if _, err := descriptor.FromMap(config); err != nil {
		return err
	}
	layers, _ := doc["layers"].([]interface{})
	for _, l := range layers {
		lm, ok := l.(map[string]interface{})
		if !ok {
			return xerrors.Errorf("layer: %w", cierrors.ErrInvalidDescriptor)
		}
		if _, err := descriptor.FromMap(lm); err != nil {
			return err
		}
	}
	if mt, _ := doc["mediaType"].(string); v2s2UnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	return nil
}

// V2S2List is a Docker distribution manifest list (fat manifest).
type V2S2List struct {
	listBase
}

// ParseV2S2List validates raw manifest list JSON.
func ParseV2S2List(data []byte) (V2S2List, error) {
	doc, err := decodeDoc(data)
	if err != nil {
		return V2S2List{}, err
	}
	return V2S2ListFromMap(doc)
}

// V2S2ListFromMap validates an already-decoded v2s2 manifest list.
func V2S2ListFromMap(doc map[string]interface{}) (V2S2List, error) {
	if err := validateV2S2List(doc); err != nil {
		return V2S2List{}, err
	}
	return V2S2List{listBase{raw: doc}}, nil
}

func validateV2S2List(doc map[string]interface{}) error {
	if err := validateAgainst(v2s2ListSchema, doc); err != nil {
		return xerrors.Errorf("%w: %v", cierrors.ErrInvalidManifest, err)
	}
	if mt, _ := doc["mediaType"].(string); v2s2ListUnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	entries, _ := doc["manifests"].([]interface{})
	for _, e := range entries {
		em, ok := e.(map[string]interface{})
		if !ok {
			return xerrors.Errorf("manifests entry: %w", cierrors.ErrInvalidManifest)
		}
		if err := validateV2S2ListEntry(em); err != nil {
			return err
		}
	}
	return nil
}

func validateV2S2ListEntry(entry map[string]interface{}) error {
	if err := validateAgainst(v2s2ListEntrySchema, entry); err != nil {
		return xerrors.Errorf("%w: %v", cierrors.ErrInvalidManifest, err)
	}
	digestStr, _ := entry["digest"].(string)
	if !entryAnchoredDigest.MatchString(digestStr) {
		return xerrors.Errorf("%q: %w", digestStr, cierrors.ErrInvalidDigest)
	}
	platformDoc, _ := entry["platform"].(map[string]interface{})
	if _, err := platform.FromMap(platformDoc); err != nil {
		return err
	}
	if mt, _ := entry["mediaType"].(string); v2s2UnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	return nil
}
