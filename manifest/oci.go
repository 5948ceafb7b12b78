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

// ociUnsupportedMediaTypes lists the mediaTypes the OCI manifest spec
// does not support (a v2s2 manifest masquerading as OCI).
var ociUnsupportedMediaTypes = map[string]bool{
	MediaTypeV2S2Manifest: true,
}

// ociIndexUnsupportedMediaTypes lists the mediaTypes the OCI index spec
// does not support (a v2s2 manifest list masquerading as an OCI index).
var ociIndexUnsupportedMediaTypes = map[string]bool{
	MediaTypeV2S2List: true,
}

// OCIManifest is an OCI image manifest.
type OCIManifest struct {
	base
}

// ParseOCIManifest validates raw manifest JSON as an OCI manifest.
func ParseOCIManifest(data []byte) (OCIManifest, error) {
	doc, err := decodeDoc(data)
	if err != nil {
		return OCIManifest{}, err
	}
	return OCIManifestFromMap(doc)
}

// OCIManifestFromMap validates an already-decoded OCI manifest document.
func OCIManifestFromMap(doc map[string]interface{}) (OCIManifest, error) {
	if err := validateOCIManifest(doc); err != nil {
		return OCIManifest{}, err
	}
	return OCIManifest{base{raw: doc}}, nil
}

func validateOCIManifest(doc map[string]interface{}) error {
	if err := validateAgainst(ociManifestSchema, doc); err != nil {
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
	if mt, ok := doc["mediaType"].(string); ok && ociUnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	return nil
}

// OCIIndex is an OCI image index (fat manifest).
type OCIIndex struct {
	listBase
}

// ParseOCIIndex validates raw image index JSON.
func ParseOCIIndex(data []byte) (OCIIndex, error) {
	doc, err := decodeDoc(data)
	if err != nil {
		return OCIIndex{}, err
	}
	return OCIIndexFromMap(doc)
}

// OCIIndexFromMap validates an already-decoded OCI image index.
func OCIIndexFromMap(doc map[string]interface{}) (OCIIndex, error) {
	if err := validateOCIIndex(doc); err != nil {
		return OCIIndex{}, err
	}
	return OCIIndex{listBase{raw: doc}}, nil
}

func validateOCIIndex(doc map[string]interface{}) error {
	if err := validateAgainst(ociIndexSchema, doc); err != nil {
		return xerrors.Errorf("%w: %v", cierrors.ErrInvalidManifest, err)
	}
	if mt, ok := doc["mediaType"].(string); ok && ociIndexUnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	entries, _ := doc["manifests"].([]interface{})
	for _, e := range entries {
		em, ok := e.(map[string]interface{})
		if !ok {
			return xerrors.Errorf("manifests entry: %w", cierrors.ErrInvalidManifest)
		}
		if err := validateOCIIndexEntry(em); err != nil {
			return err
		}
	}
	return nil
}

// validateOCIIndexEntry applies the OCI index-entry schema (which requires
// mediaType, digest and size, with platform optional) rather than the v2s2
// list-entry schema, and rejects an entry whose mediaType is a v2s2
// manifest.
func validateOCIIndexEntry(entry map[string]interface{}) error {
	if err := validateAgainst(ociIndexEntrySchema, entry); err != nil {
		return xerrors.Errorf("%w: %v", cierrors.ErrInvalidManifest, err)
	}
	digestStr, _ := entry["digest"].(string)
	if !entryAnchoredDigest.MatchString(digestStr) {
		return xerrors.Errorf("%q: %w", digestStr, cierrors.ErrInvalidDigest)
	}
	if platformDoc, ok := entry["platform"].(map[string]interface{}); ok {
		if _, err := platform.FromMap(platformDoc); err != nil {
			return err
		}
	}
	if mt, _ := entry["mediaType"].(string); ociUnsupportedMediaTypes[mt] {
		return xerrors.Errorf("%q: %w", mt, cierrors.ErrUnsupportedMediaType)
	}
	return nil
}
