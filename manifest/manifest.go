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

// Package manifest implements the arch-manifest and manifest-list/image-index
// type hierarchy for both the Docker v2s2 and OCI specifications, plus the
// factory that dispatches a raw registry response to the right variant.
package manifest

import (
	"encoding/json"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/descriptor"
	"golang.org/x/xerrors"
)

// Manifest is the format-agnostic view of an arch manifest, satisfied by
// both V2S2Manifest and OCIManifest.
type Manifest interface {
	LayerDescriptors() ([]descriptor.Descriptor, error)
	ConfigDescriptor() (descriptor.Descriptor, error)
	MediaType() string
	Size() (int64, error)
	Raw() map[string]interface{}
}

// base implements the shared accessors every arch-manifest variant uses;
// embedded by V2S2Manifest and OCIManifest.
type base struct {
	raw map[string]interface{}
}

func (b base) LayerDescriptors() ([]descriptor.Descriptor, error) {
	rawLayers, _ := b.raw["layers"].([]interface{})
	if len(rawLayers) == 0 {
		return nil, xerrors.New("no layers found")
	}
	out := make([]descriptor.Descriptor, 0, len(rawLayers))
	for _, rl := range rawLayers {
		m, ok := rl.(map[string]interface{})
		if !ok {
			return nil, xerrors.Errorf("layer: %w", cierrors.ErrInvalidDescriptor)
		}
		d, err := descriptor.FromMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (b base) ConfigDescriptor() (descriptor.Descriptor, error) {
	m, ok := b.raw["config"].(map[string]interface{})
	if !ok {
		return descriptor.Descriptor{}, xerrors.Errorf("config: %w", cierrors.ErrInvalidDescriptor)
	}
	return descriptor.FromMap(m)
}

func (b base) MediaType() string {
	mt, _ := b.raw["mediaType"].(string)
	return mt
}

// Size returns the manifest's total size: the config size plus the
// layer sizes deduplicated by digest (a layer digest listed more than
// once in this manifest's layers is only counted once).
func (b base) Size() (int64, error) {
	config, err := b.ConfigDescriptor()
	if err != nil {
		return 0, err
	}
	layers, err := b.LayerDescriptors()
	if err != nil {
		return 0, err
	}
	dedup := make(map[string]int64, len(layers))
	for _, l := range layers {
		dedup[string(l.Digest())] = l.Size()
	}
	total := config.Size()
	for _, size := range dedup {
		total += size
	}
	return total, nil
}

func (b base) Raw() map[string]interface{} {
	return b.raw
}

func (b base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.raw)
}

func decodeDoc(data []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, xerrors.Errorf("decoding manifest: %w", cierrors.ErrInvalidManifest)
	}
	return doc, nil
}
