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

import (
	"context"

	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/manifest"
)

// Set is an ordered collection of images, operated on together: a
// deduplicated aggregate size, a bulk delete, or a diff against another
// Set.
type Set struct {
	images []*Image
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of images in the set.
func (s *Set) Len() int {
	return len(s.images)
}

// Range calls fn for each image in the set, in append order, stopping
// early if fn returns false.
func (s *Set) Range(fn func(img *Image) bool) {
	for _, img := range s.images {
		if !fn(img) {
			return
		}
	}
}

// Append adds img to the set.
func (s *Set) Append(img *Image) {
	s.images = append(s.images, img)
}

// Size returns the deduplicated size in bytes of every image in the set:
// manifest list entry sizes are summed without dedup (each is a distinct
// arch image), while every config and layer digest across the whole set -
// arch manifests and manifest list children alike - is deduplicated
// before being summed in.
func (s *Set) Size(ctx context.Context, cfg auth.Config) (int64, error) {
	var entrySizes int64
	layers := map[string]int64{}
	configs := map[string]int64{}

	for _, img := range s.images {
		m, err := img.Manifest(ctx, cfg)
		if err != nil {
			return 0, err
		}

		switch v := m.(type) {
		case manifest.List:
			name, err := img.ref.Name()
			if err != nil {
				return 0, err
			}
			sizes, err := v.EntrySizes()
			if err != nil {
				return 0, err
			}
			entrySizes += sizes

			entries, err := v.Entries()
			if err != nil {
				return 0, err
			}
			for _, entry := range entries {
				d, err := entry.Digest()
				if err != nil {
					return 0, err
				}
				child, err := New(name + "@" + string(d))
				if err != nil {
					return 0, err
				}
				childManifest, err := child.WithClient(img.client).Manifest(ctx, cfg)
				if err != nil {
					return 0, err
				}
				am, ok := childManifest.(manifest.Manifest)
				if !ok {
					return 0, invalidManifestErr(childManifest)
				}
				if err := accumulateManifestSizes(am, layers, configs); err != nil {
					return 0, err
				}
			}
		case manifest.Manifest:
			if err := accumulateManifestSizes(v, layers, configs); err != nil {
				return 0, err
			}
		default:
			return 0, invalidManifestErr(m)
		}
	}

	total := entrySizes
	for _, size := range configs {
		total += size
	}
	for _, size := range layers {
		total += size
	}
	return total, nil
}

func accumulateManifestSizes(m manifest.Manifest, layers, configs map[string]int64) error {
	configDesc, err := m.ConfigDescriptor()
	if err != nil {
		return err
	}
	configs[string(configDesc.Digest())] = configDesc.Size()

	layerDescs, err := m.LayerDescriptors()
	if err != nil {
		return err
	}
	for _, l := range layerDescs {
		layers[string(l.Digest())] = l.Size()
	}
	return nil
}

// Delete deletes every image in the set from its registry, in append
// order, stopping at the first error.
func (s *Set) Delete(ctx context.Context, cfg auth.Config) error {
	for _, img := range s.images {
		if err := img.Delete(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}
