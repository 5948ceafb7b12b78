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
	"sync"

	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/manifest"
	"golang.org/x/sync/errgroup"
)

// Size calculates the size of the image in bytes. For a single-arch
// manifest this is its config size plus layer sizes deduplicated by
// digest. For a fat manifest it is the sum of every entry's reported size
// (never deduplicated - each entry is a logically distinct arch image)
// plus the config and layer sizes of every child manifest, deduplicated
// by digest across the whole set. Child manifests are fetched
// concurrently since the dedup aggregation is commutative.
func (img *Image) Size(ctx context.Context, cfg auth.Config) (int64, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return 0, err
	}

	switch v := m.(type) {
	case manifest.Manifest:
		return v.Size()
	case manifest.List:
		return img.listSize(ctx, v, cfg)
	default:
		return 0, invalidManifestErr(m)
	}
}

func (img *Image) listSize(ctx context.Context, list manifest.List, cfg auth.Config) (int64, error) {
	name, err := img.ref.Name()
	if err != nil {
		return 0, err
	}
	entrySizes, err := list.EntrySizes()
	if err != nil {
		return 0, err
	}
	entries, err := list.Entries()
	if err != nil {
		return 0, err
	}

	var mu sync.Mutex
	layers := map[string]int64{}
	configs := map[string]int64{}

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			d, err := entry.Digest()
			if err != nil {
				return err
			}
			child, err := New(name + "@" + string(d))
			if err != nil {
				return err
			}
			child = child.WithClient(img.client)
			childManifest, err := child.Manifest(gctx, cfg)
			if err != nil {
				return err
			}
			am, ok := childManifest.(manifest.Manifest)
			if !ok {
				return invalidManifestErr(childManifest)
			}
			childLayers, err := am.LayerDescriptors()
			if err != nil {
				return err
			}
			childConfig, err := am.ConfigDescriptor()
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			configs[string(childConfig.Digest())] = childConfig.Size()
			for _, l := range childLayers {
				layers[string(l.Digest())] = l.Size()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
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
