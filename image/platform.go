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
	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/manifest"
	"github.com/whatsacomputertho/containerimage-go/platform"
	"golang.org/x/xerrors"
)

// HostPlatformManifest resolves the image down to a single-arch
// manifest.Manifest: the manifest itself if it already is one, or the
// fat manifest's child entry matching the running host's platform
// (honoring HOST_OS/HOST_ARCH overrides, per platform.DetectHostPlatform).
func (img *Image) HostPlatformManifest(ctx context.Context, cfg auth.Config) (manifest.Manifest, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return nil, err
	}

	switch v := m.(type) {
	case manifest.Manifest:
		return v, nil
	case manifest.List:
		return img.resolvePlatform(ctx, v, cfg)
	default:
		return nil, invalidManifestErr(m)
	}
}

func (img *Image) resolvePlatform(ctx context.Context, list manifest.List, cfg auth.Config) (manifest.Manifest, error) {
	host, err := platform.DetectHostPlatform()
	if err != nil {
		return nil, err
	}
	name, err := img.ref.Name()
	if err != nil {
		return nil, err
	}
	entries, err := list.Entries()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		p, ok, err := entry.Platform()
		if err != nil {
			return nil, err
		}
		if !ok || !p.Equal(host) {
			continue
		}
		d, err := entry.Digest()
		if err != nil {
			return nil, err
		}
		child, err := New(name + "@" + string(d))
		if err != nil {
			return nil, err
		}
		childManifest, err := child.WithClient(img.client).Manifest(ctx, cfg)
		if err != nil {
			return nil, err
		}
		am, ok := childManifest.(manifest.Manifest)
		if !ok {
			return nil, invalidManifestErr(childManifest)
		}
		return am, nil
	}
	return nil, xerrors.Errorf("%s: %w", host.String(), cierrors.ErrNoMatchingPlatform)
}
