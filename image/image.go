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

// Package image is the top-level facade over reference, manifest, config
// and regclient: it ties a single image reference to the registry calls
// needed to introspect it, and adds the multi-image Set/Diff operations
// and the summarized Inspect record.
package image

import (
	"context"

	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/config"
	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/manifest"
	"github.com/whatsacomputertho/containerimage-go/platform"
	"github.com/whatsacomputertho/containerimage-go/reference"
	"github.com/whatsacomputertho/containerimage-go/regclient"
	"golang.org/x/xerrors"
)

// Image ties a validated reference to the registry client used to
// introspect it. The zero value is not usable; construct with New or
// NewFromReference.
type Image struct {
	ref    reference.Reference
	client *regclient.Client
}

// New validates ref and returns an Image backed by a default regclient.
func New(ref string) (*Image, error) {
	r, err := reference.Parse(ref)
	if err != nil {
		return nil, err
	}
	return NewFromReference(r), nil
}

// NewFromReference wraps an already-validated Reference.
func NewFromReference(r reference.Reference) *Image {
	return &Image{ref: r, client: regclient.New()}
}

// WithClient returns a copy of img that issues registry calls through c,
// for tests or custom transports.
func (img *Image) WithClient(c *regclient.Client) *Image {
	clone := *img
	clone.client = c
	return &clone
}

// Ref returns the original reference string.
func (img *Image) Ref() string { return img.ref.String() }

// Name returns the registry and path components of the reference.
func (img *Image) Name() (string, error) { return img.ref.Name() }

// Registry returns the registry domain component of the reference.
func (img *Image) Registry() (string, error) { return img.ref.Registry() }

// Path returns the image path, excluding the registry domain.
func (img *Image) Path() (string, error) { return img.ref.Path() }

// ShortName returns the final path component of the image name.
func (img *Image) ShortName() (string, error) { return img.ref.ShortName() }

// Identifier returns the tag or digest identifying the image.
func (img *Image) Identifier() (string, error) { return img.ref.Identifier() }

// Kind reports whether the image is referenced by tag or digest.
func (img *Image) Kind() reference.Kind { return img.ref.Kind() }

// IsDigestRef reports whether the image is referenced by digest.
func (img *Image) IsDigestRef() bool { return img.ref.IsDigestRef() }

// IsTagRef reports whether the image is referenced by tag.
func (img *Image) IsTagRef() bool { return img.ref.IsTagRef() }

// Digest returns the image digest: the identifier itself for a digest
// reference, or the registry-resolved digest for a tag reference.
func (img *Image) Digest(ctx context.Context, cfg auth.Config) (string, error) {
	if img.ref.IsDigestRef() {
		return img.ref.Identifier()
	}
	return img.client.GetDigest(ctx, img.ref.String(), cfg)
}

// Manifest fetches and parses the image's manifest (or manifest list /
// image index) from the registry.
func (img *Image) Manifest(ctx context.Context, cfg auth.Config) (manifest.Any, error) {
	body, _, err := img.client.GetManifest(ctx, img.ref.String(), cfg)
	if err != nil {
		return nil, err
	}
	return manifest.Parse(body)
}

// Exists reports whether the reference resolves to an image in the
// registry. A registry 404 is the only error this method swallows; every
// other failure (network, auth, malformed response) is returned.
func (img *Image) Exists(ctx context.Context, cfg auth.Config) (bool, error) {
	_, _, err := img.client.GetManifest(ctx, img.ref.String(), cfg)
	if err == nil {
		return true, nil
	}
	var httpErr *regclient.HTTPError
	if xerrors.As(err, &httpErr) && httpErr.StatusCode == 404 {
		return false, nil
	}
	return false, err
}

// IsManifestList reports whether m is a manifest list / image index
// rather than a single-arch manifest.
func IsManifestList(m manifest.Any) bool {
	_, ok := m.(manifest.List)
	return ok
}

// IsOCI reports whether m is in the OCI manifest/index format.
func IsOCI(m manifest.Any) bool {
	switch m.(type) {
	case manifest.OCIManifest, manifest.OCIIndex:
		return true
	default:
		return false
	}
}

// MediaType fetches the image's manifest and returns its mediaType.
func (img *Image) MediaType(ctx context.Context, cfg auth.Config) (string, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return "", err
	}
	switch v := m.(type) {
	case manifest.Manifest:
		return v.MediaType(), nil
	case manifest.List:
		return v.MediaType(), nil
	default:
		return "", xerrors.Errorf("%T: %w", m, cierrors.ErrInvalidManifest)
	}
}

// IsManifestList fetches the image's manifest and reports whether it is
// a manifest list / image index.
func (img *Image) IsManifestList(ctx context.Context, cfg auth.Config) (bool, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return false, err
	}
	return IsManifestList(m), nil
}

// IsOCI fetches the image's manifest and reports whether it is in OCI
// format.
func (img *Image) IsOCI(ctx context.Context, cfg auth.Config) (bool, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return false, err
	}
	return IsOCI(m), nil
}

// Platforms returns the platform(s) the image supports: a single entry
// for an arch manifest (read from its config blob), or one entry per
// child manifest for a fat manifest.
func (img *Image) Platforms(ctx context.Context, cfg auth.Config) ([]platform.Platform, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return nil, err
	}
	switch v := m.(type) {
	case manifest.List:
		entries, err := v.Entries()
		if err != nil {
			return nil, err
		}
		out := make([]platform.Platform, 0, len(entries))
		for _, e := range entries {
			p, ok, err := e.Platform()
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, p)
			}
		}
		return out, nil
	case manifest.Manifest:
		name, err := img.ref.Name()
		if err != nil {
			return nil, err
		}
		c, err := img.configFor(ctx, v, name, cfg)
		if err != nil {
			return nil, err
		}
		p, err := c.Platform()
		if err != nil {
			return nil, err
		}
		return []platform.Platform{p}, nil
	default:
		return nil, xerrors.Errorf("%T: %w", m, cierrors.ErrInvalidManifest)
	}
}

// Config fetches and parses the image's runtime configuration blob. Only
// valid for a single-arch manifest; call HostPlatformManifest first to
// resolve a fat manifest down to one.
func (img *Image) Config(ctx context.Context, cfg auth.Config) (config.Config, error) {
	m, err := img.Manifest(ctx, cfg)
	if err != nil {
		return config.Config{}, err
	}
	arch, ok := m.(manifest.Manifest)
	if !ok {
		return config.Config{}, xerrors.Errorf("manifest list has no single config: %w", cierrors.ErrInvalidManifest)
	}
	name, err := img.ref.Name()
	if err != nil {
		return config.Config{}, err
	}
	return img.configFor(ctx, arch, name, cfg)
}

func (img *Image) configFor(ctx context.Context, m manifest.Manifest, name string, cfg auth.Config) (config.Config, error) {
	desc, err := m.ConfigDescriptor()
	if err != nil {
		return config.Config{}, err
	}
	doc, err := img.client.GetConfig(ctx, name, desc, cfg)
	if err != nil {
		return config.Config{}, err
	}
	return config.FromMap(doc)
}

// Delete deletes the image from its registry.
func (img *Image) Delete(ctx context.Context, cfg auth.Config) error {
	return img.client.DeleteManifest(ctx, img.ref.String(), cfg)
}

func invalidManifestErr(m manifest.Any) error {
	return xerrors.Errorf("%T: %w", m, cierrors.ErrInvalidManifest)
}
