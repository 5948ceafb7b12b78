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

package regclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"regexp"

	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/canonjson"
	"github.com/whatsacomputertho/containerimage-go/descriptor"
	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/reference"
	"golang.org/x/xerrors"
)

// anchoredDigest mirrors reference's digest grammar; duplicated locally
// per this module's convention of keeping each package's validation
// self-contained rather than reaching across packages for a regexp.
var anchoredDigest = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*:[0-9a-fA-F]{32,}$`)

// selectAuth resolves the matching Basic auth string for ref out of cfg,
// returning ("", false, nil) when no entry applies.
func selectAuth(ref string, cfg auth.Config) (string, bool, error) {
	return auth.Select(ref, cfg)
}

// GetManifest fetches the manifest for ref and returns the raw response
// body along with the value of the Docker-Content-Digest response header
// (empty if the registry didn't send one).
func (c *Client) GetManifest(ctx context.Context, ref string, cfg auth.Config) ([]byte, string, error) {
	r, err := reference.Parse(ref)
	if err != nil {
		return nil, "", err
	}
	identifier, err := r.Identifier()
	if err != nil {
		return nil, "", err
	}

	url := BaseURL(ref) + "/manifests/" + identifier
	regAuth, found, err := selectAuth(ref, cfg)
	if err != nil {
		return nil, "", err
	}

	headers := http.Header{"Accept": {acceptManifestTypes()}}
	res, err := c.doRequest(ctx, http.MethodGet, url, headers, regAuth, found)
	if err != nil {
		return nil, "", err
	}
	defer res.Body.Close()

	body, err := readAll(res)
	if err != nil {
		return nil, "", err
	}
	return body, res.Header.Get(DockerContentDigestHeader), nil
}

// GetDigest fetches the manifest for ref and returns its content digest,
// trusting the registry's Docker-Content-Digest header when present and
// otherwise recomputing the digest from the canonicalized manifest bytes.
func (c *Client) GetDigest(ctx context.Context, ref string, cfg auth.Config) (string, error) {
	body, headerDigest, err := c.GetManifest(ctx, ref, cfg)
	if err != nil {
		return "", err
	}

	digest := headerDigest
	if digest == "" {
		canon, err := canonjson.Canonicalize(body)
		if err != nil {
			return "", xerrors.Errorf("canonicalizing manifest: %w", err)
		}
		sum := sha256.Sum256(canon)
		digest = "sha256:" + hex.EncodeToString(sum[:])
	}

	if !anchoredDigest.MatchString(digest) {
		return "", xerrors.Errorf("%q: %w", digest, cierrors.ErrInvalidDigest)
	}
	return digest, nil
}

// GetBlob fetches the blob identified by desc from the registry that
// holds ref's repository.
func (c *Client) GetBlob(ctx context.Context, ref string, desc descriptor.Descriptor, cfg auth.Config) ([]byte, error) {
	url := BaseURL(ref) + "/blobs/" + string(desc.Digest())
	regAuth, found, err := selectAuth(ref, cfg)
	if err != nil {
		return nil, err
	}

	res, err := c.doRequest(ctx, http.MethodGet, url, nil, regAuth, found)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return readAll(res)
}

// GetConfig fetches and JSON-decodes the config blob identified by desc.
func (c *Client) GetConfig(ctx context.Context, ref string, desc descriptor.Descriptor, cfg auth.Config) (map[string]interface{}, error) {
	body, err := c.GetBlob(ctx, ref, desc, cfg)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := decodeJSON(newReader(body), &doc); err != nil {
		return nil, xerrors.Errorf("decoding config blob: %w", err)
	}
	return doc, nil
}

// ListTags fetches the tag list for ref's repository.
func (c *Client) ListTags(ctx context.Context, ref string, cfg auth.Config) (map[string]interface{}, error) {
	url := BaseURL(ref) + "/tags/list"
	regAuth, found, err := selectAuth(ref, cfg)
	if err != nil {
		return nil, err
	}

	headers := http.Header{"Accept": {"application/json"}}
	res, err := c.doRequest(ctx, http.MethodGet, url, headers, regAuth, found)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var doc map[string]interface{}
	if err := decodeJSON(res.Body, &doc); err != nil {
		return nil, xerrors.Errorf("decoding tag list: %w", err)
	}
	return doc, nil
}

// DeleteManifest deletes ref from its registry.
func (c *Client) DeleteManifest(ctx context.Context, ref string, cfg auth.Config) error {
	r, err := reference.Parse(ref)
	if err != nil {
		return err
	}
	identifier, err := r.Identifier()
	if err != nil {
		return err
	}

	url := BaseURL(ref) + "/manifests/" + identifier
	regAuth, found, err := selectAuth(ref, cfg)
	if err != nil {
		return err
	}

	res, err := c.doRequest(ctx, http.MethodDelete, url, nil, regAuth, found)
	if err != nil {
		return err
	}
	return res.Body.Close()
}
