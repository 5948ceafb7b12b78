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
	"encoding/json"
	"regexp"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	digest "github.com/opencontainers/go-digest"
	"github.com/whatsacomputertho/containerimage-go/platform"
	"golang.org/x/xerrors"
)

var entryAnchoredDigest = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*:[0-9a-fA-F]{32,}$`)

// Entry is a manifest list / image index entry: a descriptor pointing at
// a child arch manifest, plus the platform it targets.
type Entry struct {
	raw map[string]interface{}
}

// Digest returns the entry's digest, re-validated against the digest
// grammar on every call.
func (e Entry) Digest() (digest.Digest, error) {
	d, _ := e.raw["digest"].(string)
	if !entryAnchoredDigest.MatchString(d) {
		return "", xerrors.Errorf("%q: %w", d, cierrors.ErrInvalidDigest)
	}
	return digest.Digest(d), nil
}

// Size returns the entry size in bytes.
func (e Entry) Size() int64 {
	switch v := e.raw["size"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// MediaType returns the entry's mediaType.
func (e Entry) MediaType() string {
	mt, _ := e.raw["mediaType"].(string)
	return mt
}

// Platform returns the entry's target platform. ok is false when the
// entry carries no platform (only possible for OCI index entries, since
// v2s2 manifest list entries require one).
func (e Entry) Platform() (p platform.Platform, ok bool, err error) {
	raw, present := e.raw["platform"].(map[string]interface{})
	if !present {
		return platform.Platform{}, false, nil
	}
	p, err = platform.FromMap(raw)
	if err != nil {
		return platform.Platform{}, false, err
	}
	return p, true, nil
}

// MarshalJSON returns the entry's underlying JSON document.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.raw)
}
