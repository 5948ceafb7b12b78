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

// Package reference parses and validates container image references of
// the form [domain/]path/name[:tag][@digest], matching the grammar used
// by the Docker/OCI distribution spec.
package reference

import (
	"strings"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"golang.org/x/xerrors"
)

// Kind distinguishes whether a Reference identifies an image by tag or
// by content digest.
type Kind int

const (
	// KindTag identifies a tag reference, e.g. "alpine:3".
	KindTag Kind = iota
	// KindDigest identifies a digest reference, e.g. "alpine@sha256:...".
	KindDigest
)

// DefaultTag is substituted when a tag reference omits an explicit tag.
const DefaultTag = "latest"

// Reference is a validated, immutable container image reference. The
// original input string is preserved verbatim and returned by String.
type Reference struct {
	raw string
}

// Parse validates ref against the reference grammar and returns a
// Reference wrapping it. It does not contact any registry.
func Parse(ref string) (Reference, error) {
	if !referencePatRe.MatchString(ref) {
		return Reference{}, xerrors.Errorf("%q: %w", ref, cierrors.ErrInvalidReference)
	}
	return Reference{raw: ref}, nil
}

// String returns the original reference string unchanged.
func (r Reference) String() string {
	return r.raw
}

// IsDigestRef reports whether the reference identifies an image by digest.
func (r Reference) IsDigestRef() bool {
	if !strings.Contains(r.raw, "@") {
		return false
	}
	parts := strings.Split(r.raw, "@")
	return anchoredDigestRe.MatchString(parts[len(parts)-1])
}

// IsTagRef reports whether the reference identifies an image by tag
// (including the implicit "latest" tag).
func (r Reference) IsTagRef() bool {
	if r.IsDigestRef() {
		return false
	}
	tag := DefaultTag
	if i := strings.LastIndex(r.raw, ":"); i > strings.LastIndex(r.raw, "/") {
		tag = r.raw[i+1:]
	}
	return anchoredTagRe.MatchString(tag)
}

// Kind reports whether the reference is a tag or digest reference.
func (r Reference) Kind() Kind {
	if r.IsDigestRef() {
		return KindDigest
	}
	return KindTag
}

// Identifier returns the tag or digest identifying the image, whichever
// the reference carries.
func (r Reference) Identifier() (string, error) {
	switch {
	case r.IsDigestRef():
		parts := strings.Split(r.raw, "@")
		return parts[len(parts)-1], nil
	case r.IsTagRef():
		if i := strings.LastIndex(r.raw, ":"); i > strings.LastIndex(r.raw, "/") {
			return r.raw[i+1:], nil
		}
		return DefaultTag, nil
	default:
		return "", xerrors.Errorf("%q: %w", r.raw, cierrors.ErrInvalidReference)
	}
}

// Name returns the registry and path components of the reference, with
// any tag or digest stripped.
func (r Reference) Name() (string, error) {
	digestless := strings.Split(r.raw, "@")[0]
	tagless := digestless
	if i := strings.LastIndex(digestless, ":"); i > strings.LastIndex(digestless, "/") {
		tagless = digestless[:i]
	}
	if !anchoredNameRe.MatchString(tagless) {
		return "", xerrors.Errorf("%q: %w", tagless, cierrors.ErrInvalidName)
	}
	return tagless, nil
}

// Registry returns the registry domain component of the reference.
func (r Reference) Registry() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	registry := strings.Split(name, "/")[0]
	if !anchoredDomainRe.MatchString(registry) {
		return "", xerrors.Errorf("%q: %w", registry, cierrors.ErrInvalidDomain)
	}
	return registry, nil
}

// Path returns the image path, excluding the registry domain.
func (r Reference) Path() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	comps := strings.Split(name, "/")
	return strings.Join(comps[1:], "/"), nil
}

// ShortName returns the final path component, e.g. "controller" for
// "ingress-nginx/controller".
func (r Reference) ShortName() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	comps := strings.Split(name, "/")
	return comps[len(comps)-1], nil
}
