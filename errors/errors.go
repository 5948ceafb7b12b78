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

// Package errors defines the sentinel error values shared across this
// module's packages. Callers should compare against these with errors.Is;
// call sites add context via xerrors.Errorf("...: %w", err).
package errors

import "errors"

// Syntactic errors. These are never retried by regclient - a malformed
// reference, digest, domain, name or tag is a caller bug, not a transient
// registry condition.
var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidDigest    = errors.New("invalid digest")
	ErrInvalidDomain    = errors.New("invalid domain")
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidTag       = errors.New("invalid tag")
)

// Semantic errors, raised when a document fails schema validation.
var (
	ErrInvalidManifest   = errors.New("invalid manifest")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidPlatform   = errors.New("invalid platform")
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// Registry/auth errors.
var (
	ErrUnsupportedMediaType  = errors.New("unsupported media type")
	ErrMalformedAuth         = errors.New("malformed auth entry")
	ErrAuthChallengeMalformed = errors.New("malformed www-authenticate challenge")
	ErrNoMatchingPlatform    = errors.New("no manifest matches the requested platform")
)

// Is reports whether err, or any error it wraps, matches target.
// Exposed so callers outside this module don't need to import the
// standard errors package just to unwrap containerimage-go errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
