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
	"github.com/docker/distribution/manifest/manifestlist"
	"github.com/docker/distribution/manifest/schema2"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

// Media type constants, sourced from docker/distribution and
// opencontainers/image-spec rather than re-declared as string literals.
const (
	MediaTypeV2S2Manifest = schema2.MediaTypeManifest
	MediaTypeV2S2List     = manifestlist.MediaTypeManifestList
	MediaTypeOCIManifest  = specs.MediaTypeImageManifest
	MediaTypeOCIIndex     = specs.MediaTypeImageIndex

	// MediaTypeV2S1Manifest and MediaTypeV2S1SignedManifest are advertised
	// in regclient's Accept header for compatibility with registries that
	// refuse to answer without them listed, but no variant here parses a
	// v2s1 response body (Non-goal).
	MediaTypeV2S1Manifest       = "application/vnd.docker.distribution.manifest.v1+json"
	MediaTypeV2S1SignedManifest = "application/vnd.docker.distribution.manifest.v1+prettyjws"
)
