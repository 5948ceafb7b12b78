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

package image_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

var (
	archDigestAmd64 = "sha256:" + strings.Repeat("a", 64)
	archDigestArm64 = "sha256:" + strings.Repeat("b", 64)
	layerDigest     = "sha256:" + strings.Repeat("c", 64)
	configDigest    = "sha256:" + strings.Repeat("d", 64)
	fatDigest       = "sha256:" + strings.Repeat("f", 64)
)

const archManifestJSONTemplate = `{
	"schemaVersion": 2,
	"mediaType": "application/vnd.docker.distribution.manifest.v2+json",
	"config": {"mediaType": "application/vnd.docker.container.image.v1+json", "size": 100, "digest": "%s"},
	"layers": [{"mediaType": "application/vnd.docker.image.rootfs.diff.tar.gzip", "size": 1000, "digest": "%s"}]
}`

var archManifestJSON = fmt.Sprintf(archManifestJSONTemplate, configDigest, layerDigest)

var configJSON = `{
	"architecture": "amd64",
	"os": "linux",
	"created": "2026-01-01T00:00:00Z",
	"Author": "someone",
	"Labels": {"foo": "bar"},
	"rootfs": {"type": "layers", "diff_ids": ["sha256:` + strings.Repeat("e", 64) + `"]},
	"config": {"Env": ["PATH=/usr/bin"]}
}`

var fatManifestJSON = `{
	"schemaVersion": 2,
	"mediaType": "application/vnd.docker.distribution.manifest.list.v2+json",
	"manifests": [
		{"mediaType": "application/vnd.docker.distribution.manifest.v2+json", "size": 500, "digest": "` + archDigestAmd64 + `", "platform": {"architecture": "amd64", "os": "linux"}},
		{"mediaType": "application/vnd.docker.distribution.manifest.v2+json", "size": 500, "digest": "` + archDigestArm64 + `", "platform": {"architecture": "arm64", "os": "linux"}}
	]
}`

// newRegistryFixture serves a single-arch manifest plus its config blob
// under "arch", and a manifest list whose two entries resolve back to the
// very same single-arch manifest body under "fat" - enough to exercise
// fat-manifest fan-out without needing distinct per-platform bodies.
func newRegistryFixture() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/arch/manifests/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Docker-Content-Digest", archDigestAmd64)
		w.Write([]byte(archManifestJSON))
	})
	mux.HandleFunc("/v2/fat/manifests/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch id {
		case archDigestAmd64, archDigestArm64:
			w.Header().Set("Docker-Content-Digest", id)
			w.Write([]byte(archManifestJSON))
		default:
			w.Header().Set("Docker-Content-Digest", fatDigest)
			w.Write([]byte(fatManifestJSON))
		}
	})
	mux.HandleFunc("/v2/arch/blobs/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(configJSON))
	})
	mux.HandleFunc("/v2/fat/blobs/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(configJSON))
	})
	return httptest.NewTLSServer(mux)
}

func hostOf(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "https://")
}

func refString(srv *httptest.Server, path string) string {
	return fmt.Sprintf("%s/%s", hostOf(srv), path)
}
