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

// Package regclient is an OCI Distribution Registry HTTP API v2 client:
// manifest, blob, and tag-list requests, with the Basic-then-Bearer
// challenge/response auth dance and Docker-Content-Digest recomputation
// when a registry omits the header.
package regclient

import (
	"net/http"
	"strings"
	"time"

	"github.com/whatsacomputertho/containerimage-go/manifest"
)

// defaultRequestManifestMediaTypes are the Accept header values sent on a
// manifest GET, in the fixed order a multi-schema registry should prefer
// them.
var defaultRequestManifestMediaTypes = []string{
	manifest.MediaTypeV2S2List,
	manifest.MediaTypeV2S2Manifest,
	manifest.MediaTypeOCIIndex,
	manifest.MediaTypeOCIManifest,
	manifest.MediaTypeV2S1Manifest,
	manifest.MediaTypeV2S1SignedManifest,
}

// DockerContentDigestHeader is the header a registry sets on manifest
// responses carrying the canonical digest of the bytes served.
const DockerContentDigestHeader = "Docker-Content-Digest"

// Client is an OCI distribution registry API client. The zero value is not
// usable; construct one with New. A Client is stateless and safe for
// concurrent use across goroutines fetching unrelated references.
type Client struct {
	http *http.Client
}

// New returns a Client using a default HTTP transport with a 30-second
// timeout. Use NewWithHTTPClient to supply a custom *http.Client (for
// tests, proxies, or custom TLS configuration).
func New() *Client {
	return NewWithHTTPClient(&http.Client{Timeout: 30 * time.Second})
}

// NewWithHTTPClient returns a Client that issues requests through hc.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{http: hc}
}

// BaseURL constructs the distribution registry API base URL for ref, e.g.
// "quay.io/ibm/software/cloudpak/hello-world:latest" becomes
// "https://quay.io/v2/ibm/software/cloudpak/hello-world".
//
// This is deliberately independent of the reference package's Registry,
// Path, and Name accessors: they decompose a reference in terms of its
// grammar (domain vs. path-component vs. name), while the registry base
// URL is built by splitting the raw reference string on "/" and treating
// the first component as the domain and the last as the name - a
// different, simpler decomposition that the two must not be conflated
// with.
func BaseURL(ref string) string {
	components := strings.Split(ref, "/")
	domain := components[0]

	var path string
	if len(components) >= 2 {
		path = strings.Join(components[1:len(components)-1], "/")
	}

	name := components[len(components)-1]
	name = strings.SplitN(name, "@", 2)[0]
	name = strings.SplitN(name, ":", 2)[0]

	if domain == "docker.io" {
		domain = "registry-1.docker.io"
	}

	if path == "" {
		return "https://" + domain + "/v2/" + name
	}
	return "https://" + domain + "/v2/" + path + "/" + name
}

// acceptManifestTypes returns the comma-joined Accept header value sent on
// a manifest GET.
func acceptManifestTypes() string {
	return strings.Join(defaultRequestManifestMediaTypes, ",")
}
