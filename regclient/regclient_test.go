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

package regclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/regclient"
)

func TestBaseURL(t *testing.T) {
	cases := map[string]string{
		"quay.io/ibm/software/cloudpak/hello-world:latest": "https://quay.io/v2/ibm/software/cloudpak/hello-world",
		"docker.io/library/alpine:3":                        "https://registry-1.docker.io/v2/library/alpine",
		"quay.io/alpine":                                     "https://quay.io/v2/alpine",
		"alpine":                                             "https://alpine/v2/alpine",
		"alpine:3":                                           "https://alpine:3/v2/alpine",
	}
	for ref, want := range cases {
		assert.Equal(t, want, regclient.BaseURL(ref), ref)
	}
}

func TestGetManifestTrustsDigestHeader(t *testing.T) {
	manifestBody := `{"schemaVersion":2,"mediaType":"application/vnd.docker.distribution.manifest.v2+json"}`
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/alpine/manifests/3", r.URL.Path)
		w.Header().Set("Docker-Content-Digest", "sha256:"+strings.Repeat("a", 64))
		w.Write([]byte(manifestBody))
	}))
	defer srv.Close()

	c := regclient.NewWithHTTPClient(srv.Client())
	ref := srv.URL[len("https://"):] + "/alpine:3"

	body, digest, err := c.GetManifest(context.Background(), ref, auth.Config{})
	require.NoError(t, err)
	assert.Equal(t, manifestBody, string(body))
	assert.Equal(t, "sha256:"+strings.Repeat("a", 64), digest)
}

func TestGetDigestFallsBackToCanonicalization(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"zebra":1,"apple":2}`))
	}))
	defer srv.Close()

	c := regclient.NewWithHTTPClient(srv.Client())
	ref := srv.URL[len("https://"):] + "/alpine:3"

	digest, err := c.GetDigest(context.Background(), ref, auth.Config{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "sha256:"))
	assert.Len(t, digest, len("sha256:")+64)
}

func TestAuthChallengeRetryFlow(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.Equal(t, "Basic dXNlcjpwYXNz", auth)
		w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer tokenSrv.Close()

	var regSrv *httptest.Server
	attempts := 0
	regSrv = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if r.Header.Get("Authorization") != "Bearer abc123" {
			w.Header().Set("Www-Authenticate", `Bearer realm="`+tokenSrv.URL+`",service="registry"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer regSrv.Close()

	cfg, err := auth.Parse([]byte(`{"auths": {"` + regSrv.URL[len("https://"):] + `": {"auth": "dXNlcjpwYXNz"}}}`))
	require.NoError(t, err)

	c := regclient.NewWithHTTPClient(regSrv.Client())
	ref := regSrv.URL[len("https://"):] + "/alpine:3"

	body, _, err := c.GetManifest(context.Background(), ref, cfg)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, 2, attempts)
}

func TestGetManifestHTTPError(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer srv.Close()

	c := regclient.NewWithHTTPClient(srv.Client())
	ref := srv.URL[len("https://"):] + "/alpine:3"

	_, _, err := c.GetManifest(context.Background(), ref, auth.Config{})
	require.Error(t, err)
	var httpErr *regclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestListTags(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/alpine/tags/list", r.URL.Path)
		w.Write([]byte(`{"name":"alpine","tags":["3","3.18"]}`))
	}))
	defer srv.Close()

	c := regclient.NewWithHTTPClient(srv.Client())
	ref := srv.URL[len("https://"):] + "/alpine:3"

	doc, err := c.ListTags(context.Background(), ref, auth.Config{})
	require.NoError(t, err)
	assert.Equal(t, "alpine", doc["name"])
}

func TestDeleteManifest(t *testing.T) {
	called := false
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := regclient.NewWithHTTPClient(srv.Client())
	ref := srv.URL[len("https://"):] + "/alpine:3"

	err := c.DeleteManifest(context.Background(), ref, auth.Config{})
	require.NoError(t, err)
	assert.True(t, called)
}
