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

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/auth"
)

func TestSelectLongestPrefix(t *testing.T) {
	cfg, err := auth.Parse([]byte(`{
		"auths": {
			"quay.io": {"auth": "cXVheS1nZW5lcmFsOnBhc3M="},
			"quay.io/ibm/software": {"auth": "cXVheS1pYm06cGFzcw=="}
		}
	}`))
	require.NoError(t, err)

	got, ok, err := auth.Select("quay.io/ibm/software/cloudpak/hello-world:latest", cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "cXVheS1pYm06cGFzcw==", got)
}

func TestSelectNoMatch(t *testing.T) {
	cfg, err := auth.Parse([]byte(`{"auths": {"docker.io": {"auth": "x"}}}`))
	require.NoError(t, err)
	_, ok, err := auth.Select("quay.io/alpine:3", cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectMalformedEntry(t *testing.T) {
	cfg, err := auth.Parse([]byte(`{"auths": {"quay.io": {}}}`))
	require.NoError(t, err)
	_, _, err = auth.Select("quay.io/alpine:3", cfg)
	require.Error(t, err)
}

func TestParseChallenge(t *testing.T) {
	header := `Bearer realm="https://auth.docker.io/token",service="registry.docker.io",scope="repository:library/alpine:pull"`
	c, err := auth.ParseChallenge(header)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", c.Scheme)
	assert.Equal(t, "https://auth.docker.io/token", c.Realm)
	assert.Equal(t, "registry.docker.io", c.Params["service"])
	assert.Contains(t, c.TokenURL(), "https://auth.docker.io/token?")
}

func TestParseChallengeMissingRealm(t *testing.T) {
	_, err := auth.ParseChallenge(`Bearer service="x"`)
	require.Error(t, err)
}

func TestParseChallengeMalformed(t *testing.T) {
	_, err := auth.ParseChallenge(`garbage`)
	require.Error(t, err)
}
