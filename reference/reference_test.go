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

package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/reference"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{"tag ref", "quay.io/ibm/software/cloudpak/hello-world:latest", false},
		{"docker.io short", "alpine:3", false},
		{"digest ref", "alpine@sha256:" + fortyHexDigits(), false},
		{"no tag", "alpine", false},
		{"empty", "", true},
		{"invalid char", "alpine:3:bad", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := reference.Parse(tc.ref)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ref, ref.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	raw := "quay.io/ibm/software/cloudpak/hello-world:latest"
	ref, err := reference.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, ref.String())
}

func TestIdentifierAndKind(t *testing.T) {
	ref, err := reference.Parse("alpine:3")
	require.NoError(t, err)
	assert.Equal(t, reference.KindTag, ref.Kind())
	id, err := ref.Identifier()
	require.NoError(t, err)
	assert.Equal(t, "3", id)

	ref, err = reference.Parse("alpine")
	require.NoError(t, err)
	id, err = ref.Identifier()
	require.NoError(t, err)
	assert.Equal(t, reference.DefaultTag, id)

	digestRef := "alpine@sha256:" + fortyHexDigits()
	ref, err = reference.Parse(digestRef)
	require.NoError(t, err)
	assert.Equal(t, reference.KindDigest, ref.Kind())
	id, err = ref.Identifier()
	require.NoError(t, err)
	assert.Equal(t, "sha256:"+fortyHexDigits(), id)
}

func TestNameRegistryPathShortName(t *testing.T) {
	ref, err := reference.Parse("quay.io/ibm/software/cloudpak/hello-world:latest")
	require.NoError(t, err)

	name, err := ref.Name()
	require.NoError(t, err)
	assert.Equal(t, "quay.io/ibm/software/cloudpak/hello-world", name)

	registry, err := ref.Registry()
	require.NoError(t, err)
	assert.Equal(t, "quay.io", registry)

	path, err := ref.Path()
	require.NoError(t, err)
	assert.Equal(t, "ibm/software/cloudpak/hello-world", path)

	short, err := ref.ShortName()
	require.NoError(t, err)
	assert.Equal(t, "hello-world", short)
}

func fortyHexDigits() string {
	return "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
}
