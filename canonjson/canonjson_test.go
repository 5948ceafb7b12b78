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

package canonjson_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/canonjson"
)

func TestCanonicalizePreservesKeyOrder(t *testing.T) {
	doc := []byte(`{"zebra": 1, "apple": 2, "mango": 3}`)
	got, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n   \"zebra\": 1,\n   \"apple\": 2,\n   \"mango\": 3\n}", string(got))
}

func TestCanonicalizeNestedIndent(t *testing.T) {
	doc := []byte(`{"a": {"b": 1}, "c": [1, 2]}`)
	got, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	want := "{\n   \"a\": {\n      \"b\": 1\n   },\n   \"c\": [\n      1,\n      2\n   ]\n}"
	assert.Equal(t, want, string(got))
}

func TestCanonicalizeEmptyContainers(t *testing.T) {
	doc := []byte(`{"a": {}, "b": []}`)
	got, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n   \"a\": {},\n   \"b\": []\n}", string(got))
}

func TestCanonicalizeNumberLiteralsPreserved(t *testing.T) {
	doc := []byte(`{"n": 1.50, "m": 100}`)
	got, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n   \"n\": 1.50,\n   \"m\": 100\n}", string(got))
}

func TestCanonicalizeEscapesNonASCII(t *testing.T) {
	doc := []byte(`{"name": "café"}`)
	got, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n   \"name\": \"caf\\u00e9\"\n}", string(got))
}

func TestCanonicalizeIsDeterministicForDigest(t *testing.T) {
	doc := []byte(`{"schemaVersion": 2, "mediaType": "application/vnd.docker.distribution.manifest.v2+json"}`)
	first, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)
	second, err := canonjson.Canonicalize(doc)
	require.NoError(t, err)

	h1 := sha256.Sum256(first)
	h2 := sha256.Sum256(second)
	assert.Equal(t, hex.EncodeToString(h1[:]), hex.EncodeToString(h2[:]))
}
