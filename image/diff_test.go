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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/image"
)

func mustImage(t *testing.T, ref string) *image.Image {
	t.Helper()
	img, err := image.New(ref)
	require.NoError(t, err)
	return img
}

func TestSetDiffClassifiesByName(t *testing.T) {
	current := image.NewSet()
	current.Append(mustImage(t, "registry.example.com/app:v2"))     // updated (same name, different tag)
	current.Append(mustImage(t, "registry.example.com/unchanged:v1")) // common
	current.Append(mustImage(t, "registry.example.com/new:v1"))       // added

	previous := image.NewSet()
	previous.Append(mustImage(t, "registry.example.com/app:v1"))
	previous.Append(mustImage(t, "registry.example.com/unchanged:v1"))
	previous.Append(mustImage(t, "registry.example.com/gone:v1")) // removed

	diff, err := current.Diff(previous)
	require.NoError(t, err)

	require.Equal(t, 1, diff.Added.Len())
	require.Equal(t, 1, diff.Removed.Len())
	require.Equal(t, 1, diff.Updated.Len())
	require.Equal(t, 1, diff.Common.Len())

	diff.Added.Range(func(img *image.Image) bool {
		name, err := img.Name()
		require.NoError(t, err)
		require.Equal(t, "registry.example.com/new", name)
		return true
	})
	diff.Removed.Range(func(img *image.Image) bool {
		name, err := img.Name()
		require.NoError(t, err)
		require.Equal(t, "registry.example.com/gone", name)
		return true
	})
}

func TestSetDiffDigestMatchIsCommonEvenAcrossTagAndDigestRef(t *testing.T) {
	digest := "sha256:" + strings.Repeat("a", 64)

	current := image.NewSet()
	current.Append(mustImage(t, "registry.example.com/app:v1@"+digest))

	previous := image.NewSet()
	previous.Append(mustImage(t, "registry.example.com/app@"+digest))

	diff, err := current.Diff(previous)
	require.NoError(t, err)
	require.Equal(t, 1, diff.Common.Len())
	require.Equal(t, 0, diff.Updated.Len())
}
