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
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/image"
	"github.com/whatsacomputertho/containerimage-go/regclient"
)

func TestSetSizeDedupsAcrossImages(t *testing.T) {
	srv := newRegistryFixture()
	defer srv.Close()

	client := regclient.NewWithHTTPClient(srv.Client())

	img1, err := image.New(refString(srv, "arch:1"))
	require.NoError(t, err)
	img2, err := image.New(refString(srv, "arch:2"))
	require.NoError(t, err)

	set := image.NewSet()
	set.Append(img1.WithClient(client))
	set.Append(img2.WithClient(client))

	size, err := set.Size(context.Background(), auth.Config{})
	require.NoError(t, err)

	// Both images resolve to the same config/layer digests in this
	// fixture, so they must contribute once, not twice.
	require.Equal(t, int64(100+1000), size)
}

func TestSetLenAndRange(t *testing.T) {
	srv := newRegistryFixture()
	defer srv.Close()

	img1, err := image.New(refString(srv, "arch:1"))
	require.NoError(t, err)

	set := image.NewSet()
	set.Append(img1)
	require.Equal(t, 1, set.Len())

	visited := 0
	set.Range(func(img *image.Image) bool {
		visited++
		return true
	})
	require.Equal(t, 1, visited)
}
