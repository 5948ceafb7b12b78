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
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/auth"
	"github.com/whatsacomputertho/containerimage-go/image"
	"github.com/whatsacomputertho/containerimage-go/regclient"
)

func TestInspectArchManifest(t *testing.T) {
	srv := newRegistryFixture()
	defer srv.Close()

	img, err := image.New(refString(srv, "arch:1"))
	require.NoError(t, err)
	img = img.WithClient(regclient.NewWithHTTPClient(srv.Client()))

	insp, err := img.Inspect(context.Background(), auth.Config{})
	require.NoError(t, err)

	raw, err := json.Marshal(insp)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Equal(t, archDigestAmd64, doc["Digest"])
	require.Equal(t, "", doc["DockerVersion"])
	require.Equal(t, "amd64", doc["Architecture"])
	require.Equal(t, "linux", doc["Os"])
	require.Equal(t, "1", doc["Tag"])
	require.Equal(t, []interface{}{"PATH=/usr/bin"}, doc["Env"])
	require.Equal(t, map[string]interface{}{"foo": "bar"}, doc["Labels"])
	layers, ok := doc["Layers"].([]interface{})
	require.True(t, ok)
	require.Len(t, layers, 1)
	require.Equal(t, layerDigest, layers[0])
}

func TestInspectFatManifestResolvesHostPlatform(t *testing.T) {
	os.Setenv("HOST_OS", "linux")
	os.Setenv("HOST_ARCH", "amd64")
	defer os.Unsetenv("HOST_OS")
	defer os.Unsetenv("HOST_ARCH")

	srv := newRegistryFixture()
	defer srv.Close()

	img, err := image.New(refString(srv, "fat@"+fatDigest))
	require.NoError(t, err)
	img = img.WithClient(regclient.NewWithHTTPClient(srv.Client()))

	insp, err := img.Inspect(context.Background(), auth.Config{})
	require.NoError(t, err)

	raw, err := json.Marshal(insp)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Equal(t, "amd64", doc["Architecture"])
	_, hasTag := doc["Tag"]
	require.False(t, hasTag)
}
