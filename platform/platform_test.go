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

package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/platform"
)

func TestParseValid(t *testing.T) {
	doc := []byte(`{"os":"linux","architecture":"amd64","variant":"v8"}`)
	p, err := platform.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "linux/amd64/v8", p.String())
	assert.Equal(t, "amd64", p.Architecture())
	assert.Equal(t, "linux", p.OS())
}

func TestParseMissingRequired(t *testing.T) {
	_, err := platform.Parse([]byte(`{"architecture":"amd64"}`))
	require.Error(t, err)
}

func TestParseRejectsAdditionalProperties(t *testing.T) {
	_, err := platform.Parse([]byte(`{"os":"linux","architecture":"amd64","bogus":"x"}`))
	require.Error(t, err)
}

func TestHostPlatformArchNormalization(t *testing.T) {
	t.Setenv("HOST_OS", "linux")
	t.Setenv("HOST_ARCH", "x86_64")
	p, err := platform.HostPlatform("linux", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "amd64", p.Architecture())
}

func TestEqual(t *testing.T) {
	a, err := platform.Parse([]byte(`{"os":"linux","architecture":"amd64"}`))
	require.NoError(t, err)
	b, err := platform.Parse([]byte(`{"os":"linux","architecture":"amd64"}`))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
