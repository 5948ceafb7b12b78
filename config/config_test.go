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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatsacomputertho/containerimage-go/config"
)

func TestParseValid(t *testing.T) {
	doc := []byte(`{
		"architecture": "amd64",
		"os": "linux",
		"created": "2024-01-01T00:00:00Z",
		"Author": "team",
		"Labels": {"maintainer": "team"},
		"config": {"Env": ["PATH=/usr/bin"]},
		"rootfs": {"type": "layers", "diff_ids": ["sha256:abc"]}
	}`)
	c, err := config.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "amd64", c.Architecture())
	assert.Equal(t, "linux", c.OS())
	assert.Equal(t, "team", c.Author())
	assert.Equal(t, []string{"PATH=/usr/bin"}, c.Env())
	assert.Equal(t, "team", c.Labels()["maintainer"])

	p, err := c.Platform()
	require.NoError(t, err)
	assert.Equal(t, "linux/amd64", p.String())
}

func TestParseMissingRequired(t *testing.T) {
	_, err := config.Parse([]byte(`{"architecture":"amd64"}`))
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	doc := []byte(`{"architecture":"amd64","os":"linux","rootfs":{"type":"layers","diff_ids":[]}}`)
	c, err := config.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "", c.CreatedDate())
	assert.Equal(t, "", c.Author())
	assert.Empty(t, c.Labels())
	assert.Empty(t, c.Env())
}
