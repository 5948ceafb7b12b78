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

// Package config implements the container image runtime configuration
// document (the blob referenced by a manifest's "config" descriptor).
package config

import (
	"encoding/json"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/whatsacomputertho/containerimage-go/platform"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

// Config is a validated container image runtime configuration document.
type Config struct {
	raw map[string]interface{}
}

// Parse validates raw config JSON and returns a Config.
func Parse(data []byte) (Config, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, xerrors.Errorf("decoding config: %w", cierrors.ErrInvalidConfig)
	}
	return FromMap(doc)
}

// FromMap validates an already-decoded config document.
func FromMap(doc map[string]interface{}) (Config, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Config{}, xerrors.Errorf("validating config: %w", err)
	}
	if !result.Valid() {
		return Config{}, xerrors.Errorf("%v: %w", result.Errors(), cierrors.ErrInvalidConfig)
	}
	return Config{raw: doc}, nil
}

// Architecture returns the config's CPU architecture.
func (c Config) Architecture() string {
	return c.raw["architecture"].(string)
}

// OS returns the config's operating system name.
func (c Config) OS() string {
	return c.raw["os"].(string)
}

// Variant returns the config's CPU variant, if present.
func (c Config) Variant() (string, bool) {
	v, ok := c.raw["variant"].(string)
	return v, ok
}

// Platform returns the platform the config targets.
func (c Config) Platform() (platform.Platform, error) {
	doc := map[string]interface{}{
		"os":           c.OS(),
		"architecture": c.Architecture(),
	}
	if variant, ok := c.Variant(); ok {
		doc["variant"] = variant
	}
	return platform.FromMap(doc)
}

// Labels returns the container image labels, defaulting to an empty map.
// Matches the original implementation's (somewhat unusual) choice to read
// "Labels" directly off the config document rather than from its nested
// runtime "config" object.
func (c Config) Labels() map[string]string {
	return stringMap(c.raw["Labels"])
}

// CreatedDate returns the image creation timestamp, defaulting to "".
func (c Config) CreatedDate() string {
	if s, ok := c.raw["created"].(string); ok {
		return s
	}
	return ""
}

// RuntimeConfig returns the nested runtime config object, defaulting to
// an empty map.
func (c Config) RuntimeConfig() map[string]interface{} {
	if m, ok := c.raw["config"].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// Env returns the environment variables baked into the image at build
// time, defaulting to an empty slice.
func (c Config) Env() []string {
	raw, ok := c.RuntimeConfig()["Env"].([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Author returns the image author, defaulting to "".
func (c Config) Author() string {
	if s, ok := c.raw["Author"].(string); ok {
		return s
	}
	return ""
}

func stringMap(v interface{}) map[string]string {
	raw, ok := v.(map[string]interface{})
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
