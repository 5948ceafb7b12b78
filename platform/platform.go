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

// Package platform represents the platform metadata attached to manifest
// list / image index entries: OS, architecture, and optional variant.
package platform

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

// archMap translates uname-style machine names to Go's GOARCH vocabulary.
var archMap = map[string]string{
	"x86_64":  "amd64",
	"amd64":   "amd64",
	"i386":    "386",
	"i686":    "386",
	"arm64":   "arm64",
	"aarch64": "arm64",
	"armv7l":  "arm",
	"armv6l":  "arm",
}

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Platform holds validated platform metadata for a manifest list or
// image index entry.
type Platform struct {
	raw map[string]interface{}
}

// Parse validates raw platform JSON and returns a Platform.
func Parse(data []byte) (Platform, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Platform{}, xerrors.Errorf("decoding platform: %w", cierrors.ErrInvalidPlatform)
	}
	return FromMap(doc)
}

// FromMap validates an already-decoded platform document.
func FromMap(doc map[string]interface{}) (Platform, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Platform{}, xerrors.Errorf("validating platform: %w", err)
	}
	if !result.Valid() {
		return Platform{}, xerrors.Errorf("%v: %w", result.Errors(), cierrors.ErrInvalidPlatform)
	}
	return Platform{raw: doc}, nil
}

// DetectHostPlatform detects the platform of the running host, honoring
// the HOST_OS/HOST_ARCH environment variable overrides.
func DetectHostPlatform() (Platform, error) {
	return HostPlatform(runtime.GOOS, runtime.GOARCH)
}

// HostPlatform builds the host platform from explicit goos/goarch values
// (runtime.GOOS/runtime.GOARCH in production, fixed values in tests),
// still honoring the HOST_OS/HOST_ARCH environment variable overrides.
func HostPlatform(goos, goarch string) (Platform, error) {
	hostOS := goos
	if v, ok := os.LookupEnv("HOST_OS"); ok {
		hostOS = v
	}
	hostArch := normalizeArch(goarch)
	if v, ok := os.LookupEnv("HOST_ARCH"); ok {
		hostArch = normalizeArch(v)
	}
	return FromMap(map[string]interface{}{
		"os":           hostOS,
		"architecture": hostArch,
	})
}

func normalizeArch(arch string) string {
	lower := strings.ToLower(arch)
	if mapped, ok := archMap[lower]; ok {
		return mapped
	}
	return lower
}

// Architecture returns the platform's CPU architecture.
func (p Platform) Architecture() string {
	return p.raw["architecture"].(string)
}

// OS returns the platform's operating system name.
func (p Platform) OS() string {
	return p.raw["os"].(string)
}

// OSVersion returns the platform's operating system version, if present.
func (p Platform) OSVersion() (string, bool) {
	v, ok := p.raw["os.version"]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// OSFeatures returns the platform's OS feature list, if present.
func (p Platform) OSFeatures() ([]string, bool) {
	return stringSlice(p.raw["os.features"])
}

// Variant returns the platform's CPU variant, if present.
func (p Platform) Variant() (string, bool) {
	v, ok := p.raw["variant"]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// Features returns the platform's reserved feature list, if present.
func (p Platform) Features() ([]string, bool) {
	return stringSlice(p.raw["features"])
}

func stringSlice(v interface{}) ([]string, bool) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out, true
}

// String formats the platform as "<os>/<arch>[/<variant>]".
func (p Platform) String() string {
	s := fmt.Sprintf("%s/%s", p.OS(), p.Architecture())
	if variant, ok := p.Variant(); ok {
		s = fmt.Sprintf("%s/%s", s, variant)
	}
	return s
}

// Equal compares two platforms by their string form.
func (p Platform) Equal(other Platform) bool {
	return p.String() == other.String()
}

// MarshalJSON returns the platform's underlying JSON document.
func (p Platform) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}
