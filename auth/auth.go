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

// Package auth models the opaque docker-config-JSON credentials
// structure ({"auths": {"<prefix>": {"auth": "<base64>"}}}) and the
// bearer-challenge handshake used to exchange it for a registry token.
//
// This package never reads a credentials file itself - callers decode
// their own auth.json (or equivalent) into a Config and pass it in; home
// directory / AUTH_FILE_PATH discovery is an explicit Non-goal.
package auth

import (
	"encoding/json"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"golang.org/x/xerrors"
)

// Entry is a single registry's credentials, as found under "auths".
type Entry struct {
	Auth string `json:"auth"`
}

// Config is the decoded form of a docker-config-JSON credentials document.
type Config struct {
	Auths map[string]Entry `json:"auths"`
}

// Parse decodes raw credentials JSON into a Config.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, xerrors.Errorf("decoding auth config: %w", err)
	}
	return c, nil
}

// Select returns the base64 "user:pass" auth string for whichever
// registry entry's key is the longest literal prefix of ref. ok is false
// when no entry's key is a prefix of ref at all.
func Select(ref string, cfg Config) (string, bool, error) {
	lastMatch := ""
	found := false
	for registry := range cfg.Auths {
		if !hasPrefix(ref, registry) {
			continue
		}
		if len(registry) > len(lastMatch) {
			lastMatch = registry
			found = true
		}
	}
	if !found {
		return "", false, nil
	}
	entry := cfg.Auths[lastMatch]
	if entry.Auth == "" {
		return "", false, xerrors.Errorf("registry %q: %w", lastMatch, cierrors.ErrMalformedAuth)
	}
	return entry.Auth, true, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
