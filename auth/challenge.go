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

package auth

import (
	"net/url"
	"strings"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"golang.org/x/xerrors"
)

// Challenge is a parsed Www-Authenticate bearer challenge.
type Challenge struct {
	// Scheme is the auth scheme the registry expects the exchanged
	// credential to be sent back under, e.g. "Bearer".
	Scheme string
	// Realm is the token-issuing endpoint.
	Realm string
	// Params holds the remaining challenge key-value pairs (service,
	// scope, ...), to be forwarded as query parameters to Realm.
	Params map[string]string
}

// ParseChallenge parses a Www-Authenticate header value of the form
// `Scheme k1="v1",k2="v2"`, per the registry auth spec's token challenge.
func ParseChallenge(header string) (Challenge, error) {
	components := strings.SplitN(header, " ", 2)
	if len(components) != 2 {
		return Challenge{}, xerrors.Errorf("%q: %w", header, cierrors.ErrAuthChallengeMalformed)
	}
	scheme := components[0]
	params := map[string]string{}
	for _, pair := range strings.Split(components[1], ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return Challenge{}, xerrors.Errorf("%q: %w", header, cierrors.ErrAuthChallengeMalformed)
		}
		params[kv[0]] = strings.Trim(kv[1], `"`)
	}
	realm, ok := params["realm"]
	if !ok {
		return Challenge{}, xerrors.Errorf("missing realm: %w", cierrors.ErrAuthChallengeMalformed)
	}
	delete(params, "realm")
	return Challenge{Scheme: scheme, Realm: realm, Params: params}, nil
}

// TokenURL builds the full token-request URL for this challenge.
func (c Challenge) TokenURL() string {
	q := url.Values{}
	for k, v := range c.Params {
		q.Set(k, v)
	}
	return c.Realm + "?" + q.Encode()
}
