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

package regclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/whatsacomputertho/containerimage-go/auth"
	"golang.org/x/xerrors"
)

// HTTPError is returned when the registry answers a request with a
// non-2xx status, after the auth dance (if any) has already been tried.
type HTTPError struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("registry request to %s failed: %d: %s", e.URL, e.StatusCode, string(e.Body))
}

// doRequest issues method url with the given extra headers, and if the
// registry challenges it with a 401 plus a Www-Authenticate header,
// retries exactly once after exchanging regAuth for a bearer token per
// the challenge. None of this package's callers send a request body.
func (c *Client) doRequest(ctx context.Context, method, url string, headers http.Header, regAuth string, found bool) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, url, headers)
	if err != nil {
		return nil, err
	}
	if found {
		req.Header.Set("Authorization", "Basic "+regAuth)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("requesting %s: %w", url, err)
	}

	if res.StatusCode == http.StatusUnauthorized && res.Header.Get("Www-Authenticate") != "" {
		scheme, token, err := c.exchangeToken(ctx, res, regAuth)
		res.Body.Close()
		if err != nil {
			return nil, err
		}

		req, err = c.newRequest(ctx, method, url, headers)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", scheme+" "+token)
		res, err = c.http.Do(req)
		if err != nil {
			return nil, xerrors.Errorf("requesting %s: %w", url, err)
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		defer res.Body.Close()
		body, _ := io.ReadAll(res.Body)
		return nil, &HTTPError{StatusCode: res.StatusCode, Body: body, URL: url}
	}
	return res, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, headers http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, xerrors.Errorf("building %s %s: %w", method, url, err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// exchangeToken performs the bearer-token half of the auth dance: parse
// the challenge off res, request a token from its realm (sending regAuth
// as Basic auth if one was found), and return the scheme to send the
// token back under.
func (c *Client) exchangeToken(ctx context.Context, res *http.Response, regAuth string) (string, string, error) {
	challenge, err := auth.ParseChallenge(res.Header.Get("Www-Authenticate"))
	if err != nil {
		return "", "", err
	}

	tokenReq, err := http.NewRequestWithContext(ctx, http.MethodGet, challenge.TokenURL(), nil)
	if err != nil {
		return "", "", xerrors.Errorf("building token request: %w", err)
	}
	if regAuth != "" {
		tokenReq.Header.Set("Authorization", "Basic "+regAuth)
	}

	tokenRes, err := c.http.Do(tokenReq)
	if err != nil {
		return "", "", xerrors.Errorf("requesting token from %s: %w", challenge.Realm, err)
	}
	defer tokenRes.Body.Close()

	if tokenRes.StatusCode < 200 || tokenRes.StatusCode >= 300 {
		body, _ := io.ReadAll(tokenRes.Body)
		return "", "", &HTTPError{StatusCode: tokenRes.StatusCode, Body: body, URL: challenge.Realm}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := decodeJSON(tokenRes.Body, &payload); err != nil {
		return "", "", xerrors.Errorf("decoding token response: %w", err)
	}
	return challenge.Scheme, payload.Token, nil
}
