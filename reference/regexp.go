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

package reference

import "regexp"

// Regexp atoms and composites for container image reference grammar,
// ported from containers/image/docker/reference/regexp.go by way of
// this module's original Python reimplementation. RE2 (Go's regexp)
// supports every construct the grammar needs - no backreferences.
const (
	alphaNumeric = `[a-z0-9]+`
	separator    = `(?:[._]|__|[-]*)`
	domainComp   = `(?:[a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])`
	tagPat       = `[\w][\w.-]{0,127}`
	digestPat    = `[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*:[0-9a-fA-F]{32,}`
)

func literal(s string) string {
	return regexp.QuoteMeta(s)
}

func expression(res ...string) string {
	out := ""
	for _, r := range res {
		out += r
	}
	return out
}

func optional(res ...string) string {
	return group(expression(res...)) + `?`
}

func repeated(res ...string) string {
	return group(expression(res...)) + `+`
}

func group(res ...string) string {
	return `(?:` + expression(res...) + `)`
}

func capture(res ...string) string {
	return `(` + expression(res...) + `)`
}

func anchored(res ...string) string {
	return `^` + expression(res...) + `$`
}

// nameComponent restricts registry path component names to start with at
// least one letter or number, with following parts separated by one
// period, one or two underscores, or repeated dashes.
var nameComponent = expression(
	alphaNumeric,
	optional(repeated(separator, alphaNumeric)),
)

// domainPat is purposely a subset of what DNS allows, for backwards
// compatibility with Docker image names.
var domainPat = expression(
	domainComp,
	optional(repeated(literal("."), domainComp)),
	optional(literal(":"), `[0-9]+`),
)

var (
	anchoredDomainRe = regexp.MustCompile(anchored(domainPat))
	anchoredTagRe    = regexp.MustCompile(anchored(tagPat))
	anchoredDigestRe = regexp.MustCompile(anchored(digestPat))
)

var namePat = expression(
	optional(domainPat, literal("/")),
	nameComponent,
	optional(repeated(literal("/"), nameComponent)),
)

var anchoredNameRe = regexp.MustCompile(anchored(
	optional(capture(domainPat), literal("/")),
	capture(nameComponent, optional(repeated(literal("/"), nameComponent))),
))

var referencePatRe = regexp.MustCompile(anchored(
	capture(namePat),
	optional(literal(":"), capture(tagPat)),
	optional(literal("@"), capture(digestPat)),
))
