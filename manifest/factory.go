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

package manifest

import (
	"encoding/json"

	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"golang.org/x/xerrors"
)

// Any is returned by Parse: it is either a Manifest or a List, and
// callers type-switch on the concrete variant.
type Any interface{}

// Parse dispatches a raw registry manifest response to the first
// matching variant, in the fixed order v2s2 manifest, v2s2 list, OCI
// manifest, OCI index - the same probing order manifestfactory.py uses.
func Parse(data []byte) (Any, error) {
	doc, err := decodeDoc(data)
	if err != nil {
		return nil, err
	}
	return FromMap(doc)
}

// FromMap dispatches an already-decoded document the same way Parse does.
func FromMap(doc map[string]interface{}) (Any, error) {
	if m, err := V2S2ManifestFromMap(doc); err == nil {
		return m, nil
	}
	if l, err := V2S2ListFromMap(doc); err == nil {
		return l, nil
	}
	if m, err := OCIManifestFromMap(doc); err == nil {
		return m, nil
	}
	if l, err := OCIIndexFromMap(doc); err == nil {
		return l, nil
	}
	raw, _ := json.Marshal(doc)
	return nil, xerrors.Errorf("%s: %w", string(raw), cierrors.ErrInvalidManifest)
}
