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

// List is the format-agnostic view of a fat manifest (manifest list or
// image index), satisfied by both V2S2List and OCIIndex.
type List interface {
	Entries() ([]Entry, error)
	EntrySizes() (int64, error)
	MediaType() string
	Raw() map[string]interface{}
}

type listBase struct {
	raw map[string]interface{}
}

func (l listBase) Entries() ([]Entry, error) {
	rawEntries, _ := l.raw["manifests"].([]interface{})
	out := make([]Entry, 0, len(rawEntries))
	for _, re := range rawEntries {
		m, ok := re.(map[string]interface{})
		if !ok {
			return nil, xerrors.Errorf("manifests entry: %w", cierrors.ErrInvalidManifest)
		}
		out = append(out, Entry{raw: m})
	}
	return out, nil
}

// EntrySizes returns the combined size of each entry's descriptor, as
// reported in the fat manifest itself. Entry sizes are never
// deduplicated across entries - each points at a logically distinct
// arch manifest, unlike the layers/configs those manifests reference.
func (l listBase) EntrySizes() (int64, error) {
	entries, err := l.Entries()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		total += e.Size()
	}
	return total, nil
}

func (l listBase) MediaType() string {
	mt, _ := l.raw["mediaType"].(string)
	return mt
}

func (l listBase) Raw() map[string]interface{} {
	return l.raw
}

func (l listBase) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.raw)
}
