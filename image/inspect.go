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

package image

import (
	"context"
	"encoding/json"

	"github.com/whatsacomputertho/containerimage-go/auth"
	cierrors "github.com/whatsacomputertho/containerimage-go/errors"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

// Inspect is a summary record describing a single-arch image, equivalent
// to the output of "skopeo inspect". It is always built from a
// host-platform-resolved manifest plus its config blob, never from a fat
// manifest directly.
type Inspect struct {
	raw map[string]interface{}
}

// InspectFromMap validates an already-decoded inspect document. Exported
// so callers that received one over the wire (rather than building it via
// Image.Inspect) can still validate and wrap it.
func InspectFromMap(doc map[string]interface{}) (Inspect, error) {
	result, err := gojsonschema.Validate(inspectSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Inspect{}, xerrors.Errorf("validating inspect: %w", err)
	}
	if !result.Valid() {
		return Inspect{}, xerrors.Errorf("%v: %w", result.Errors(), cierrors.ErrInvalidManifest)
	}
	return Inspect{raw: doc}, nil
}

// MarshalJSON returns the inspect record's underlying JSON document.
func (i Inspect) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.raw)
}

// Inspect builds a summary record for the image: its host-platform
// manifest's digest, config, and layer metadata. Name and Tag are
// populated when the reference carries them; DockerVersion is always ""
// since this module never parses the legacy v2s1 manifest format that
// alone would carry it.
func (img *Image) Inspect(ctx context.Context, cfg auth.Config) (Inspect, error) {
	m, err := img.HostPlatformManifest(ctx, cfg)
	if err != nil {
		return Inspect{}, err
	}

	digest, err := img.Digest(ctx, cfg)
	if err != nil {
		return Inspect{}, err
	}

	name, err := img.ref.Name()
	if err != nil {
		return Inspect{}, err
	}
	conf, err := img.configFor(ctx, m, name, cfg)
	if err != nil {
		return Inspect{}, err
	}

	layerDescs, err := m.LayerDescriptors()
	if err != nil {
		return Inspect{}, err
	}
	layers := make([]string, 0, len(layerDescs))
	layersData := make([]interface{}, 0, len(layerDescs))
	for _, d := range layerDescs {
		layers = append(layers, string(d.Digest()))
		entry := map[string]interface{}{
			"MIMEType": d.MediaType(),
			"Digest":   string(d.Digest()),
			"Size":     d.Size(),
		}
		if annotations, ok := d.Annotations(); ok {
			entry["Annotations"] = toInterfaceMap(annotations)
		}
		layersData = append(layersData, entry)
	}

	doc := map[string]interface{}{
		"Digest":        digest,
		"Created":       conf.CreatedDate(),
		"DockerVersion": "",
		"Labels":        toInterfaceMap(conf.Labels()),
		"Architecture":  conf.Architecture(),
		"Os":            conf.OS(),
		"Layers":        layers,
		"LayersData":    layersData,
		"Env":           conf.Env(),
		"Author":        conf.Author(),
	}
	if name != "" {
		doc["Name"] = name
	}
	if img.ref.IsTagRef() {
		tag, err := img.ref.Identifier()
		if err == nil {
			doc["Tag"] = tag
		}
	}
	if variant, ok := conf.Variant(); ok {
		doc["Variant"] = variant
	}

	return InspectFromMap(doc)
}

func toInterfaceMap(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
