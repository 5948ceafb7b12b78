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
	"fmt"

	"github.com/whatsacomputertho/containerimage-go/auth"
)

// FormatSize renders a byte count as a human readable string at its
// nearest unit, e.g. "2.51 MB".
func FormatSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	f := float64(size)
	for _, suffix := range units {
		if f < 1024 {
			return fmt.Sprintf("%.2f %s", f, suffix)
		}
		f /= 1024
	}
	return fmt.Sprintf("%.2f TB", f)
}

// SizeFormatted returns the image's size formatted via FormatSize.
func (img *Image) SizeFormatted(ctx context.Context, cfg auth.Config) (string, error) {
	size, err := img.Size(ctx, cfg)
	if err != nil {
		return "", err
	}
	return FormatSize(size), nil
}

// SizeFormatted returns the set's deduplicated size formatted via
// FormatSize.
func (s *Set) SizeFormatted(ctx context.Context, cfg auth.Config) (string, error) {
	size, err := s.Size(ctx, cfg)
	if err != nil {
		return "", err
	}
	return FormatSize(size), nil
}
