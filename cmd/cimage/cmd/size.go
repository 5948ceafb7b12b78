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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/whatsacomputertho/containerimage-go/image"
	"golang.org/x/xerrors"
)

var sizeOpts = struct {
	formatted bool
}{}

var sizeCmd = &cobra.Command{
	Use:   "size <ref> [ref...]",
	Short: "print the deduplicated size of one or more images",
	Long: `size reports the combined, deduplicated size in bytes of every image
given. A manifest list's entries are always counted individually (each is
a distinct arch image); the config and layer blobs of every arch manifest
in the set - whether referenced directly or through a manifest list - are
deduplicated by digest before being summed in.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAuth()
		if err != nil {
			return xerrors.Errorf("loading auth: %w", err)
		}

		set := image.NewSet()
		for _, ref := range args {
			img, err := image.New(ref)
			if err != nil {
				return xerrors.Errorf("parsing reference %q: %w", ref, err)
			}
			set.Append(img)
		}

		if sizeOpts.formatted {
			formatted, err := set.SizeFormatted(cmd.Context(), cfg)
			if err != nil {
				return xerrors.Errorf("computing size: %w", err)
			}
			fmt.Println(formatted)
			return nil
		}

		size, err := set.Size(cmd.Context(), cfg)
		if err != nil {
			return xerrors.Errorf("computing size: %w", err)
		}
		fmt.Println(size)
		return nil
	},
}

func init() {
	sizeCmd.Flags().BoolVar(
		&sizeOpts.formatted,
		"human",
		false,
		"print size formatted to the nearest byte unit (e.g. \"2.51 MB\")",
	)
	rootCmd.AddCommand(sizeCmd)
}
