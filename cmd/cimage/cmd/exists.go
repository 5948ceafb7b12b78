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
	"os"

	"github.com/spf13/cobra"
	"github.com/whatsacomputertho/containerimage-go/image"
	"golang.org/x/xerrors"
)

var existsCmd = &cobra.Command{
	Use:           "exists <ref>",
	Short:         "check whether a reference resolves to an image in its registry",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAuth()
		if err != nil {
			return xerrors.Errorf("loading auth: %w", err)
		}

		img, err := image.New(args[0])
		if err != nil {
			return xerrors.Errorf("parsing reference: %w", err)
		}

		ok, err := img.Exists(cmd.Context(), cfg)
		if err != nil {
			return xerrors.Errorf("checking %s: %w", args[0], err)
		}

		fmt.Println(ok)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(existsCmd)
}
