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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/whatsacomputertho/containerimage-go/image"
	"golang.org/x/xerrors"
)

var deleteCmd = &cobra.Command{
	Use:           "delete <ref> [ref...]",
	Short:         "delete one or more images from their registries",
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

		if err := set.Delete(cmd.Context(), cfg); err != nil {
			return xerrors.Errorf("deleting images: %w", err)
		}
		logrus.WithField("count", set.Len()).Info("deleted images")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
