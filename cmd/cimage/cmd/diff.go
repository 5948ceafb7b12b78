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

var diffOpts = struct {
	previous []string
}{}

var diffCmd = &cobra.Command{
	Use:   "diff <ref> [ref...] --previous <ref> [--previous <ref>...]",
	Short: "diff two sets of images, grouped by registry/path",
	Long: `diff compares the current set of references against the --previous
set, grouping images by name (registry and path, ignoring tag or digest).
An image present in both sets is reported as common when its tag or
digest matches across both, or updated otherwise; an image present in
only one set is added or removed accordingly.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := buildSet(args)
		if err != nil {
			return err
		}
		previous, err := buildSet(diffOpts.previous)
		if err != nil {
			return err
		}

		diff, err := current.Diff(previous)
		if err != nil {
			return xerrors.Errorf("diffing image sets: %w", err)
		}

		printDiffSection("Added", diff.Added)
		printDiffSection("Removed", diff.Removed)
		printDiffSection("Updated", diff.Updated)
		printDiffSection("Common", diff.Common)
		return nil
	},
}

func buildSet(refs []string) (*image.Set, error) {
	set := image.NewSet()
	for _, ref := range refs {
		img, err := image.New(ref)
		if err != nil {
			return nil, xerrors.Errorf("parsing reference %q: %w", ref, err)
		}
		set.Append(img)
	}
	return set, nil
}

func printDiffSection(title string, set *image.Set) {
	fmt.Printf("%s (%d):\n", title, set.Len())
	set.Range(func(img *image.Image) bool {
		fmt.Printf("  %s\n", img.Ref())
		return true
	})
}

func init() {
	diffCmd.Flags().StringArrayVar(
		&diffOpts.previous,
		"previous",
		nil,
		"a reference belonging to the previous image set (repeatable)",
	)
	rootCmd.AddCommand(diffCmd)
}
