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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/whatsacomputertho/containerimage-go/auth"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cimage",
	Short: "Introspect container images against an OCI Distribution registry",
	Long: `cimage - container image introspection client

Resolves a reference against its registry and reports on its manifest,
config, size, and platform support without pulling any layer content.
`,
	PersistentPreRunE: initLogging,
}

var rootOpts = struct {
	logLevel string
	authFile string
}{}

// Execute adds all child commands to the root command and sets flags.
// This is called by main.main(). It only needs to happen once to the
// rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.logLevel,
		"log-level",
		"info",
		"the logging verbosity (trace, debug, info, warn, error)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.authFile,
		"auth-file",
		"",
		"path to a docker-config-JSON credentials file (unauthenticated if unset)",
	)
}

func initLogging(*cobra.Command, []string) error {
	level, err := logrus.ParseLevel(rootOpts.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

// loadAuth reads rootOpts.authFile into an auth.Config, or returns an
// empty (unauthenticated) Config when no file was given.
func loadAuth() (auth.Config, error) {
	if rootOpts.authFile == "" {
		return auth.Config{}, nil
	}
	data, err := os.ReadFile(rootOpts.authFile)
	if err != nil {
		return auth.Config{}, err
	}
	return auth.Parse(data)
}
