// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copylogo/pkg/config"
	"github.com/walteh/copylogo/pkg/log"
	"github.com/walteh/copylogo/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	debug      bool
	strict     bool
}

// 🏭 NewRootCmd builds the copylogo command writing to stdout and stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "copylogo",
		Short: "Copy the logo image to its destination",
		Long: `copylogo copies one image file onto its destination, keeping the
permission bits and timestamps of the source.

It prints one line: either the success message naming the destination or the
error that stopped the copy. A failed copy still exits 0 unless --strict is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, stdout, stderr, flags)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true

	addRootFlags(root, flags)

	root.AddCommand(newVersionCmd(stdout))
	return root
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "exit non-zero when the copy fails")
}

// logLevel picks the diagnostics level from the flags
func logLevel(flags *rootFlags) zerolog.Level {
	if flags.debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

func runCopy(cmd *cobra.Command, stdout, stderr io.Writer, flags *rootFlags) error {
	logger := log.New(stdout, stderr, logLevel(flags))
	ctx := log.NewContext(cmd.Context(), logger)

	cfg, err := config.LoadOrDefault(ctx, flags.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.String()).
		Bool("strict", cfg.Strict).
		Bool("glob", cfg.Glob).
		Msg("configuration loaded")

	op, err := operation.NewCopyOperation(operation.Options{
		Config: cfg,
	})
	if err != nil {
		return errors.Errorf("creating copy operation: %w", err)
	}

	if _, err := operation.NewRunner(logger.Zerolog(), cfg.Strict).Run(ctx, op); err != nil {
		return err
	}
	return nil
}
