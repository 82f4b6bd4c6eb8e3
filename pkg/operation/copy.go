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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/copylogo/pkg/config"
	"github.com/walteh/copylogo/pkg/copier"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCopyOperation creates a new copy operation
func NewCopyOperation(opts Options) (Operation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Copier == nil {
		opts.Copier = CopierFunc(copier.CopyFile)
	}
	return &copyOperation{
		config: opts.Config,
		copier: opts.Copier,
	}, nil
}

// 📦 copyOperation copies the configured source to the configured destination
type copyOperation struct {
	config *config.Config
	copier Copier
}

// Name implements Operation
func (op *copyOperation) Name() string {
	return "copy"
}

// 🏃 Execute attempts the copy and prints exactly one outcome line.
// Any failure is converted into the printed message; nothing is retried.
func (op *copyOperation) Execute(ctx context.Context) *Outcome {
	outcome := &Outcome{Destination: op.config.Destination}

	res, err := op.copy(ctx)
	if err != nil {
		outcome.Err = err
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Str("source", op.config.Source).
			Str("destination", op.config.Destination).
			Msg("copy failed")
	} else {
		outcome.Result = res
		zerolog.Ctx(ctx).Debug().
			Str("source", res.Source).
			Str("destination", res.Destination).
			Int64("size", res.Size).
			Str("mode", res.Mode.String()).
			Time("mod_time", res.ModTime).
			Str("status", res.Status.String()).
			Msg("copy finished")
	}

	outcome.Report(ctx)
	return outcome
}

// copy expands the source pattern when globbing is enabled, then copies
func (op *copyOperation) copy(ctx context.Context) (*copier.Result, error) {
	src := op.config.Source
	if op.config.Glob {
		resolved, err := copier.ResolveSource(ctx, src)
		if err != nil {
			return nil, err
		}
		src = resolved
	}
	return op.copier.CopyFile(ctx, src, op.config.Destination)
}
