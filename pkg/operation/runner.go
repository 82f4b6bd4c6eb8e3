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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations and applies the exit policy
type OperationRunner struct {
	logger *zerolog.Logger
	strict bool
}

// 🏗️ NewRunner creates a new runner. A strict runner turns a failed outcome
// into ErrCopyFailed.
func NewRunner(logger *zerolog.Logger, strict bool) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		strict: strict,
	}
}

// 🏃 Run executes an operation synchronously
func (r *OperationRunner) Run(ctx context.Context, op Operation) (*Outcome, error) {
	start := time.Now()
	r.logger.Debug().Str("operation", op.Name()).Msg("starting operation")

	outcome := op.Execute(ctx)

	r.logger.Debug().
		Str("operation", op.Name()).
		Bool("failed", outcome.Failed()).
		Dur("took", time.Since(start)).
		Msg("operation finished")

	if outcome.Failed() && r.strict {
		return outcome, errors.WithStack(ErrCopyFailed)
	}
	return outcome, nil
}
