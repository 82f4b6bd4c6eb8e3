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
	"fmt"

	"github.com/walteh/copylogo/pkg/config"
	"github.com/walteh/copylogo/pkg/copier"
	"github.com/walteh/copylogo/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrCopyFailed marks a copy failure whose message has already been printed
var ErrCopyFailed = errors.Base("copy failed")

// 🎯 Operation is a unit of work executed by the Runner
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute performs the operation. Failures are contained in the Outcome.
	Execute(ctx context.Context) *Outcome
}

// 🔌 Copier copies one file along with its metadata
type Copier interface {
	CopyFile(ctx context.Context, src, dst string) (*copier.Result, error)
}

// CopierFunc adapts a plain function to Copier
type CopierFunc func(ctx context.Context, src, dst string) (*copier.Result, error)

// CopyFile calls f
func (f CopierFunc) CopyFile(ctx context.Context, src, dst string) (*copier.Result, error) {
	return f(ctx, src, dst)
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config holds the source and destination paths
	Config *config.Config
	// Copier defaults to copier.CopyFile
	Copier Copier
}

// 📄 Outcome is the result of an operation attempt
type Outcome struct {
	// Destination is the destination as configured, used in the success line
	Destination string
	// Result is set when the copy succeeded
	Result *copier.Result
	// Err is set when the copy failed
	Err error
}

// Failed reports whether the attempt failed
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// 📝 Message returns the one line shown to the user
func (o *Outcome) Message() string {
	if o.Failed() {
		return fmt.Sprintf("Error copying file: %v", o.Err)
	}
	return fmt.Sprintf("Successfully copied logo to %s", o.Destination)
}

// 📝 Report prints the outcome line through the logger carried by ctx
func (o *Outcome) Report(ctx context.Context) {
	logger := log.FromContext(ctx)
	if o.Failed() {
		logger.Error(o.Message())
		return
	}
	logger.Success(o.Message())
}
