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

	"github.com/pterm/pterm"
	"github.com/walteh/copylogo/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// IsReportedError reports whether err was already printed as the outcome line
func IsReportedError(err error) bool {
	return errors.Is(err, operation.ErrCopyFailed)
}

// EmitUnhandledError prints an error that never reached the copy operation
func EmitUnhandledError(w io.Writer, err error) {
	if err == nil {
		return
	}
	pterm.Error.WithWriter(w).Println(err.Error())
}
