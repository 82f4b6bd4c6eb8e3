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

package copier

import (
	"context"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const globMeta = "*?[{"

// 🔍 ResolveSource returns the single file src refers to.
//
// An existing literal path always wins. Otherwise a path holding glob
// metacharacters is expanded and must match exactly one file, which lets a
// config name a generated file by prefix (vroomx_final_*.png).
func ResolveSource(ctx context.Context, src string) (string, error) {
	if _, err := os.Lstat(src); err == nil || !strings.ContainsAny(src, globMeta) {
		return src, nil
	}

	if !doublestar.ValidatePathPattern(src) {
		return "", errors.Errorf("invalid source pattern %q", src)
	}

	matches, err := doublestar.FilepathGlob(src, doublestar.WithFilesOnly())
	if err != nil {
		return "", errors.Errorf("expanding source pattern: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", src).
		Strs("matches", matches).
		Msg("expanded source pattern")

	switch len(matches) {
	case 0:
		return "", errors.Errorf("no file matches source pattern %q", src)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Errorf("source pattern %q matches %d files", src, len(matches))
	}
}
