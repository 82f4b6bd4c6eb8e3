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
	"path/filepath"
	"time"

	cp "github.com/otiai10/copy"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Status describes what happened at the destination
type Status int

const (
	StatusUnknown  Status = iota
	StatusCreated         // Destination did not exist
	StatusReplaced        // Destination existed and was overwritten
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// 📄 Result contains metadata about a finished copy
type Result struct {
	Source      string      // Resolved source path
	Destination string      // File actually written
	Size        int64       // Bytes copied
	Mode        os.FileMode // Permission bits applied to the destination
	ModTime     time.Time   // Modification time carried over from the source
	Status      Status      // Whether the destination was created or replaced
}

const tempPattern = ".copylogo-*.tmp"

// 📦 CopyFile copies src to dst along with its permission bits and timestamps.
//
// dst is replaced atomically: the bytes land in a temp file next to dst that is
// renamed into place, so a failed copy leaves an existing dst untouched. The parent
// directory of dst must exist. When dst is a directory the file is written inside
// it under the base name of src.
func CopyFile(ctx context.Context, src, dst string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("copy cancelled: %w", err)
	}

	logger := zerolog.Ctx(ctx)

	// a linked source copies the target's bytes; relative links resolve
	// against the link's own directory
	resolved, err := filepath.EvalSymlinks(src)
	if err != nil {
		return nil, errors.Errorf("reading source: %w", err)
	}

	srcInfo, err := os.Stat(resolved)
	if err != nil {
		return nil, errors.Errorf("reading source: %w", err)
	}
	if srcInfo.IsDir() {
		return nil, errors.Errorf("source %s is a directory", src)
	}
	if !srcInfo.Mode().IsRegular() {
		return nil, errors.Errorf("source %s is not a regular file", src)
	}

	target, status, err := resolveTarget(src, dst)
	if err != nil {
		return nil, err
	}

	if err := sameFile(srcInfo, target); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", src).
		Str("resolved_source", resolved).
		Str("destination", target).
		Str("status", status.String()).
		Msg("copying file")

	dir := filepath.Dir(target)
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Errorf("checking destination directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return nil, errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, errors.Errorf("closing temp file: %w", err)
	}

	if err := cp.Copy(resolved, tmpPath, copyOptions()); err != nil {
		os.Remove(tmpPath)
		return nil, errors.Errorf("copying file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return nil, errors.Errorf("renaming temp file: %w", err)
	}

	return &Result{
		Source:      src,
		Destination: target,
		Size:        srcInfo.Size(),
		Mode:        srcInfo.Mode().Perm(),
		ModTime:     srcInfo.ModTime(),
		Status:      status,
	}, nil
}

// 🔧 copyOptions keeps permission bits and atime/mtime and follows symlinks
func copyOptions() cp.Options {
	return cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Deep
		},
		PermissionControl: cp.PerservePermission,
		PreserveTimes:     true,
		Sync:              true,
	}
}

// 🎯 resolveTarget maps dst to the file path that will be written
func resolveTarget(src, dst string) (string, Status, error) {
	// write through a symlinked destination, dangling or not, instead of
	// replacing the link
	linked, err := followLink(dst)
	if err != nil {
		return "", StatusUnknown, err
	}

	info, err := os.Stat(linked)
	switch {
	case err == nil && info.IsDir():
		target := filepath.Join(linked, filepath.Base(src))
		if _, err := os.Stat(target); err == nil {
			return target, StatusReplaced, nil
		}
		return target, StatusCreated, nil
	case err == nil:
		return linked, StatusReplaced, nil
	case os.IsNotExist(err):
		return linked, StatusCreated, nil
	default:
		return "", StatusUnknown, errors.Errorf("checking destination: %w", err)
	}
}

const maxLinkHops = 40

// 🔗 followLink walks the link chain starting at path and returns the first
// path that is not a symlink. The final path does not need to exist.
func followLink(path string) (string, error) {
	for range maxLinkHops {
		info, err := os.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		dest, err := os.Readlink(path)
		if err != nil {
			return "", errors.Errorf("resolving destination link: %w", err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return "", errors.Errorf("resolving destination link: too many links")
}

// 🔍 sameFile refuses to copy a file onto itself
func sameFile(srcInfo os.FileInfo, target string) error {
	dstInfo, err := os.Stat(target)
	if err != nil {
		return nil
	}
	if os.SameFile(srcInfo, dstInfo) {
		return errors.Errorf("%s and %s are the same file", srcInfo.Name(), target)
	}
	return nil
}
