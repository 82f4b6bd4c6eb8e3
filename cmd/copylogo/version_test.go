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
	"runtime"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestVersionTable(t *testing.T) {
	data := versionTable(&VersionInfo{
		Version:   "v1.2.3",
		Revision:  "abc123",
		Modified:  true,
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
	})

	assert.Equal(t, pterm.TableData{
		{"Version", "v1.2.3"},
		{"Revision", "abc123 (modified)"},
		{"Built", ""},
		{"Go", "go1.23.5"},
		{"Platform", "linux/amd64"},
	}, data)
}

func TestVersionCommand(t *testing.T) {
	newTestEnv(t)

	stdout, _, err := run("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version")
	assert.Contains(t, stdout, runtime.GOOS+"/"+runtime.GOARCH)
	assert.NotContains(t, stdout, "copied", "version should not run the copy")
}
