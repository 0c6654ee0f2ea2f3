// Copyright 2024 The Ambient Authors
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

// Package pathutil provides the shared filesystem-path normalizer used by
// ProxyFileProvider.FullPath so that idempotent re-add of a manifest works
// across symlinks and "."/".." segments.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize resolves path to an absolute, symlink-free, cleaned form.
// If symlink resolution fails (e.g. the path does not exist yet), it falls
// back to the absolute-and-cleaned form so that virtual/in-memory
// FileProviders, which never touch the real filesystem, still normalize
// deterministically.
//
// Paths carrying a "scheme://" prefix (as synthesized by non-filesystem
// FileProviders, e.g. an in-memory one used in tests) are left scheme-opaque:
// only the part after the scheme is cleaned, since filepath.Abs would
// otherwise resolve it against the process's working directory and break
// idempotent re-add.
func Normalize(path string) string {
	if scheme, rest, ok := strings.Cut(path, "://"); ok {
		return scheme + "://" + filepath.Clean(rest)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return filepath.Clean(resolved)
	}
	return filepath.Clean(abs)
}
