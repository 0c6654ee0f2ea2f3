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

// Package fileprovider defines the FileProvider abstraction the ingestor
// reads manifests through, plus an OS-backed and an in-memory
// implementation.
package fileprovider

import (
	"path/filepath"

	"github.com/yVieta/Ambient/internal/pathutil"
)

// FileProvider reads manifest text and resolves canonical identities for
// diagnostics and idempotent re-add.
type FileProvider interface {
	// Get reads the file at relative path and returns its contents.
	Get(path string) (string, error)
	// FullPath returns the canonical (normalized) absolute path for
	// relative path, for use as a scope's identity key.
	FullPath(path string) string
}

// ProxyFileProvider composes a FileProvider with a base path: every call is
// resolved relative to base first. Used to ingest a path dependency's
// "ambient.toml" as if it were rooted at the dependency's directory.
type ProxyFileProvider struct {
	Provider FileProvider
	Base     string
}

func (p *ProxyFileProvider) Get(path string) (string, error) {
	return p.Provider.Get(filepath.Join(p.Base, path))
}

func (p *ProxyFileProvider) FullPath(path string) string {
	return pathutil.Normalize(p.Provider.FullPath(filepath.Join(p.Base, path)))
}
