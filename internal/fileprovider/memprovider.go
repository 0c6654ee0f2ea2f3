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

package fileprovider

import (
	"fmt"
	"path"

	"golang.org/x/tools/txtar"
)

// MemProvider is an in-memory FileProvider backed by a flat file map,
// keyed by slash-separated relative path. It never touches the real
// filesystem, so FullPath returns a synthetic, already-normalized identity
// rooted at "mem://".
//
// It exists for tests that need a multi-file ember tree (an ember plus its
// includes and path dependencies) without writing to disk, populated from a
// txtar archive.
type MemProvider struct {
	Files map[string]string
}

// NewMemProviderFromTxtar builds a MemProvider from a txtar archive, where
// each archive file becomes one manifest file at its archive-relative path.
func NewMemProviderFromTxtar(data []byte) *MemProvider {
	arc := txtar.Parse(data)
	files := make(map[string]string, len(arc.Files))
	for _, f := range arc.Files {
		files[f.Name] = string(f.Data)
	}
	return &MemProvider{Files: files}
}

func (p *MemProvider) Get(relPath string) (string, error) {
	key := path.Clean(relPath)
	content, ok := p.Files[key]
	if !ok {
		return "", fmt.Errorf("mem provider: no such file %q", key)
	}
	return content, nil
}

func (p *MemProvider) FullPath(relPath string) string {
	return "mem://" + path.Clean(relPath)
}
