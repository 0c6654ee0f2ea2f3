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
	"os"
	"path/filepath"

	"github.com/yVieta/Ambient/internal/pathutil"
)

// OSProvider reads manifests from the real filesystem, rooted at Dir.
type OSProvider struct {
	Dir string
}

func (p OSProvider) Get(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.Dir, path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p OSProvider) FullPath(path string) string {
	return pathutil.Normalize(filepath.Join(p.Dir, path))
}
