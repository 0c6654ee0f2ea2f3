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

package project

import (
	"fmt"
	"strings"
)

// ItemPath is an ordered sequence of identifiers naming an item, optionally
// prefixed by the scopes it's nested under. Manifests write these as
// slash- or dot-separated qualified paths, e.g. "sub/scope/foo" or
// "sub.scope.foo".
type ItemPath []Identifier

// ParseItemPath splits raw on '/' or '.' and validates every segment as a
// kebab-case identifier. An empty raw is rejected: every item path must name
// at least a terminal item.
func ParseItemPath(raw string) (ItemPath, error) {
	if raw == "" {
		return nil, fmt.Errorf("path %q is empty: %w", raw, ErrInvalidPath)
	}
	sep := "/"
	if strings.Contains(raw, ".") && !strings.Contains(raw, "/") {
		sep = "."
	}
	segments := strings.Split(raw, sep)
	path := make(ItemPath, 0, len(segments))
	for _, seg := range segments {
		id, err := NewIdentifier(seg)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w: %w", raw, ErrInvalidPath, err)
		}
		path = append(path, id)
	}
	return path, nil
}

// ScopeAndItem splits the path into its scope prefix (possibly empty) and
// its terminal item name.
func (p ItemPath) ScopeAndItem() (scope []Identifier, item Identifier) {
	if len(p) == 0 {
		return nil, ""
	}
	return p[:len(p)-1], p[len(p)-1]
}

func (p ItemPath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}
	return strings.Join(parts, "/")
}
