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

package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNormalizeRealPathIsAbsoluteAndIdempotent(t *testing.T) {
	dir := t.TempDir()
	rel := filepath.Join(dir, "a", "..", "a", "ambient.toml")
	qt.Assert(t, qt.IsNil(os.MkdirAll(filepath.Join(dir, "a"), 0o755)))

	first := Normalize(rel)
	qt.Assert(t, qt.IsTrue(filepath.IsAbs(first)))
	qt.Assert(t, qt.Equals(first, filepath.Join(dir, "a", "ambient.toml")))

	second := Normalize(first)
	qt.Assert(t, qt.Equals(first, second))
}

func TestNormalizeSchemePathLeavesSchemeVerbatim(t *testing.T) {
	first := Normalize("mem://deps/foo/../foo/ambient.toml")
	qt.Assert(t, qt.Equals(first, "mem://deps/foo/ambient.toml"))

	second := Normalize(first)
	qt.Assert(t, qt.Equals(first, second))
}
