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
	"testing"

	"github.com/go-quicktest/qt"
)

func TestOSProviderGet(t *testing.T) {
	dir := t.TempDir()
	qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, "ambient.toml"), []byte("hello"), 0o644)))

	p := OSProvider{Dir: dir}
	content, err := p.Get("ambient.toml")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(content, "hello"))
}

func TestOSProviderFullPathIsAbsoluteAndIdempotent(t *testing.T) {
	dir := t.TempDir()
	p := OSProvider{Dir: dir}
	first := p.FullPath("ambient.toml")
	qt.Assert(t, qt.IsTrue(filepath.IsAbs(first)))

	second := p.FullPath("ambient.toml")
	qt.Assert(t, qt.Equals(first, second))
}

func TestMemProviderFromTxtar(t *testing.T) {
	p := NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
-- sub/other.toml --
[ember]
id = "other"
`))
	content, err := p.Get("ambient.toml")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(content, "[ember]\nid = \"core\"\n"))

	_, err = p.Get("sub/other.toml")
	qt.Assert(t, qt.IsNil(err))

	_, err = p.Get("missing.toml")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestProxyFileProviderComposesBase(t *testing.T) {
	mem := NewMemProviderFromTxtar([]byte(`
-- deps/foo/ambient.toml --
[ember]
id = "foo"
`))
	proxy := &ProxyFileProvider{Provider: mem, Base: "deps/foo"}
	content, err := proxy.Get("ambient.toml")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(content, "[ember]\nid = \"foo\"\n"))
}

func TestProxyFileProviderFullPathNormalizesMemScheme(t *testing.T) {
	mem := NewMemProviderFromTxtar(nil)
	proxy := &ProxyFileProvider{Provider: mem, Base: "deps/foo"}

	first := proxy.FullPath("ambient.toml")
	second := proxy.FullPath("ambient.toml")
	qt.Assert(t, qt.Equals(first, second))
	qt.Assert(t, qt.Equals(first, "mem://deps/foo/ambient.toml"))
}
