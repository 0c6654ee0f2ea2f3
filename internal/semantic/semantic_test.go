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

package semantic

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/yVieta/Ambient/internal/fileprovider"
)

func printToString(t *testing.T, s *Semantic) string {
	t.Helper()
	var sb strings.Builder
	qt.Assert(t, qt.IsNil(NewPrinter(&sb).Print(s)))
	return sb.String()
}

// ambientRootLines is the printer output for the root scope of a fresh
// Semantic: every primitive type, then every standard attribute.
var ambientRootLines = []string{
	`type:bool [A]`,
	`type:u8 [A]`,
	`type:u16 [A]`,
	`type:u32 [A]`,
	`type:u64 [A]`,
	`type:i8 [A]`,
	`type:i16 [A]`,
	`type:i32 [A]`,
	`type:i64 [A]`,
	`type:f32 [A]`,
	`type:f64 [A]`,
	`type:vec2 [A]`,
	`type:vec3 [A]`,
	`type:vec4 [A]`,
	`type:uvec2 [A]`,
	`type:uvec3 [A]`,
	`type:uvec4 [A]`,
	`type:ivec2 [A]`,
	`type:ivec3 [A]`,
	`type:ivec4 [A]`,
	`type:mat4 [A]`,
	`type:quat [A]`,
	`type:string [A]`,
	`type:entity-id [A]`,
	`type:path [A]`,
	`type:url [A]`,
	`type:duration [A]`,
	`attribute:debuggable [A]`,
	`attribute:networked [A]`,
	`attribute:resource [A]`,
	`attribute:maybe-resource [A]`,
	`attribute:store [A]`,
}

func TestEmptySemanticPrintsOnlyAmbientRootItems(t *testing.T) {
	s := NewSemantic()
	qt.Assert(t, qt.IsNil(s.Resolve()))
	want := strings.Join(append(append([]string(nil), ambientRootLines...), ""), "\n")
	qt.Assert(t, qt.Equals(printToString(t, s), want))
}

func TestSingleEmberOneComponent(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
organization = "ambient"

[components."health"]
type = "f32"
name = "Health"
description = "Current health"
attributes = ["networked", "store"]
default = 100.0
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(s.Resolve()))

	out := printToString(t, s)
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "component:ambient/core/health")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, `name: "Health"`)))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "type: type:f32 [A]")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "attribute:networked [A]")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "default: 100")))
}

func TestContainerTypesAreMemoized(t *testing.T) {
	s := NewSemantic()
	root, err := Get(s.Items, s.RootScope)
	qt.Assert(t, qt.IsNil(err))
	f32Handle, ok := root.Types.Get("f32")
	qt.Assert(t, qt.IsTrue(ok))

	vecA := s.Items.GetVecID(s.RootScope, f32Handle)
	vecB := s.Items.GetVecID(s.RootScope, f32Handle)
	qt.Assert(t, qt.Equals(vecA, vecB))

	optA := s.Items.GetOptionID(s.RootScope, f32Handle)
	optB := s.Items.GetOptionID(s.RootScope, f32Handle)
	qt.Assert(t, qt.Equals(optA, optB))

	qt.Assert(t, qt.Not(qt.Equals(vecA, optA)))
}

func TestLexicalOverrideShadowsAmbient(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
organization = "ambient"

[components."name"]
type = "string"

[enums.string]

[enums.string.members]
fallback = "Fallback name"

[concepts."character"]
name = "Character"

[concepts."character".components]
name = "fallback"
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(s.Resolve()))

	out := printToString(t, s)
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "component:ambient/core/name")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "type: type:ambient/core/string\n")))
}

func TestConceptExtendsCycleIsDetected(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
organization = "ambient"

[concepts."a"]
extends = ["b"]

[concepts."b"]
extends = ["a"]
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))

	err = s.Resolve()
	qt.Assert(t, qt.IsNotNil(err))
	var cycleErr *ConceptCycleError
	qt.Assert(t, qt.ErrorAs(err, &cycleErr))
}

func TestAddFileRequiresOrganization(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNotNil(err))
	var missing *MissingOrganizationError
	qt.Assert(t, qt.ErrorAs(err, &missing))
}

func TestAddFileIsIdempotentForSamePath(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
organization = "ambient"
`))
	s := NewSemantic()
	first, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	second, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(first, second))
}

func TestAddFileRejectsDuplicateScopeFromDifferentPath(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- one/ambient.toml --
[ember]
id = "core"
organization = "ambient"
-- two/ambient.toml --
[ember]
id = "core"
organization = "ambient"
`))
	s := NewSemantic()
	_, err := s.AddFile("one/ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	_, err = s.AddFile("two/ambient.toml", fp, false)
	qt.Assert(t, qt.IsNotNil(err))
	var dup *DuplicateScopeError
	qt.Assert(t, qt.ErrorAs(err, &dup))
}

func TestPathDependenciesMergeIntoSharedArena(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- main/ambient.toml --
[ember]
id = "main"
organization = "ambient"

[dependencies]
other = { path = "../other" }
-- other/ambient.toml --
[ember]
id = "other"
organization = "ambient"

[components."speed"]
type = "f32"
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", &fileprovider.ProxyFileProvider{Provider: fp, Base: "main"}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(s.Resolve()))

	out := printToString(t, s)
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "component:ambient/other/speed")))

	root, err := Get(s.Items, s.RootScope)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(root.Scopes.Len(), 1), qt.Commentf("main and other share one organization scope"))
}
