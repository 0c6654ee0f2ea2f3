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

package manifest

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/yVieta/Ambient/internal/project"
)

func TestParseEmber(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"
organization = "ambient"
includes = ["other.toml"]
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(m.Ember.ID, project.Identifier("core")))
	qt.Assert(t, qt.IsTrue(m.Ember.HasOrg))
	qt.Assert(t, qt.Equals(m.Ember.Organization, project.Identifier("ambient")))
	qt.Assert(t, qt.DeepEquals(m.Ember.Includes, []string{"other.toml"}))
}

func TestParseRequiresEmberTable(t *testing.T) {
	_, err := Parse(`foo = "bar"`)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseRequiresEmberID(t *testing.T) {
	_, err := Parse(`[ember]
organization = "ambient"
`)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseDependencies(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[dependencies]
foo = { path = "../foo" }
bar = { path = "../bar" }
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(m.Dependencies), 2))
	qt.Assert(t, qt.Equals(m.Dependencies[0].Key, "foo"))
	qt.Assert(t, qt.Equals(m.Dependencies[0].Value.Path, "../foo"))
	qt.Assert(t, qt.Equals(m.Dependencies[1].Key, "bar"))
	qt.Assert(t, qt.Equals(m.Dependencies[1].Value.Path, "../bar"))
}

func TestParseComponentPlainType(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[components."health"]
type = "f32"
name = "Health"
description = "Current health"
attributes = ["networked", "store"]
default = 100.0
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(m.Components), 1))
	c := m.Components[0]
	qt.Assert(t, qt.Equals(c.Key, "health"))
	qt.Assert(t, qt.Equals(c.Value.Type.Container, project.ContainerNone))
	qt.Assert(t, qt.Equals(c.Value.Type.Path, "f32"))
	qt.Assert(t, qt.Equals(*c.Value.Name, "Health"))
	qt.Assert(t, qt.Equals(*c.Value.Description, "Current health"))
	qt.Assert(t, qt.DeepEquals(c.Value.Attributes, []string{"networked", "store"}))
	qt.Assert(t, qt.Equals(c.Value.Default, 100.0))
}

func TestParseComponentContainerType(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[components."tags"]
type = { container_type = "Vec", element_type = "string" }
`)
	qt.Assert(t, qt.IsNil(err))
	ty := m.Components[0].Value.Type
	qt.Assert(t, qt.Equals(ty.Container, project.ContainerVec))
	qt.Assert(t, qt.Equals(ty.Path, "string"))
}

func TestParseComponentDeclarationOrderPreserved(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[components."zeta"]
type = "bool"

[components."alpha"]
type = "bool"

[components."mu"]
type = "bool"
`)
	qt.Assert(t, qt.IsNil(err))
	var keys []string
	for _, c := range m.Components {
		keys = append(keys, c.Key)
	}
	qt.Assert(t, qt.DeepEquals(keys, []string{"zeta", "alpha", "mu"}))
}

func TestParseConcept(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[concepts."player"]
name = "Player"
extends = ["character"]

[concepts."player".components]
health = 100.0
"nested/thing" = true
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(m.Concepts), 1))
	c := m.Concepts[0].Value
	qt.Assert(t, qt.Equals(*c.Name, "Player"))
	qt.Assert(t, qt.DeepEquals(c.Extends, []string{"character"}))
	qt.Assert(t, qt.Equals(len(c.Components), 2))
	qt.Assert(t, qt.Equals(c.Components[0].Key, "health"))
	qt.Assert(t, qt.Equals(c.Components[0].Value, 100.0))
	qt.Assert(t, qt.Equals(c.Components[1].Key, "nested/thing"))
	qt.Assert(t, qt.Equals(c.Components[1].Value, true))
}

func TestParseMessage(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[messages."collision"]
description = "Two entities collided"

[messages."collision".fields]
other = "entity-id"
force = "f32"
`)
	qt.Assert(t, qt.IsNil(err))
	msg := m.Messages[0].Value
	qt.Assert(t, qt.Equals(*msg.Description, "Two entities collided"))
	qt.Assert(t, qt.Equals(len(msg.Fields), 2))
	qt.Assert(t, qt.Equals(msg.Fields[0].Key, "other"))
	qt.Assert(t, qt.Equals(msg.Fields[0].Value, "entity-id"))
}

func TestParseEnum(t *testing.T) {
	m, err := Parse(`
[ember]
id = "core"

[enums.status]

[enums.status.members]
alive = "Still kicking"
dead = "Not kicking"
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(m.Enums), 1))
	e := m.Enums[0].Value
	qt.Assert(t, qt.Equals(len(e.Members), 2))
	qt.Assert(t, qt.Equals(e.Members[0].Key, "alive"))
	qt.Assert(t, qt.Equals(e.Members[1].Key, "dead"))
}
