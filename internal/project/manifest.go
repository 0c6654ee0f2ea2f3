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

// Manifest is the parsed shape of an "ambient.toml" ember descriptor. It is
// produced by package manifest (the TOML decoder) and consumed by the
// semantic ingestor; this package only describes its shape.
type Manifest struct {
	Ember        Ember
	Dependencies OrderedStrings[Dependency]
	Components   OrderedStrings[ComponentDef]
	Concepts     OrderedStrings[ConceptDef]
	Messages     OrderedStrings[MessageDef]
	Enums        OrderedStrings[EnumDef]
}

// Ember is the [ember] table of a manifest.
type Ember struct {
	ID           Identifier
	Organization Identifier // zero value means "not set"
	HasOrg       bool
	Includes     []string
}

// OrderedStrings is a minimal insertion-ordered string-keyed association list,
// used to preserve manifest declaration order for dependencies and item
// definitions (spec.md §5's ordering guarantee).
type OrderedStrings[V any] []KeyedValue[V]

// KeyedValue pairs a raw manifest key with its decoded value.
type KeyedValue[V any] struct {
	Key   string
	Value V
}

// Dependency is a package dependency. Only Path dependencies are in scope;
// other kinds are rejected by the manifest decoder.
type Dependency struct {
	Path string
}

// ContainerType is the outer wrapper of a Contained ComponentType.
type ContainerType int

const (
	ContainerNone ContainerType = iota
	ContainerVec
	ContainerOption
)

// ComponentTypeRef names the Type a component/message field refers to,
// before resolution: either a bare path, or a container wrapping one.
type ComponentTypeRef struct {
	// Container is ContainerNone for a plain Item(path) reference.
	Container ContainerType
	// Path is the raw (unresolved) type path: the item itself for a plain
	// reference, the element type for a container reference.
	Path string
}

// ComponentDef is the raw, as-declared shape of a [components."x"] entry.
type ComponentDef struct {
	Type        ComponentTypeRef
	Name        *string
	Description *string
	Attributes  []string
	Default     any // raw TOML literal; nil if absent
}

// ConceptDef is the raw shape of a [concepts."x"] entry.
type ConceptDef struct {
	Name        *string
	Description *string
	Extends     []string
	// Components preserves declaration order: each entry maps a raw
	// component path to its raw default-value literal.
	Components OrderedStrings[any]
}

// MessageDef is the raw shape of a [messages."x"] entry.
type MessageDef struct {
	Description *string
	Fields      OrderedStrings[string] // field name -> raw type path
}

// EnumDef is the raw shape of an [enums.x] entry.
type EnumDef struct {
	// Members preserves declaration order: name -> description.
	Members OrderedStrings[string]
}
