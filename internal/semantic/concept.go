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

// ConceptComponentEntry is one ordered (component, optional override
// default) pair contributed directly by a concept's own
// `[concepts."x".components]` table. Modeled as a slice entry rather than
// an OrderedMap value because the key (a ResolvableItemID[Component]) is
// not yet comparable before resolution.
type ConceptComponentEntry struct {
	Component ResolvableItemID[Component]
	Value     ResolvableValue
}

// Concept is a named bundle of components, optionally extending other
// concepts. Corresponds to a `[concepts."x"]` manifest entry.
type Concept struct {
	Data ItemData

	Name        string
	Description string

	Extends    []ResolvableItemID[Concept]
	Components []ConceptComponentEntry
}
