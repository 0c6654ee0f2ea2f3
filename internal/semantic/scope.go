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

import "github.com/yVieta/Ambient/internal/project"

// ScopeEntry is a sub-scope's index entry: the manifest path it was created
// from (for idempotent re-add and duplicate-scope detection) plus its
// handle.
type ScopeEntry struct {
	Path   string
	Handle Handle[Scope]
}

// Scope is a named container of sub-scopes and items, corresponding to a
// namespace (root, organization, package, or an include/dependency's
// sub-scope). Six ordered maps preserve manifest declaration order, which
// downstream codegen and golden-printer tests depend on.
type Scope struct {
	Data     ItemData
	Path     *string
	Manifest *project.Manifest

	Scopes     *OrderedMap[project.Identifier, ScopeEntry]
	Components *OrderedMap[project.Identifier, Handle[Component]]
	Concepts   *OrderedMap[project.Identifier, Handle[Concept]]
	Messages   *OrderedMap[project.Identifier, Handle[Message]]
	Types      *OrderedMap[project.Identifier, Handle[Type]]
	Attributes *OrderedMap[project.Identifier, Handle[Attribute]]
}

// NewScope creates an empty scope with the given header, originating
// manifest path, and retained parsed manifest.
func NewScope(data ItemData, path *string, manifest *project.Manifest) *Scope {
	return &Scope{
		Data:       data,
		Path:       path,
		Manifest:   manifest,
		Scopes:     NewOrderedMap[project.Identifier, ScopeEntry](),
		Components: NewOrderedMap[project.Identifier, Handle[Component]](),
		Concepts:   NewOrderedMap[project.Identifier, Handle[Concept]](),
		Messages:   NewOrderedMap[project.Identifier, Handle[Message]](),
		Types:      NewOrderedMap[project.Identifier, Handle[Type]](),
		Attributes: NewOrderedMap[project.Identifier, Handle[Attribute]](),
	}
}

// VisitRecursive walks this scope and every transitive sub-scope
// depth-first, pre-order, visiting each scope exactly once in insertion
// order.
func VisitRecursive(items *ItemArena, start Handle[Scope], visit func(*Scope) error) error {
	scope, err := Get(items, start)
	if err != nil {
		return err
	}
	if err := visit(scope); err != nil {
		return err
	}
	for _, entry := range scope.Scopes.Values() {
		if err := VisitRecursive(items, entry.Handle, visit); err != nil {
			return err
		}
	}
	return nil
}

// contextForScope reconstructs the lexical context that would have been in
// effect while natively resolving items directly inside scope (root first,
// scope itself last/innermost). Used by the resolver when it must eagerly
// resolve an item that lives in a scope other than the one currently being
// walked (e.g. a concept's `extends` target, for cycle detection).
func contextForScope(items *ItemArena, scope Handle[Scope]) (*Context, error) {
	var chain []Handle[Scope]
	cur := scope
	for {
		chain = append(chain, cur)
		s, err := Get(items, cur)
		if err != nil {
			return nil, err
		}
		if !s.Data.HasParentID {
			break
		}
		cur = s.Data.ParentID
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return &Context{stack: chain}, nil
}
