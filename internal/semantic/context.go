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

// Context is a lexical scope stack: a value-type stack of scope handles
// (innermost last), cloned on push so that sibling recursions never see
// each other's frames.
type Context struct {
	stack []Handle[Scope]
}

// NewContext returns a context initialized to just the root scope.
func NewContext(root Handle[Scope]) *Context {
	return &Context{stack: []Handle[Scope]{root}}
}

// Push returns a new context with scope appended as the innermost frame,
// leaving the receiver untouched.
func (c *Context) Push(scope Handle[Scope]) *Context {
	next := make([]Handle[Scope], len(c.stack)+1)
	copy(next, c.stack)
	next[len(c.stack)] = scope
	return &Context{stack: next}
}

// GetTypeID resolves a (possibly container) type reference against the
// context, innermost scope first. A plain reference walks ref.Path's scope
// prefix under each candidate scope and looks up its terminal name in that
// scope's types map. A container reference first resolves its element type
// through the same walk, then memoizes the Vec/Option wrapper via the
// arena.
func (c *Context) GetTypeID(items *ItemArena, ref project.ComponentTypeRef) (Handle[Type], bool) {
	path, err := project.ParseItemPath(ref.Path)
	if err != nil {
		return Handle[Type]{}, false
	}
	scopePrefix, itemName := path.ScopeAndItem()

	for i := len(c.stack) - 1; i >= 0; i-- {
		scopeHandle, err := GetScope(items, c.stack[i], scopePrefix)
		if err != nil {
			continue
		}
		scope, err := Get(items, scopeHandle)
		if err != nil {
			continue
		}
		elemHandle, ok := scope.Types.Get(itemName)
		if !ok {
			continue
		}
		switch ref.Container {
		case project.ContainerNone:
			return elemHandle, true
		case project.ContainerVec:
			return items.GetVecID(c.root(), elemHandle), true
		case project.ContainerOption:
			return items.GetOptionID(c.root(), elemHandle), true
		}
	}
	return Handle[Type]{}, false
}

// GetAttributeID resolves a plain attribute reference, innermost scope
// first.
func (c *Context) GetAttributeID(items *ItemArena, raw string) (Handle[Attribute], error) {
	path, err := project.ParseItemPath(raw)
	if err != nil {
		return Handle[Attribute]{}, err
	}
	scopePrefix, itemName := path.ScopeAndItem()
	for i := len(c.stack) - 1; i >= 0; i-- {
		scopeHandle, err := GetScope(items, c.stack[i], scopePrefix)
		if err != nil {
			continue
		}
		scope, err := Get(items, scopeHandle)
		if err != nil {
			continue
		}
		if h, ok := scope.Attributes.Get(itemName); ok {
			return h, nil
		}
	}
	return Handle[Attribute]{}, &ItemNotFoundError{Kind: "attribute", Path: raw}
}

// GetConceptID resolves a plain concept reference, innermost scope first.
func (c *Context) GetConceptID(items *ItemArena, raw string) (Handle[Concept], error) {
	path, err := project.ParseItemPath(raw)
	if err != nil {
		return Handle[Concept]{}, err
	}
	scopePrefix, itemName := path.ScopeAndItem()
	for i := len(c.stack) - 1; i >= 0; i-- {
		scopeHandle, err := GetScope(items, c.stack[i], scopePrefix)
		if err != nil {
			continue
		}
		scope, err := Get(items, scopeHandle)
		if err != nil {
			continue
		}
		if h, ok := scope.Concepts.Get(itemName); ok {
			return h, nil
		}
	}
	return Handle[Concept]{}, &ItemNotFoundError{Kind: "concept", Path: raw}
}

// GetComponentID resolves a plain component reference, innermost scope
// first.
func (c *Context) GetComponentID(items *ItemArena, raw string) (Handle[Component], error) {
	path, err := project.ParseItemPath(raw)
	if err != nil {
		return Handle[Component]{}, err
	}
	scopePrefix, itemName := path.ScopeAndItem()
	for i := len(c.stack) - 1; i >= 0; i-- {
		scopeHandle, err := GetScope(items, c.stack[i], scopePrefix)
		if err != nil {
			continue
		}
		scope, err := Get(items, scopeHandle)
		if err != nil {
			continue
		}
		if h, ok := scope.Components.Get(itemName); ok {
			return h, nil
		}
	}
	return Handle[Component]{}, &ItemNotFoundError{Kind: "component", Path: raw}
}

// root returns the outermost (first) frame, which is always the arena's
// root scope for any context built via NewContext or contextForScope.
func (c *Context) root() Handle[Scope] {
	return c.stack[0]
}
