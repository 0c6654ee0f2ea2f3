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

// Package semantic is the project semantic model: an item arena with typed
// handles, a nested scope tree, a manifest ingestion pipeline, and a name
// resolution engine that lowers declarative ember manifests into a
// resolved, cross-referenced symbol table.
package semantic

import (
	"fmt"

	"github.com/yVieta/Ambient/internal/project"
)

// ItemKind is the closed set of item variants the arena can store.
type ItemKind int

const (
	KindScope ItemKind = iota
	KindComponent
	KindConcept
	KindMessage
	KindType
	KindAttribute
)

func (k ItemKind) String() string {
	switch k {
	case KindScope:
		return "scope"
	case KindComponent:
		return "component"
	case KindConcept:
		return "concept"
	case KindMessage:
		return "message"
	case KindType:
		return "type"
	case KindAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// ItemData is the common header carried by every item.
type ItemData struct {
	// ParentID is the owning scope's handle, or the zero Handle for the
	// root scope (which has no parent).
	ParentID    Handle[Scope]
	HasParentID bool
	ID          project.Identifier
	IsAmbient   bool
}

// Handle is an opaque, kind-typed, stable reference into an ItemArena.
// Handles are never reused and are cheap value types safe to copy and use
// as map keys.
type Handle[T any] struct {
	idx int
}

// Valid reports whether h was ever produced by ItemArena.Add (zero-value
// handles, e.g. an unset parent handle, are invalid).
func (h Handle[T]) Valid() bool { return h.idx > 0 }

// ItemArena is the process-local, single-threaded, exclusively-owning store
// for every item in a semantic graph. It never deletes and never reuses a
// handle.
type ItemArena struct {
	// items holds *Scope, *Component, *Concept, *Message, *Type, or
	// *Attribute values, boxed as `any`, at index h.idx-1 for handle h.
	// Handle index 0 is reserved (the zero Handle is always invalid) so a missing
	// ParentID can be represented as the zero value without clashing with a
	// real handle.
	items []any

	vecMemo    map[Handle[Type]]Handle[Type]
	optionMemo map[Handle[Type]]Handle[Type]
}

// NewItemArena returns an empty arena.
func NewItemArena() *ItemArena {
	return &ItemArena{
		vecMemo:    make(map[Handle[Type]]Handle[Type]),
		optionMemo: make(map[Handle[Type]]Handle[Type]),
	}
}

// Add inserts value and returns a stable handle to it. Add never fails.
func Add[T any](a *ItemArena, value *T) Handle[T] {
	a.items = append(a.items, value)
	return Handle[T]{idx: len(a.items)}
}

// Get resolves h to its item. It fails with ErrInvalidHandle if h is unknown
// to the arena or refers to a value of a different kind.
func Get[T any](a *ItemArena, h Handle[T]) (*T, error) {
	if h.idx <= 0 || h.idx > len(a.items) {
		return nil, fmt.Errorf("handle %d: %w", h.idx, ErrInvalidHandle)
	}
	v, ok := a.items[h.idx-1].(*T)
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h.idx, ErrInvalidHandle)
	}
	return v, nil
}

// GetVecID returns the handle of the memoized Vec<inner> type, creating it
// on first request. Repeat calls with the same inner handle return the same
// handle.
func (a *ItemArena) GetVecID(root Handle[Scope], inner Handle[Type]) Handle[Type] {
	if h, ok := a.vecMemo[inner]; ok {
		return h
	}
	h := Add(a, &Type{
		Data: ItemData{
			ParentID:    root,
			HasParentID: true,
			ID:          project.Identifier(fmt.Sprintf("vec-%d", inner.idx)),
			IsAmbient:   true,
		},
		Inner: TypeInner{Kind: TypeKindVec, Elem: inner},
	})
	a.vecMemo[inner] = h
	return h
}

// GetOptionID returns the handle of the memoized Option<inner> type,
// creating it on first request. Repeat calls with the same inner handle
// return the same handle.
func (a *ItemArena) GetOptionID(root Handle[Scope], inner Handle[Type]) Handle[Type] {
	if h, ok := a.optionMemo[inner]; ok {
		return h
	}
	h := Add(a, &Type{
		Data: ItemData{
			ParentID:    root,
			HasParentID: true,
			ID:          project.Identifier(fmt.Sprintf("option-%d", inner.idx)),
			IsAmbient:   true,
		},
		Inner: TypeInner{Kind: TypeKindOption, Elem: inner},
	})
	a.optionMemo[inner] = h
	return h
}

// GetScope walks sub-scopes by name starting from start, following segments
// in order. It fails with *ScopeNotFoundError on any missing segment.
func GetScope(a *ItemArena, start Handle[Scope], segments []project.Identifier) (Handle[Scope], error) {
	current := start
	for _, seg := range segments {
		scope, err := Get(a, current)
		if err != nil {
			return Handle[Scope]{}, err
		}
		entry, ok := scope.Scopes.Get(seg)
		if !ok {
			return Handle[Scope]{}, &ScopeNotFoundError{Path: seg.String()}
		}
		current = entry.Handle
	}
	return current, nil
}

// GetOrCreateScopeMut walks start down through segments, creating any
// missing intermediate scope along the way. Created scopes inherit
// is_ambient from the scope at start and are tagged with manifestPath.
func GetOrCreateScopeMut(a *ItemArena, manifestPath string, start Handle[Scope], segments []project.Identifier) (Handle[Scope], error) {
	startScope, err := Get(a, start)
	if err != nil {
		return Handle[Scope]{}, err
	}
	isAmbient := startScope.Data.IsAmbient

	current := start
	for _, seg := range segments {
		scope, err := Get(a, current)
		if err != nil {
			return Handle[Scope]{}, err
		}
		if entry, ok := scope.Scopes.Get(seg); ok {
			current = entry.Handle
			continue
		}
		child := NewScope(ItemData{
			ParentID:    current,
			HasParentID: true,
			ID:          seg,
			IsAmbient:   isAmbient,
		}, &manifestPath, nil)
		childHandle := Add(a, child)
		scope.Scopes.Set(seg, ScopeEntry{Path: manifestPath, Handle: childHandle})
		current = childHandle
	}
	return current, nil
}
