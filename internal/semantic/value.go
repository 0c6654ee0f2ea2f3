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

// ResolvableItemID is a reference to an item of kind T that starts out as a
// raw manifest path string and becomes a concrete handle once the owning
// scope's resolve pass reaches it. Mirrors the original's
// ResolvableItemId<T> enum (Unresolved(String) | Resolved(ItemId<T>)).
type ResolvableItemID[T any] struct {
	Raw      string
	Handle   Handle[T]
	Resolved bool
}

// UnresolvedItemID constructs a not-yet-resolved reference.
func UnresolvedItemID[T any](raw string) ResolvableItemID[T] {
	return ResolvableItemID[T]{Raw: raw}
}

// ResolvableType is the not-yet/already-resolved form of a component or
// field's declared type.
type ResolvableType struct {
	Raw      project.ComponentTypeRef
	Handle   Handle[Type]
	Resolved bool
}

// UnresolvedType constructs a not-yet-resolved type reference.
func UnresolvedType(raw project.ComponentTypeRef) ResolvableType {
	return ResolvableType{Raw: raw}
}

// ValueKind is the closed set of ResolvedValue variants.
type ValueKind int

const (
	// ValueKindNone marks a component/field default that was omitted from
	// the manifest entirely (not present in the original's model, which
	// always requires a literal; added because this port's manifest
	// decoder accepts `default` as optional).
	ValueKindNone ValueKind = iota
	ValueKindBool
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindVec
	ValueKindEnumMember
)

// ResolvedValue is a literal manifest value coerced against its field's
// resolved Type.
type ResolvedValue struct {
	Kind   ValueKind
	Bool   bool
	Int    int64
	Float  float64
	String string
	Vec    []ResolvedValue
}

// ResolvableValue is a default value's raw literal paired with its
// resolved form, filled in once the field's type is known and the literal
// has been coerced against it.
type ResolvableValue struct {
	Raw      any
	Value    ResolvedValue
	Resolved bool
}

// UnresolvedValue constructs a not-yet-resolved value from its raw TOML
// literal (nil if the manifest omitted the field).
func UnresolvedValue(raw any) ResolvableValue {
	return ResolvableValue{Raw: raw}
}
