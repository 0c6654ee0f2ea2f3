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

// TypeKind is the closed set of Type variants.
type TypeKind int

const (
	TypeKindPrimitive TypeKind = iota
	TypeKindVec
	TypeKindOption
	TypeKindEnum
)

// EnumMember is one (name, description) pair of an Enum type.
type EnumMember struct {
	Name        project.Identifier
	Description string
}

// TypeInner is the variant payload of a Type item.
type TypeInner struct {
	Kind TypeKind

	// Primitive is valid when Kind == TypeKindPrimitive.
	Primitive project.PrimitiveType

	// Elem is valid when Kind == TypeKindVec or TypeKindOption: the handle
	// of the wrapped element type.
	Elem Handle[Type]

	// Members is valid when Kind == TypeKindEnum, in declaration order.
	Members []EnumMember
}

// Type is a Primitive, Vec<T>, Option<T>, or Enum type item.
type Type struct {
	Data  ItemData
	Inner TypeInner
}

// NewPrimitiveType constructs a Type wrapping a primitive.
func NewPrimitiveType(data ItemData, pt project.PrimitiveType) *Type {
	return &Type{Data: data, Inner: TypeInner{Kind: TypeKindPrimitive, Primitive: pt}}
}

// NewEnumType constructs an Enum Type from its ordered member list.
func NewEnumType(data ItemData, members []EnumMember) *Type {
	return &Type{Data: data, Inner: TypeInner{Kind: TypeKindEnum, Members: members}}
}
