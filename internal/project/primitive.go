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

// PrimitiveType is the fixed, closed set of built-in scalar, vector, and
// matrix types shared with the rest of the platform. The exact membership is
// external input (owned by a platform-wide shared-types crate in the
// original); this is the subset the semantic model needs to seed the root
// scope and to type-check literal values.
type PrimitiveType int

const (
	TypeBool PrimitiveType = iota
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
	TypeVec2
	TypeVec3
	TypeVec4
	TypeUVec2
	TypeUVec3
	TypeUVec4
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeMat4
	TypeQuat
	TypeString
	TypeEntityID
	TypePath
	TypeURL
	TypeDuration
)

// primitiveNames is the registry: every entry becomes an ambient Type item
// in the root scope, keyed by its kebab-case name.
var primitiveNames = [...]struct {
	Name string
	Kind PrimitiveType
}{
	{"bool", TypeBool},
	{"u8", TypeU8},
	{"u16", TypeU16},
	{"u32", TypeU32},
	{"u64", TypeU64},
	{"i8", TypeI8},
	{"i16", TypeI16},
	{"i32", TypeI32},
	{"i64", TypeI64},
	{"f32", TypeF32},
	{"f64", TypeF64},
	{"vec2", TypeVec2},
	{"vec3", TypeVec3},
	{"vec4", TypeVec4},
	{"uvec2", TypeUVec2},
	{"uvec3", TypeUVec3},
	{"uvec4", TypeUVec4},
	{"ivec2", TypeIVec2},
	{"ivec3", TypeIVec3},
	{"ivec4", TypeIVec4},
	{"mat4", TypeMat4},
	{"quat", TypeQuat},
	{"string", TypeString},
	{"entity-id", TypeEntityID},
	{"path", TypePath},
	{"url", TypeURL},
	{"duration", TypeDuration},
}

// Primitives returns the registry in declaration order, as (kebab-case name,
// kind) pairs, for seeding the root scope.
func Primitives() []struct {
	Name string
	Kind PrimitiveType
} {
	out := make([]struct {
		Name string
		Kind PrimitiveType
	}, len(primitiveNames))
	for i, p := range primitiveNames {
		out[i] = p
	}
	return out
}

func (p PrimitiveType) String() string {
	for _, entry := range primitiveNames {
		if entry.Kind == p {
			return entry.Name
		}
	}
	return "unknown"
}

// IsVectorOrMatrix reports whether p is a composite numeric type whose
// values decode from a TOML array rather than a scalar.
func (p PrimitiveType) IsVectorOrMatrix() bool {
	switch p {
	case TypeVec2, TypeVec3, TypeVec4,
		TypeUVec2, TypeUVec3, TypeUVec4,
		TypeIVec2, TypeIVec3, TypeIVec4,
		TypeMat4, TypeQuat:
		return true
	}
	return false
}
