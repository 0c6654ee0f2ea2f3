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

// standardAttributes is the fixed set of ambient attributes every root
// scope is seeded with. Manifests reference these by name; they are never
// user-declared.
var standardAttributes = []string{
	"debuggable",
	"networked",
	"resource",
	"maybe-resource",
	"store",
}

// createRootScope builds the arena's root scope, seeded with every
// primitive type and every standard attribute as ambient items.
func createRootScope(items *ItemArena) Handle[Scope] {
	root := Add(items, NewScope(ItemData{
		ID:        project.RootIdentifier(),
		IsAmbient: true,
	}, nil, nil))

	rootScope, _ := Get(items, root)

	for _, prim := range project.Primitives() {
		id := project.Identifier(prim.Name)
		typeHandle := Add(items, NewPrimitiveType(ItemData{
			ParentID:    root,
			HasParentID: true,
			ID:          id,
			IsAmbient:   true,
		}, prim.Kind))
		rootScope.Types.Set(id, typeHandle)
	}

	for _, name := range standardAttributes {
		id := project.Identifier(name)
		attrHandle := Add(items, &Attribute{
			Data: ItemData{
				ParentID:    root,
				HasParentID: true,
				ID:          id,
				IsAmbient:   true,
			},
			Name: name,
		})
		rootScope.Attributes.Set(id, attrHandle)
	}

	return root
}
