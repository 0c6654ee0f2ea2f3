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

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/yVieta/Ambient/internal/project"
)

func TestContextPushDoesNotMutateParent(t *testing.T) {
	items := NewItemArena()
	root := createRootScope(items)
	child := Add(items, NewScope(ItemData{ParentID: root, HasParentID: true, ID: project.Identifier("child")}, nil, nil))

	base := NewContext(root)
	extended := base.Push(child)

	_, baseOK := base.GetTypeID(items, project.ComponentTypeRef{Path: "bool"})
	_, extendedOK := extended.GetTypeID(items, project.ComponentTypeRef{Path: "bool"})
	qt.Assert(t, qt.IsTrue(baseOK))
	qt.Assert(t, qt.IsTrue(extendedOK))

	attrHandle, err := extended.GetAttributeID(items, "networked")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(attrHandle.Valid()))

	_, err = base.GetConceptID(items, "nonexistent")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestInnerScopeTypeShadowsOuter(t *testing.T) {
	items := NewItemArena()
	root := createRootScope(items)
	childHandle := Add(items, NewScope(ItemData{ParentID: root, HasParentID: true, ID: project.Identifier("child")}, nil, nil))
	child, err := Get(items, childHandle)
	qt.Assert(t, qt.IsNil(err))

	shadow := Add(items, NewPrimitiveType(ItemData{ParentID: childHandle, HasParentID: true, ID: project.Identifier("bool")}, project.TypeString))
	child.Types.Set(project.Identifier("bool"), shadow)

	ctx := NewContext(root).Push(childHandle)
	handle, ok := ctx.GetTypeID(items, project.ComponentTypeRef{Path: "bool"})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(handle, shadow))
}
