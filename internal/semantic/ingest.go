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
	"fmt"

	"github.com/yVieta/Ambient/internal/fileprovider"
	"github.com/yVieta/Ambient/internal/manifest"
	"github.com/yVieta/Ambient/internal/project"
)

// Semantic is the top-level arena plus the handle of its seeded root scope.
// A zero Semantic is not usable; construct one with NewSemantic.
type Semantic struct {
	Items     *ItemArena
	RootScope Handle[Scope]
}

// NewSemantic returns a Semantic whose root scope is pre-seeded with every
// primitive type and standard attribute.
func NewSemantic() *Semantic {
	items := NewItemArena()
	return &Semantic{Items: items, RootScope: createRootScope(items)}
}

// AddFile ingests the top-level ember manifest at filename, creating (or
// reusing) its organization scope under the root scope. Path dependencies
// named in the manifest are ingested as further top-level embers, sharing
// this same arena and root scope: dependency scopes are merged into one
// global organization tree rather than kept as isolated islands, matching
// the upstream ingestor's documented simplifying assumption.
func (s *Semantic) AddFile(filename string, fp fileprovider.FileProvider, isAmbient bool) (Handle[Scope], error) {
	raw, err := fp.Get(filename)
	if err != nil {
		return Handle[Scope]{}, err
	}
	m, err := manifest.Parse(raw)
	if err != nil {
		return Handle[Scope]{}, &ManifestParseError{Path: fp.FullPath(filename), Cause: err}
	}

	if !m.Ember.HasOrg {
		return Handle[Scope]{}, &MissingOrganizationError{Path: fp.FullPath(filename)}
	}
	organizationKey := m.Ember.Organization

	rootScope, err := Get(s.Items, s.RootScope)
	if err != nil {
		return Handle[Scope]{}, err
	}
	organizationHandle, ok := rootScope.Scopes.Get(organizationKey)
	if !ok {
		orgHandle := Add(s.Items, NewScope(ItemData{
			ParentID:    s.RootScope,
			HasParentID: true,
			ID:          organizationKey,
			IsAmbient:   false,
		}, nil, nil))
		rootScope.Scopes.Set(organizationKey, ScopeEntry{Handle: orgHandle})
		organizationHandle = ScopeEntry{Handle: orgHandle}
	}

	scopeID := m.Ember.ID
	organizationScope, err := Get(s.Items, organizationHandle.Handle)
	if err != nil {
		return Handle[Scope]{}, err
	}
	manifestPath := fp.FullPath(filename)
	if existing, ok := organizationScope.Scopes.Get(scopeID); ok {
		if existing.Path == manifestPath {
			return existing.Handle, nil
		}
		return Handle[Scope]{}, &DuplicateScopeError{
			ID:           scopeID.String(),
			ExistingPath: existing.Path,
			NewPath:      manifestPath,
		}
	}

	itemHandle, err := s.addScopeFromManifest(organizationHandle.Handle, true, fp, m, manifestPath, scopeID, isAmbient)
	if err != nil {
		return Handle[Scope]{}, err
	}
	organizationScope.Scopes.Set(scopeID, ScopeEntry{Path: manifestPath, Handle: itemHandle})
	return itemHandle, nil
}

// AddFileAtNonTopLevel ingests a manifest named by an `includes` entry: it
// becomes a direct sub-scope of parentScope rather than an organization
// member.
func (s *Semantic) AddFileAtNonTopLevel(parentScope Handle[Scope], filename string, fp fileprovider.FileProvider, isAmbient bool) (Handle[Scope], error) {
	raw, err := fp.Get(filename)
	if err != nil {
		return Handle[Scope]{}, err
	}
	m, err := manifest.Parse(raw)
	if err != nil {
		return Handle[Scope]{}, &ManifestParseError{Path: fp.FullPath(filename), Cause: err}
	}
	return s.addScopeFromManifest(parentScope, true, fp, m, fp.FullPath(filename), m.Ember.ID, isAmbient)
}

func (s *Semantic) addScopeFromManifest(
	parentID Handle[Scope],
	hasParent bool,
	fp fileprovider.FileProvider,
	m project.Manifest,
	manifestPath string,
	id project.Identifier,
	isAmbient bool,
) (Handle[Scope], error) {
	scope := NewScope(ItemData{
		ParentID:    parentID,
		HasParentID: hasParent,
		ID:          id,
		IsAmbient:   isAmbient,
	}, &manifestPath, &m)
	scopeHandle := Add(s.Items, scope)

	for _, include := range m.Ember.Includes {
		childHandle, err := s.AddFileAtNonTopLevel(scopeHandle, include, fp, isAmbient)
		if err != nil {
			return Handle[Scope]{}, err
		}
		child, err := Get(s.Items, childHandle)
		if err != nil {
			return Handle[Scope]{}, err
		}
		scope.Scopes.Set(child.Data.ID, ScopeEntry{Path: fp.FullPath(include), Handle: childHandle})
	}

	for _, dep := range m.Dependencies {
		proxy := &fileprovider.ProxyFileProvider{Provider: fp, Base: dep.Value.Path}
		if _, err := s.AddFile("ambient.toml", proxy, isAmbient); err != nil {
			return Handle[Scope]{}, err
		}
	}

	makeData := func(itemID project.Identifier) ItemData {
		return ItemData{ParentID: scopeHandle, HasParentID: true, ID: itemID, IsAmbient: isAmbient}
	}

	for _, kv := range m.Components {
		itemPath, err := project.ParseItemPath(kv.Key)
		if err != nil {
			return Handle[Scope]{}, fmt.Errorf("component %q: %w", kv.Key, err)
		}
		scopePath, itemName := itemPath.ScopeAndItem()
		value := Add(s.Items, componentFromDef(makeData(itemName), kv.Value))
		dest, err := GetOrCreateScopeMut(s.Items, manifestPath, scopeHandle, scopePath)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope, err := Get(s.Items, dest)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope.Components.Set(itemName, value)
	}

	for _, kv := range m.Concepts {
		itemPath, err := project.ParseItemPath(kv.Key)
		if err != nil {
			return Handle[Scope]{}, fmt.Errorf("concept %q: %w", kv.Key, err)
		}
		scopePath, itemName := itemPath.ScopeAndItem()
		value := Add(s.Items, conceptFromDef(makeData(itemName), kv.Value))
		dest, err := GetOrCreateScopeMut(s.Items, manifestPath, scopeHandle, scopePath)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope, err := Get(s.Items, dest)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope.Concepts.Set(itemName, value)
	}

	for _, kv := range m.Messages {
		itemPath, err := project.ParseItemPath(kv.Key)
		if err != nil {
			return Handle[Scope]{}, fmt.Errorf("message %q: %w", kv.Key, err)
		}
		scopePath, itemName := itemPath.ScopeAndItem()
		value := Add(s.Items, messageFromDef(makeData(itemName), kv.Value))
		dest, err := GetOrCreateScopeMut(s.Items, manifestPath, scopeHandle, scopePath)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope, err := Get(s.Items, dest)
		if err != nil {
			return Handle[Scope]{}, err
		}
		destScope.Messages.Set(itemName, value)
	}

	for _, kv := range m.Enums {
		segment, err := project.NewIdentifier(kv.Key)
		if err != nil {
			return Handle[Scope]{}, fmt.Errorf("enum %q: %w", kv.Key, err)
		}
		enumHandle := Add(s.Items, enumFromDef(makeData(segment), kv.Value))
		scope.Types.Set(segment, enumHandle)
	}

	return scopeHandle, nil
}

func componentFromDef(data ItemData, def project.ComponentDef) *Component {
	c := &Component{
		Data: data,
		Type: UnresolvedType(def.Type),
	}
	if def.Name != nil {
		c.Name = *def.Name
	} else {
		c.Name = string(data.ID)
	}
	if def.Description != nil {
		c.Description = *def.Description
	}
	for _, a := range def.Attributes {
		c.Attributes = append(c.Attributes, UnresolvedItemID[Attribute](a))
	}
	c.Default = UnresolvedValue(def.Default)
	return c
}

func conceptFromDef(data ItemData, def project.ConceptDef) *Concept {
	c := &Concept{Data: data}
	if def.Name != nil {
		c.Name = *def.Name
	} else {
		c.Name = string(data.ID)
	}
	if def.Description != nil {
		c.Description = *def.Description
	}
	for _, e := range def.Extends {
		c.Extends = append(c.Extends, UnresolvedItemID[Concept](e))
	}
	for _, kv := range def.Components {
		c.Components = append(c.Components, ConceptComponentEntry{
			Component: UnresolvedItemID[Component](kv.Key),
			Value:     UnresolvedValue(kv.Value),
		})
	}
	return c
}

func messageFromDef(data ItemData, def project.MessageDef) *Message {
	msg := &Message{Data: data}
	if def.Description != nil {
		msg.Description = *def.Description
	}
	for _, kv := range def.Fields {
		ref := project.ComponentTypeRef{Container: project.ContainerNone, Path: kv.Value}
		msg.Fields = append(msg.Fields, MessageField{Name: kv.Key, Type: UnresolvedType(ref)})
	}
	return msg
}

func enumFromDef(data ItemData, def project.EnumDef) *Type {
	members := make([]EnumMember, 0, len(def.Members))
	for _, kv := range def.Members {
		members = append(members, EnumMember{Name: project.Identifier(kv.Key), Description: kv.Value})
	}
	return NewEnumType(data, members)
}
