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

package manifest

import (
	"fmt"

	"github.com/yVieta/Ambient/internal/project"
)

// Parse decodes raw ember-manifest TOML text into a project.Manifest.
func Parse(raw string) (project.Manifest, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return project.Manifest{}, err
	}

	var m project.Manifest

	emberTable, _ := doc.get("ember").asTable()
	if emberTable == nil {
		return project.Manifest{}, fmt.Errorf("manifest: missing [ember] table")
	}
	ember, err := convertEmber(emberTable)
	if err != nil {
		return project.Manifest{}, err
	}
	m.Ember = ember

	if deps, ok := doc.get("dependencies").asTable(); ok {
		for _, e := range deps.entries() {
			dep, err := convertDependency(e.Value)
			if err != nil {
				return project.Manifest{}, fmt.Errorf("manifest: dependency %q: %w", e.Key, err)
			}
			m.Dependencies = append(m.Dependencies, project.KeyedValue[project.Dependency]{Key: e.Key, Value: dep})
		}
	}

	if comps, ok := doc.get("components").asTable(); ok {
		for _, e := range comps.entries() {
			tbl, ok := e.Value.asTable()
			if !ok {
				return project.Manifest{}, fmt.Errorf("manifest: component %q is not a table", e.Key)
			}
			def, err := convertComponent(tbl)
			if err != nil {
				return project.Manifest{}, fmt.Errorf("manifest: component %q: %w", e.Key, err)
			}
			m.Components = append(m.Components, project.KeyedValue[project.ComponentDef]{Key: e.Key, Value: def})
		}
	}

	if concepts, ok := doc.get("concepts").asTable(); ok {
		for _, e := range concepts.entries() {
			tbl, ok := e.Value.asTable()
			if !ok {
				return project.Manifest{}, fmt.Errorf("manifest: concept %q is not a table", e.Key)
			}
			def, err := convertConcept(tbl)
			if err != nil {
				return project.Manifest{}, fmt.Errorf("manifest: concept %q: %w", e.Key, err)
			}
			m.Concepts = append(m.Concepts, project.KeyedValue[project.ConceptDef]{Key: e.Key, Value: def})
		}
	}

	if messages, ok := doc.get("messages").asTable(); ok {
		for _, e := range messages.entries() {
			tbl, ok := e.Value.asTable()
			if !ok {
				return project.Manifest{}, fmt.Errorf("manifest: message %q is not a table", e.Key)
			}
			def, err := convertMessage(tbl)
			if err != nil {
				return project.Manifest{}, fmt.Errorf("manifest: message %q: %w", e.Key, err)
			}
			m.Messages = append(m.Messages, project.KeyedValue[project.MessageDef]{Key: e.Key, Value: def})
		}
	}

	if enums, ok := doc.get("enums").asTable(); ok {
		for _, e := range enums.entries() {
			tbl, ok := e.Value.asTable()
			if !ok {
				return project.Manifest{}, fmt.Errorf("manifest: enum %q is not a table", e.Key)
			}
			def, err := convertEnum(tbl)
			if err != nil {
				return project.Manifest{}, fmt.Errorf("manifest: enum %q: %w", e.Key, err)
			}
			m.Enums = append(m.Enums, project.KeyedValue[project.EnumDef]{Key: e.Key, Value: def})
		}
	}

	return m, nil
}

func convertEmber(t *orderedTable) (project.Ember, error) {
	var e project.Ember
	idStr, ok := t.get("id").asString()
	if !ok {
		return e, fmt.Errorf("ember.id is required")
	}
	id, err := project.NewIdentifier(idStr)
	if err != nil {
		return e, fmt.Errorf("ember.id: %w", err)
	}
	e.ID = id

	if orgVal := t.get("organization"); orgVal != nil {
		orgStr, ok := orgVal.asString()
		if !ok {
			return e, fmt.Errorf("ember.organization must be a string")
		}
		org, err := project.NewIdentifier(orgStr)
		if err != nil {
			return e, fmt.Errorf("ember.organization: %w", err)
		}
		e.Organization = org
		e.HasOrg = true
	}

	if includesVal := t.get("includes"); includesVal != nil {
		arr, ok := includesVal.asArray()
		if !ok {
			return e, fmt.Errorf("ember.includes must be an array of strings")
		}
		for _, elem := range arr {
			s, ok := elem.asString()
			if !ok {
				return e, fmt.Errorf("ember.includes elements must be strings")
			}
			e.Includes = append(e.Includes, s)
		}
	}

	return e, nil
}

func convertDependency(v *value) (project.Dependency, error) {
	tbl, ok := v.asTable()
	if !ok {
		return project.Dependency{}, fmt.Errorf("dependency must be a table")
	}
	pathVal := tbl.get("path")
	if pathVal == nil {
		return project.Dependency{}, fmt.Errorf("only path dependencies are supported (missing `path` key)")
	}
	p, ok := pathVal.asString()
	if !ok {
		return project.Dependency{}, fmt.Errorf("dependency path must be a string")
	}
	return project.Dependency{Path: p}, nil
}

func convertComponent(t *orderedTable) (project.ComponentDef, error) {
	var c project.ComponentDef

	typeVal := t.get("type")
	if typeVal == nil {
		return c, fmt.Errorf("component.type is required")
	}
	typeRef, err := convertComponentType(typeVal)
	if err != nil {
		return c, err
	}
	c.Type = typeRef

	if nameVal := t.get("name"); nameVal != nil {
		s, ok := nameVal.asString()
		if !ok {
			return c, fmt.Errorf("component.name must be a string")
		}
		c.Name = &s
	}
	if descVal := t.get("description"); descVal != nil {
		s, ok := descVal.asString()
		if !ok {
			return c, fmt.Errorf("component.description must be a string")
		}
		c.Description = &s
	}
	if attrsVal := t.get("attributes"); attrsVal != nil {
		arr, ok := attrsVal.asArray()
		if !ok {
			return c, fmt.Errorf("component.attributes must be an array of strings")
		}
		for _, elem := range arr {
			s, ok := elem.asString()
			if !ok {
				return c, fmt.Errorf("component.attributes elements must be strings")
			}
			c.Attributes = append(c.Attributes, s)
		}
	}
	if defVal := t.get("default"); defVal != nil {
		c.Default = toNative(defVal)
	}

	return c, nil
}

func convertComponentType(v *value) (project.ComponentTypeRef, error) {
	if s, ok := v.asString(); ok {
		return project.ComponentTypeRef{Container: project.ContainerNone, Path: s}, nil
	}
	tbl, ok := v.asTable()
	if !ok {
		return project.ComponentTypeRef{}, fmt.Errorf("type must be a string or a {container_type, element_type} table")
	}
	containerStr, ok := tbl.get("container_type").asString()
	if !ok {
		return project.ComponentTypeRef{}, fmt.Errorf("type.container_type is required for a container type")
	}
	elementStr, ok := tbl.get("element_type").asString()
	if !ok {
		return project.ComponentTypeRef{}, fmt.Errorf("type.element_type is required for a container type")
	}
	var ct project.ContainerType
	switch containerStr {
	case "Vec":
		ct = project.ContainerVec
	case "Option":
		ct = project.ContainerOption
	default:
		return project.ComponentTypeRef{}, fmt.Errorf("unknown container_type %q (expected Vec or Option)", containerStr)
	}
	return project.ComponentTypeRef{Container: ct, Path: elementStr}, nil
}

func convertConcept(t *orderedTable) (project.ConceptDef, error) {
	var c project.ConceptDef
	if nameVal := t.get("name"); nameVal != nil {
		s, ok := nameVal.asString()
		if !ok {
			return c, fmt.Errorf("concept.name must be a string")
		}
		c.Name = &s
	}
	if descVal := t.get("description"); descVal != nil {
		s, ok := descVal.asString()
		if !ok {
			return c, fmt.Errorf("concept.description must be a string")
		}
		c.Description = &s
	}
	if extVal := t.get("extends"); extVal != nil {
		arr, ok := extVal.asArray()
		if !ok {
			return c, fmt.Errorf("concept.extends must be an array of strings")
		}
		for _, elem := range arr {
			s, ok := elem.asString()
			if !ok {
				return c, fmt.Errorf("concept.extends elements must be strings")
			}
			c.Extends = append(c.Extends, s)
		}
	}
	if compsVal := t.get("components"); compsVal != nil {
		tbl, ok := compsVal.asTable()
		if !ok {
			return c, fmt.Errorf("concept.components must be a table")
		}
		for _, e := range tbl.entries() {
			c.Components = append(c.Components, project.KeyedValue[any]{Key: e.Key, Value: toNative(e.Value)})
		}
	}
	return c, nil
}

func convertMessage(t *orderedTable) (project.MessageDef, error) {
	var m project.MessageDef
	if descVal := t.get("description"); descVal != nil {
		s, ok := descVal.asString()
		if !ok {
			return m, fmt.Errorf("message.description must be a string")
		}
		m.Description = &s
	}
	if fieldsVal := t.get("fields"); fieldsVal != nil {
		tbl, ok := fieldsVal.asTable()
		if !ok {
			return m, fmt.Errorf("message.fields must be a table")
		}
		for _, e := range tbl.entries() {
			s, ok := e.Value.asString()
			if !ok {
				return m, fmt.Errorf("message.fields.%s must be a type-path string", e.Key)
			}
			m.Fields = append(m.Fields, project.KeyedValue[string]{Key: e.Key, Value: s})
		}
	}
	return m, nil
}

func convertEnum(t *orderedTable) (project.EnumDef, error) {
	var e project.EnumDef
	membersVal := t.get("members")
	if membersVal == nil {
		return e, fmt.Errorf("enum.members is required")
	}
	tbl, ok := membersVal.asTable()
	if !ok {
		return e, fmt.Errorf("enum.members must be a table")
	}
	for _, entry := range tbl.entries() {
		s, ok := entry.Value.asString()
		if !ok {
			return e, fmt.Errorf("enum.members.%s must be a description string", entry.Key)
		}
		e.Members = append(e.Members, project.KeyedValue[string]{Key: entry.Key, Value: s})
	}
	return e, nil
}

// toNative converts a decoded value into a plain Go value tree
// (string/int64/float64/bool/[]any/map-preserving-order via
// []project.KeyedValue[any]) suitable for storage as a ComponentDef.Default
// or ConceptDef component value literal, to be interpreted later by the
// resolver's type-directed value coercion.
func toNative(v *value) any {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return v.i64
	case kindFloat:
		return v.f64
	case kindBool:
		return v.b
	case kindArray:
		out := make([]any, len(v.array))
		for i, e := range v.array {
			out[i] = toNative(e)
		}
		return out
	case kindTable:
		var out []project.KeyedValue[any]
		for _, e := range v.table.entries() {
			out = append(out, project.KeyedValue[any]{Key: e.Key, Value: toNative(e.Value)})
		}
		return out
	}
	return nil
}
