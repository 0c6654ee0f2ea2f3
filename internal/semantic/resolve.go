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

	"github.com/yVieta/Ambient/internal/project"
)

// resolver carries the one piece of state that must survive across the
// whole resolve pass: which concepts are mid-resolution, for extends-chain
// cycle detection.
type resolver struct {
	items    *ItemArena
	visiting map[Handle[Concept]]bool
}

// Resolve walks every organization scope under the root and resolves every
// type reference, attribute reference, concept extends chain, and default
// value reachable from it. It is idempotent: items already resolved are
// left untouched.
func (s *Semantic) Resolve() error {
	root, err := Get(s.Items, s.RootScope)
	if err != nil {
		return err
	}
	r := &resolver{items: s.Items, visiting: make(map[Handle[Concept]]bool)}

	for _, org := range root.Scopes.Values() {
		if err := r.resolveScopeRecursive(org.Handle, NewContext(s.RootScope)); err != nil {
			return err
		}
	}
	return nil
}

// resolveScopeRecursive mirrors Scope::resolve_clone's traversal: push self
// onto the context, resolve sub-scopes first (depth-first), then resolve
// this scope's own components, concepts, and messages. Types and attributes
// hold no references to resolve and are not visited. Sub-scopes are
// snapshotted before recursing so that items created as a side effect of
// resolution (the memoized Vec/Option types, which are added to the arena
// but to no scope) could never surprise a live iteration.
func (r *resolver) resolveScopeRecursive(scopeHandle Handle[Scope], ctx *Context) error {
	scope, err := Get(r.items, scopeHandle)
	if err != nil {
		return err
	}
	inner := ctx.Push(scopeHandle)

	for _, entry := range scope.Scopes.Values() {
		if err := r.resolveScopeRecursive(entry.Handle, inner); err != nil {
			return err
		}
	}
	for _, h := range scope.Components.Values() {
		if err := r.ensureComponentResolved(h, inner); err != nil {
			return err
		}
	}
	for _, h := range scope.Concepts.Values() {
		if err := r.ensureConceptResolved(h, inner); err != nil {
			return err
		}
	}
	for _, h := range scope.Messages.Values() {
		if err := r.ensureMessageResolved(h, inner); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) ensureComponentResolved(h Handle[Component], ctx *Context) error {
	c, err := Get(r.items, h)
	if err != nil {
		return err
	}
	if err := r.resolveType(&c.Type, ctx); err != nil {
		return fmt.Errorf("component %q: %w", c.Data.ID, err)
	}
	for i := range c.Attributes {
		if c.Attributes[i].Resolved {
			continue
		}
		attrHandle, err := ctx.GetAttributeID(r.items, c.Attributes[i].Raw)
		if err != nil {
			return fmt.Errorf("component %q: %w", c.Data.ID, err)
		}
		c.Attributes[i].Handle = attrHandle
		c.Attributes[i].Resolved = true
	}
	if !c.Default.Resolved {
		typeHandle, err := r.typeHandleOf(c.Type)
		if err != nil {
			return fmt.Errorf("component %q: %w", c.Data.ID, err)
		}
		val, err := r.resolveValueForType(c.Default.Raw, typeHandle)
		if err != nil {
			return fmt.Errorf("component %q default: %w", c.Data.ID, err)
		}
		c.Default.Value = val
		c.Default.Resolved = true
	}
	return nil
}

func (r *resolver) ensureConceptResolved(h Handle[Concept], ctx *Context) error {
	if r.visiting[h] {
		return &ConceptCycleError{Path: ""}
	}
	c, err := Get(r.items, h)
	if err != nil {
		return err
	}
	r.visiting[h] = true
	defer delete(r.visiting, h)

	for i := range c.Extends {
		if c.Extends[i].Resolved {
			continue
		}
		targetHandle, err := ctx.GetConceptID(r.items, c.Extends[i].Raw)
		if err != nil {
			return fmt.Errorf("concept %q extends: %w", c.Data.ID, err)
		}
		target, err := Get(r.items, targetHandle)
		if err != nil {
			return err
		}
		targetCtx, err := contextForScope(r.items, target.Data.ParentID)
		if err != nil {
			return err
		}
		if err := r.ensureConceptResolved(targetHandle, targetCtx); err != nil {
			if _, ok := err.(*ConceptCycleError); ok {
				return &ConceptCycleError{Path: string(c.Data.ID)}
			}
			return err
		}
		c.Extends[i].Handle = targetHandle
		c.Extends[i].Resolved = true
	}

	for i := range c.Components {
		entry := &c.Components[i]
		if !entry.Component.Resolved {
			compHandle, err := ctx.GetComponentID(r.items, entry.Component.Raw)
			if err != nil {
				return fmt.Errorf("concept %q component: %w", c.Data.ID, err)
			}
			entry.Component.Handle = compHandle
			entry.Component.Resolved = true
		}
		if err := r.ensureComponentResolved(entry.Component.Handle, ctx); err != nil {
			return err
		}
		if !entry.Value.Resolved {
			comp, err := Get(r.items, entry.Component.Handle)
			if err != nil {
				return err
			}
			typeHandle, err := r.typeHandleOf(comp.Type)
			if err != nil {
				return err
			}
			val, err := r.resolveValueForType(entry.Value.Raw, typeHandle)
			if err != nil {
				return fmt.Errorf("concept %q component %q: %w", c.Data.ID, comp.Data.ID, err)
			}
			entry.Value.Value = val
			entry.Value.Resolved = true
		}
	}
	return nil
}

func (r *resolver) ensureMessageResolved(h Handle[Message], ctx *Context) error {
	m, err := Get(r.items, h)
	if err != nil {
		return err
	}
	for i := range m.Fields {
		if err := r.resolveType(&m.Fields[i].Type, ctx); err != nil {
			return fmt.Errorf("message %q field %q: %w", m.Data.ID, m.Fields[i].Name, err)
		}
	}
	return nil
}

func (r *resolver) resolveType(t *ResolvableType, ctx *Context) error {
	if t.Resolved {
		return nil
	}
	handle, ok := ctx.GetTypeID(r.items, t.Raw)
	if !ok {
		return &ItemNotFoundError{Kind: "type", Path: t.Raw.Path}
	}
	t.Handle = handle
	t.Resolved = true
	return nil
}

func (r *resolver) typeHandleOf(t ResolvableType) (Handle[Type], error) {
	if !t.Resolved {
		return Handle[Type]{}, fmt.Errorf("type %q: %w", t.Raw.Path, ErrInvalidHandle)
	}
	return t.Handle, nil
}

// resolveValueForType coerces a raw TOML literal (nil, bool, int64, float64,
// string, []any, or []project.KeyedValue[any]) against typeHandle's shape.
// A nil literal (default omitted, or an explicit null under an Option)
// always resolves to ValueKindNone regardless of the target type.
func (r *resolver) resolveValueForType(raw any, typeHandle Handle[Type]) (ResolvedValue, error) {
	if raw == nil {
		return ResolvedValue{Kind: ValueKindNone}, nil
	}
	ty, err := Get(r.items, typeHandle)
	if err != nil {
		return ResolvedValue{}, err
	}
	switch ty.Inner.Kind {
	case TypeKindPrimitive:
		return coercePrimitive(raw, ty.Inner.Primitive)
	case TypeKindOption:
		return r.resolveValueForType(raw, ty.Inner.Elem)
	case TypeKindVec:
		arr, ok := raw.([]any)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: "vec", Literal: raw}
		}
		out := make([]ResolvedValue, 0, len(arr))
		for _, elem := range arr {
			v, err := r.resolveValueForType(elem, ty.Inner.Elem)
			if err != nil {
				return ResolvedValue{}, err
			}
			out = append(out, v)
		}
		return ResolvedValue{Kind: ValueKindVec, Vec: out}, nil
	case TypeKindEnum:
		name, ok := raw.(string)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: "enum", Literal: raw}
		}
		for _, member := range ty.Inner.Members {
			if string(member.Name) == name {
				return ResolvedValue{Kind: ValueKindEnumMember, String: name}, nil
			}
		}
		return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: fmt.Sprintf("enum %q member", ty.Data.ID), Literal: raw}
	}
	return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: "unknown", Literal: raw}
}

// coercePrimitive type-checks and converts a literal against a scalar,
// vector, or matrix primitive.
func coercePrimitive(raw any, pt project.PrimitiveType) (ResolvedValue, error) {
	if pt == project.TypeBool {
		b, ok := raw.(bool)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
		}
		return ResolvedValue{Kind: ValueKindBool, Bool: b}, nil
	}

	if pt.IsVectorOrMatrix() {
		arr, ok := raw.([]any)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
		}
		out := make([]ResolvedValue, 0, len(arr))
		for _, elem := range arr {
			f, ok := toFloat(elem)
			if !ok {
				return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
			}
			out = append(out, ResolvedValue{Kind: ValueKindFloat, Float: f})
		}
		return ResolvedValue{Kind: ValueKindVec, Vec: out}, nil
	}

	switch pt {
	case project.TypeString, project.TypeEntityID, project.TypePath, project.TypeURL, project.TypeDuration:
		strVal, ok := raw.(string)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
		}
		return ResolvedValue{Kind: ValueKindString, String: strVal}, nil
	case project.TypeF32, project.TypeF64:
		f, ok := toFloat(raw)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
		}
		return ResolvedValue{Kind: ValueKindFloat, Float: f}, nil
	default:
		// Remaining primitives are the integer family (u8..u64, i8..i64).
		i, ok := raw.(int64)
		if !ok {
			return ResolvedValue{}, &ValueTypeMismatchError{ExpectedType: pt.String(), Literal: raw}
		}
		return ResolvedValue{Kind: ValueKindInt, Int: i}, nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
