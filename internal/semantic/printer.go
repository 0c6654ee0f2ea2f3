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
	"io"
	"strings"
)

// Printer renders a Semantic as indented, human-readable text: one block
// per item, in scope-declaration order, depth-first. Used by golden-file
// tests and by diagnostic tooling; the exact shape of its output is part of
// this package's contract with its callers.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter returns a Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print renders the whole semantic graph starting from its root scope.
func (p *Printer) Print(s *Semantic) error {
	return p.printScope(s.Items, s.RootScope)
}

func (p *Printer) printScope(items *ItemArena, h Handle[Scope]) error {
	scope, err := Get(items, h)
	if err != nil {
		return err
	}

	for _, ch := range scope.Components.Values() {
		if err := p.printComponent(items, ch); err != nil {
			return err
		}
	}
	for _, ch := range scope.Concepts.Values() {
		if err := p.printConcept(items, ch); err != nil {
			return err
		}
	}
	for _, ch := range scope.Messages.Values() {
		if err := p.printMessage(items, ch); err != nil {
			return err
		}
	}
	for _, ch := range scope.Types.Values() {
		if err := p.printType(items, ch); err != nil {
			return err
		}
	}
	for _, ch := range scope.Attributes.Values() {
		if err := p.printAttribute(items, ch); err != nil {
			return err
		}
	}
	for _, entry := range scope.Scopes.Values() {
		if err := p.printScope(items, entry.Handle); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printComponent(items *ItemArena, h Handle[Component]) error {
	c, err := Get(items, h)
	if err != nil {
		return err
	}
	p.writeLine(fullyQualifiedPath(items, "component", c.Data))
	return p.withIndent(func() error {
		p.writeLine(fmt.Sprintf("name: %q", c.Name))
		p.writeLine(fmt.Sprintf("description: %q", c.Description))

		typeStr, err := writeResolvableType(items, c.Type)
		if err != nil {
			return err
		}
		p.writeLine(fmt.Sprintf("type: %s", typeStr))

		p.writeLine("attributes:")
		if err := p.withIndent(func() error {
			for _, attr := range c.Attributes {
				s, err := writeResolvableID(items, "attribute", attr, func(a *Attribute) ItemData { return a.Data })
				if err != nil {
					return err
				}
				p.writeLine(s)
			}
			return nil
		}); err != nil {
			return err
		}

		p.writeLine(fmt.Sprintf("default: %s", formatResolvableValue(c.Default)))
		return nil
	})
}

func (p *Printer) printConcept(items *ItemArena, h Handle[Concept]) error {
	c, err := Get(items, h)
	if err != nil {
		return err
	}
	p.writeLine(fullyQualifiedPath(items, "concept", c.Data))
	return p.withIndent(func() error {
		p.writeLine(fmt.Sprintf("name: %q", c.Name))
		p.writeLine(fmt.Sprintf("description: %q", c.Description))

		var extends []string
		for _, e := range c.Extends {
			s, err := writeResolvableID(items, "concept", e, func(cc *Concept) ItemData { return cc.Data })
			if err != nil {
				return err
			}
			extends = append(extends, s)
		}
		p.writeLine("extends:" + joinWithLeadingSpace(extends))

		p.writeLine("components:")
		return p.withIndent(func() error {
			for _, entry := range c.Components {
				s, err := writeResolvableID(items, "component", entry.Component, func(cp *Component) ItemData { return cp.Data })
				if err != nil {
					return err
				}
				p.writeLine(fmt.Sprintf("%s: %s", s, formatResolvableValue(entry.Value)))
			}
			return nil
		})
	})
}

func (p *Printer) printMessage(items *ItemArena, h Handle[Message]) error {
	m, err := Get(items, h)
	if err != nil {
		return err
	}
	p.writeLine(fullyQualifiedPath(items, "message", m.Data))
	return p.withIndent(func() error {
		p.writeLine(fmt.Sprintf("description: %q", m.Description))
		p.writeLine("fields:")
		return p.withIndent(func() error {
			for _, f := range m.Fields {
				s, err := writeResolvableType(items, f.Type)
				if err != nil {
					return err
				}
				p.writeLine(fmt.Sprintf("%s: %s", f.Name, s))
			}
			return nil
		})
	})
}

func (p *Printer) printType(items *ItemArena, h Handle[Type]) error {
	t, err := Get(items, h)
	if err != nil {
		return err
	}
	p.writeLine(fullyQualifiedPath(items, "type", t.Data))
	if t.Inner.Kind == TypeKindEnum {
		return p.withIndent(func() error {
			for _, m := range t.Inner.Members {
				p.writeLine(fmt.Sprintf("%s: %s", m.Name, m.Description))
			}
			return nil
		})
	}
	return nil
}

func (p *Printer) printAttribute(items *ItemArena, h Handle[Attribute]) error {
	a, err := Get(items, h)
	if err != nil {
		return err
	}
	p.writeLine(fullyQualifiedPath(items, "attribute", a.Data))
	return nil
}

func (p *Printer) writeLine(s string) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), s)
}

func (p *Printer) withIndent(f func() error) error {
	p.indent++
	err := f()
	p.indent--
	return err
}

func joinWithLeadingSpace(items []string) string {
	var sb strings.Builder
	for _, s := range items {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}
	return sb.String()
}

func writeResolvableType(items *ItemArena, t ResolvableType) (string, error) {
	if !t.Resolved {
		return fmt.Sprintf("unresolved(%q)", t.Raw.Path), nil
	}
	ty, err := Get(items, t.Handle)
	if err != nil {
		return "", err
	}
	return fullyQualifiedPath(items, "type", ty.Data), nil
}

func writeResolvableID[T any](items *ItemArena, kind string, r ResolvableItemID[T], dataOf func(*T) ItemData) (string, error) {
	if !r.Resolved {
		return fmt.Sprintf("unresolved(%q)", r.Raw), nil
	}
	v, err := Get(items, r.Handle)
	if err != nil {
		return "", err
	}
	return fullyQualifiedPath(items, kind, dataOf(v)), nil
}

// fullyQualifiedPath renders an item's kind-prefixed, slash-separated path
// from the root scope down to itself, e.g. "component:my-org/my-ember/health",
// suffixed with " [A]" for ambient (platform-seeded) items. The parent chain
// is always a chain of scopes, regardless of the item's own kind.
func fullyQualifiedPath(items *ItemArena, kind string, data ItemData) string {
	path := []string{data.ID.String()}

	hasParent := data.HasParentID
	parent := data.ParentID
	for hasParent {
		scope, err := Get(items, parent)
		if err != nil {
			break
		}
		if !scope.Data.ID.IsRoot() {
			path = append(path, scope.Data.ID.String())
		}
		hasParent = scope.Data.HasParentID
		parent = scope.Data.ParentID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	suffix := ""
	if data.IsAmbient {
		suffix = " [A]"
	}
	return fmt.Sprintf("%s:%s%s", kind, strings.Join(path, "/"), suffix)
}

// formatResolvableValue renders a component/concept default for the printer.
func formatResolvableValue(v ResolvableValue) string {
	if !v.Resolved {
		return fmt.Sprintf("unresolved(%#v)", v.Raw)
	}
	return formatResolvedValue(v.Value)
}

func formatResolvedValue(v ResolvedValue) string {
	switch v.Kind {
	case ValueKindNone:
		return "none"
	case ValueKindBool:
		return fmt.Sprintf("%t", v.Bool)
	case ValueKindInt:
		return fmt.Sprintf("%d", v.Int)
	case ValueKindFloat:
		return fmt.Sprintf("%g", v.Float)
	case ValueKindString, ValueKindEnumMember:
		return fmt.Sprintf("%q", v.String)
	case ValueKindVec:
		parts := make([]string, len(v.Vec))
		for i, e := range v.Vec {
			parts[i] = formatResolvedValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "none"
	}
}
