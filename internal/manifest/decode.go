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
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2/unstable"
)

// decodeDocument parses raw TOML text into an order-preserving generic
// document. Array-of-tables ([[x]]) is not part of the ember manifest
// grammar and is rejected.
func decodeDocument(raw string) (*orderedTable, error) {
	root := newOrderedTable()
	currentPath := []string(nil)

	var parser toml.Parser
	parser.Reset([]byte(raw))
	for parser.NextExpression() {
		node := parser.Expression()
		switch node.Kind {
		case toml.KeyValue:
			keyPath := decodeKeyPath(node.Key())
			v, err := decodeExpr(node.Value())
			if err != nil {
				return nil, err
			}
			table, err := root.getOrCreateTable(currentPath)
			if err != nil {
				return nil, err
			}
			leafPath := keyPath[:len(keyPath)-1]
			leafTable, err := table.getOrCreateTable(leafPath)
			if err != nil {
				return nil, err
			}
			leafTable.set(keyPath[len(keyPath)-1], v)
		case toml.Table:
			currentPath = decodeKeyPath(node.Key())
			if _, err := root.getOrCreateTable(currentPath); err != nil {
				return nil, err
			}
		case toml.ArrayTable:
			return nil, fmt.Errorf("manifest: array-of-tables ([[%s]]) is not supported in ambient manifests", keyPathString(decodeKeyPath(node.Key())))
		default:
			return nil, fmt.Errorf("manifest: unsupported top-level TOML construct %v", node.Kind)
		}
	}
	if err := parser.Error(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return root, nil
}

func decodeKeyPath(iter toml.Iterator) []string {
	var path []string
	for iter.Next() {
		path = append(path, string(iter.Node().Data))
	}
	return path
}

func keyPathString(path []string) string {
	return strings.Join(path, ".")
}

func decodeExpr(node *toml.Node) (*value, error) {
	switch node.Kind {
	case toml.String:
		return &value{kind: kindString, str: string(node.Data)}, nil
	case toml.Integer:
		n, err := strconv.ParseInt(strings.ReplaceAll(string(node.Data), "_", ""), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("manifest: invalid integer %q: %w", node.Data, err)
		}
		return &value{kind: kindInt, i64: n}, nil
	case toml.Float:
		f, err := strconv.ParseFloat(strings.ReplaceAll(string(node.Data), "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("manifest: invalid float %q: %w", node.Data, err)
		}
		return &value{kind: kindFloat, f64: f}, nil
	case toml.Bool:
		return &value{kind: kindBool, b: string(node.Data) == "true"}, nil
	case toml.Array:
		v := &value{kind: kindArray}
		elems := node.Children()
		for elems.Next() {
			elem, err := decodeExpr(elems.Node())
			if err != nil {
				return nil, err
			}
			v.array = append(v.array, elem)
		}
		return v, nil
	case toml.InlineTable:
		v := newTableValue()
		elems := node.Children()
		for elems.Next() {
			field := elems.Node()
			keyPath := decodeKeyPath(field.Key())
			fv, err := decodeExpr(field.Value())
			if err != nil {
				return nil, err
			}
			leafTable, err := v.table.getOrCreateTable(keyPath[:len(keyPath)-1])
			if err != nil {
				return nil, err
			}
			leafTable.set(keyPath[len(keyPath)-1], fv)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("manifest: unsupported TOML value kind %v", node.Kind)
	}
}
