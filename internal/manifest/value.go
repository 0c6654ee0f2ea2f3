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

// Package manifest decodes an "ambient.toml" ember descriptor into
// project.Manifest. It walks the token stream from
// github.com/pelletier/go-toml/v2's low-level parser directly, rather than
// unmarshaling into a map, so that declaration order is preserved; TOML's
// own document order is otherwise lost once values land in a Go map.
package manifest

import "fmt"

type valueKind int

const (
	kindTable valueKind = iota
	kindArray
	kindString
	kindInt
	kindFloat
	kindBool
)

// value is a generic, order-preserving TOML value: either a table (ordered
// key/value pairs), an array, or a scalar.
type value struct {
	kind  valueKind
	table *orderedTable
	array []*value
	str   string
	i64   int64
	f64   float64
	b     bool
}

func newTableValue() *value {
	return &value{kind: kindTable, table: newOrderedTable()}
}

func (v *value) asString() (string, bool) {
	if v == nil || v.kind != kindString {
		return "", false
	}
	return v.str, true
}

func (v *value) asTable() (*orderedTable, bool) {
	if v == nil || v.kind != kindTable {
		return nil, false
	}
	return v.table, true
}

func (v *value) asArray() ([]*value, bool) {
	if v == nil || v.kind != kindArray {
		return nil, false
	}
	return v.array, true
}

// orderedTable is a string-keyed association list that preserves insertion
// order and supports O(1) lookup.
type orderedTable struct {
	keys   []string
	lookup map[string]*value
}

func newOrderedTable() *orderedTable {
	return &orderedTable{lookup: make(map[string]*value)}
}

func (t *orderedTable) get(key string) *value {
	return t.lookup[key]
}

func (t *orderedTable) set(key string, v *value) {
	if _, exists := t.lookup[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.lookup[key] = v
}

// entries returns the table's (key, value) pairs in insertion order.
func (t *orderedTable) entries() []struct {
	Key   string
	Value *value
} {
	out := make([]struct {
		Key   string
		Value *value
	}, len(t.keys))
	for i, k := range t.keys {
		out[i] = struct {
			Key   string
			Value *value
		}{k, t.lookup[k]}
	}
	return out
}

// getOrCreateTable walks/creates nested tables along path, starting from t.
func (t *orderedTable) getOrCreateTable(path []string) (*orderedTable, error) {
	cur := t
	for _, seg := range path {
		existing := cur.get(seg)
		if existing == nil {
			nv := newTableValue()
			cur.set(seg, nv)
			cur = nv.table
			continue
		}
		sub, ok := existing.asTable()
		if !ok {
			return nil, fmt.Errorf("manifest: key %q redeclared as a table", seg)
		}
		cur = sub
	}
	return cur, nil
}
