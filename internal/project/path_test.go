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

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseItemPath(t *testing.T) {
	p, err := ParseItemPath("sub/scope/foo")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(p), 3))
	qt.Assert(t, qt.Equals(p.String(), "sub/scope/foo"))

	scope, item := p.ScopeAndItem()
	qt.Assert(t, qt.Equals(len(scope), 2))
	qt.Assert(t, qt.Equals(item, Identifier("foo")))
}

func TestParseItemPathDotSeparator(t *testing.T) {
	p, err := ParseItemPath("sub.scope.foo")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p.String(), "sub/scope/foo"))
}

func TestParseItemPathSingleSegment(t *testing.T) {
	p, err := ParseItemPath("health")
	qt.Assert(t, qt.IsNil(err))
	scope, item := p.ScopeAndItem()
	qt.Assert(t, qt.Equals(len(scope), 0))
	qt.Assert(t, qt.Equals(item, Identifier("health")))
}

func TestParseItemPathRejectsEmpty(t *testing.T) {
	_, err := ParseItemPath("")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseItemPathRejectsInvalidSegment(t *testing.T) {
	_, err := ParseItemPath("sub/Bad_Segment/foo")
	qt.Assert(t, qt.IsNotNil(err))
}
