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
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/yVieta/Ambient/internal/fileprovider"
)

func TestPrinterGoldenOutputForSimpleEmber(t *testing.T) {
	fp := fileprovider.NewMemProviderFromTxtar([]byte(`
-- ambient.toml --
[ember]
id = "core"
organization = "ambient"

[components."tag"]
type = "bool"
description = "Marker component"
`))
	s := NewSemantic()
	_, err := s.AddFile("ambient.toml", fp, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(s.Resolve()))

	out := printToString(t, s)
	want := strings.Join(append(append([]string(nil), ambientRootLines...),
		`component:ambient/core/tag`,
		`  name: "tag"`,
		`  description: "Marker component"`,
		`  type: type:bool [A]`,
		`  attributes:`,
		`  default: none`,
		``,
	), "\n")
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("printer output mismatch (-want +got):\n%s", diff)
	}
}
