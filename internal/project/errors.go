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

import "errors"

// ErrInvalidIdentifier is wrapped by every identifier-validation failure so
// callers can match it with errors.Is regardless of the offending string.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrInvalidPath is wrapped by every malformed qualified-path failure.
var ErrInvalidPath = errors.New("invalid item path")
