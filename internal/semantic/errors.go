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
	"errors"
	"fmt"
)

// ErrInvalidHandle indicates arena misuse: a handle unknown to the arena, or
// one whose stored value doesn't downcast to the requested kind. Surfacing
// this to a caller is always a bug in this package or its caller, never an
// expectable manifest error.
var ErrInvalidHandle = errors.New("invalid item handle")

// ManifestParseError wraps a failure to parse the manifest at Path.
type ManifestParseError struct {
	Path  string
	Cause error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %q: %v", e.Path, e.Cause)
}

func (e *ManifestParseError) Unwrap() error { return e.Cause }

// MissingOrganizationError indicates a top-level ember manifest declared no
// organization.
type MissingOrganizationError struct {
	Path string
}

func (e *MissingOrganizationError) Error() string {
	return fmt.Sprintf("%q has no organization, which is required for a top-level ember", e.Path)
}

// DuplicateScopeError indicates two distinct manifests claim the same scope
// identifier under one organization.
type DuplicateScopeError struct {
	ID           string
	ExistingPath string
	NewPath      string
}

func (e *DuplicateScopeError) Error() string {
	return fmt.Sprintf("attempted to add %q, but a scope already exists at %q for id %q", e.NewPath, e.ExistingPath, e.ID)
}

// ScopeNotFoundError indicates a scope path segment could not be resolved.
type ScopeNotFoundError struct {
	Path string
}

func (e *ScopeNotFoundError) Error() string {
	return fmt.Sprintf("scope not found: %q", e.Path)
}

// ItemNotFoundError indicates a reference of a given kind could not be
// resolved anywhere on the lexical context stack.
type ItemNotFoundError struct {
	Kind string
	Path string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("failed to find %s %q", e.Kind, e.Path)
}

// ConceptCycleError indicates a cycle was found while resolving a concept's
// `extends` chain.
type ConceptCycleError struct {
	Path string
}

func (e *ConceptCycleError) Error() string {
	return fmt.Sprintf("cycle detected in concept extends chain at %q", e.Path)
}

// ValueTypeMismatchError indicates a literal could not be coerced to its
// target type.
type ValueTypeMismatchError struct {
	ExpectedType string
	Literal      any
}

func (e *ValueTypeMismatchError) Error() string {
	return fmt.Sprintf("value %#v does not match expected type %s", e.Literal, e.ExpectedType)
}
