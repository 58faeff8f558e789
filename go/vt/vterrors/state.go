/*
Copyright 2021 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vterrors

// State is error state, used to distinguish error conditions that callers
// may want to branch on from the (comparatively unstructured) message text.
type State int

// All the error states produced by this module.
const (
	Undefined State = iota

	// NilDate is raised when a parse is attempted against a nil date value.
	NilDate
	// UnknownTimeZone is raised when a timezone name or offset could not be resolved.
	UnknownTimeZone
	// InvalidArgument covers malformed caller input that isn't otherwise classified.
	InvalidArgument

	// No state should be added below NumOfStates.
	NumOfStates
)

// ErrorWithState is implemented by errors that carry a State.
type ErrorWithState interface {
	ErrorState() State
}

// ErrorWithCode is implemented by errors that carry a Code.
type ErrorWithCode interface {
	ErrorCode() Code
}
