/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

// FormState holds the ephemeral per-step form data keyed by component key.
// It is rebuilt whenever a new component tree replaces the current one; values
// for fields no longer present in the new tree are discarded.
type FormState struct {
	Values  map[string]string `json:"values"`
	Touched map[string]bool   `json:"touched"`
	Errors  map[string]string `json:"errors"`
}

// NewFormState builds a fresh form state for the given component tree,
// carrying over values only for fields that still exist in the tree.
func NewFormState(components []Component, previous *FormState) *FormState {
	state := &FormState{
		Values:  make(map[string]string),
		Touched: make(map[string]bool),
		Errors:  make(map[string]string),
	}

	for _, input := range CollectInputs(components) {
		key := input.Key()
		if key == "" {
			continue
		}
		state.Values[key] = ""
		if previous != nil {
			if v, ok := previous.Values[key]; ok {
				state.Values[key] = v
			}
			if previous.Touched[key] {
				state.Touched[key] = true
			}
		}
	}

	return state
}

// IsValid reports whether the form has no validation errors.
func (f *FormState) IsValid() bool {
	return len(f.Errors) == 0
}
