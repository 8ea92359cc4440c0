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

import (
	"strings"

	"github.com/asgardeo/thunder-go/flow/constants"
)

// Component represents a node in the UI component tree returned by a flow step.
// Components are immutable value trees; a new response always yields a new tree.
type Component struct {
	ID          string                  `json:"id,omitempty"`
	Ref         string                  `json:"ref,omitempty"`
	Type        constants.ComponentType `json:"type"`
	Variant     constants.Variant       `json:"variant,omitempty"`
	EventType   constants.EventType     `json:"eventType,omitempty"`
	Label       string                  `json:"label,omitempty"`
	Placeholder string                  `json:"placeholder,omitempty"`
	Text        string                  `json:"text,omitempty"`
	Title       string                  `json:"title,omitempty"`
	Subtitle    string                  `json:"subtitle,omitempty"`
	Required    bool                    `json:"required,omitempty"`
	ImageSrc    string                  `json:"imageSrc,omitempty"`
	ActionID    string                  `json:"actionId,omitempty"`
	Action      string                  `json:"action,omitempty"`
	Options     []Option                `json:"options,omitempty"`
	Components  []Component             `json:"components,omitempty"`
}

// Option represents a selectable option of a select component.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Key returns the identifier used to read and write form values for this
// component. Generation-2 responses key fields by ref; generation-1 and
// synthetic components key by id. The key stays stable across steps for
// fields the server echoes back.
func (c *Component) Key() string {
	if c.Ref != "" {
		return c.Ref
	}
	return c.ID
}

// IsInput reports whether the component collects a form value.
func (c *Component) IsInput() bool {
	switch c.Type {
	case constants.ComponentTypeTextInput, constants.ComponentTypePasswordInput,
		constants.ComponentTypeEmailInput, constants.ComponentTypeCheckbox,
		constants.ComponentTypeSelect:
		return true
	default:
		return false
	}
}

// IsContainer reports whether the component holds child components.
func (c *Component) IsContainer() bool {
	return c.Type == constants.ComponentTypeBlock || c.Type == constants.ComponentTypeForm
}

// IsHeading reports whether the component is a heading-variant text node.
func (c *Component) IsHeading() bool {
	return c.Type == constants.ComponentTypeText &&
		strings.HasPrefix(string(c.Variant), constants.HeadingVariantPrefix)
}

// ActionDiscriminator returns the action identifier the component carries,
// regardless of generation naming.
func (c *Component) ActionDiscriminator() string {
	if c.ActionID != "" {
		return c.ActionID
	}
	return c.Action
}

// IsValidationExempt reports whether triggering this component must skip
// client-side form validation. Social and trigger/navigation actions fire
// immediately without validated form data.
func (c *Component) IsValidationExempt() bool {
	if c.Variant == constants.VariantSocial {
		return true
	}
	switch c.EventType {
	case constants.EventTypeTrigger, constants.EventTypeCancel, constants.EventTypeBack:
		return true
	default:
		return false
	}
}

// CollectInputs returns all input components in the tree in depth-first order.
func CollectInputs(components []Component) []Component {
	var inputs []Component
	for i := range components {
		c := &components[i]
		if c.IsInput() {
			inputs = append(inputs, *c)
		}
		if len(c.Components) > 0 {
			inputs = append(inputs, CollectInputs(c.Components)...)
		}
	}
	return inputs
}
