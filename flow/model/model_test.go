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
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-go/flow/constants"
)

type ModelTestSuite struct {
	suite.Suite
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (ts *ModelTestSuite) TestComponentKeyPrefersRef() {
	withRef := Component{ID: "input_a1b2", Ref: "username"}
	ts.Equal("username", withRef.Key())

	withoutRef := Component{ID: "input_a1b2"}
	ts.Equal("input_a1b2", withoutRef.Key())
}

func (ts *ModelTestSuite) TestIsHeading() {
	testCases := []struct {
		name      string
		component Component
		expected  bool
	}{
		{
			name:      "HeadingText",
			component: Component{Type: constants.ComponentTypeText, Variant: constants.VariantHeading1},
			expected:  true,
		},
		{
			name:      "BodyText",
			component: Component{Type: constants.ComponentTypeText, Variant: constants.VariantBody},
			expected:  false,
		},
		{
			name:      "HeadingVariantOnNonText",
			component: Component{Type: constants.ComponentTypeAction, Variant: constants.VariantHeading1},
			expected:  false,
		},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			ts.Equal(tc.expected, tc.component.IsHeading())
		})
	}
}

func (ts *ModelTestSuite) TestIsValidationExempt() {
	testCases := []struct {
		name      string
		component Component
		expected  bool
	}{
		{
			name:      "SocialVariant",
			component: Component{Variant: constants.VariantSocial},
			expected:  true,
		},
		{
			name:      "TriggerEvent",
			component: Component{EventType: constants.EventTypeTrigger},
			expected:  true,
		},
		{
			name:      "BackEvent",
			component: Component{EventType: constants.EventTypeBack},
			expected:  true,
		},
		{
			name:      "SubmitButton",
			component: Component{EventType: constants.EventTypeSubmit},
			expected:  false,
		},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			ts.Equal(tc.expected, tc.component.IsValidationExempt())
		})
	}
}

func (ts *ModelTestSuite) TestActionDiscriminator() {
	ts.Equal("google_auth", (&Component{ActionID: "google_auth", Action: "ignored"}).ActionDiscriminator())
	ts.Equal("google_auth", (&Component{Action: "google_auth"}).ActionDiscriminator())
	ts.Equal("", (&Component{}).ActionDiscriminator())
}

func (ts *ModelTestSuite) TestCollectInputsDepthFirst() {
	tree := []Component{
		{
			Type: constants.ComponentTypeForm,
			Components: []Component{
				{Ref: "username", Type: constants.ComponentTypeTextInput},
				{
					Type: constants.ComponentTypeBlock,
					Components: []Component{
						{Ref: "password", Type: constants.ComponentTypePasswordInput},
					},
				},
			},
		},
		{Ref: "remember", Type: constants.ComponentTypeCheckbox},
	}

	inputs := CollectInputs(tree)
	ts.Require().Len(inputs, 3)
	ts.Equal("username", inputs[0].Ref)
	ts.Equal("password", inputs[1].Ref)
	ts.Equal("remember", inputs[2].Ref)
}

func (ts *ModelTestSuite) TestNewFormStateCarriesSurvivingValues() {
	previousTree := []Component{
		{Ref: "username", Type: constants.ComponentTypeTextInput},
		{Ref: "password", Type: constants.ComponentTypePasswordInput},
	}
	previous := NewFormState(previousTree, nil)
	previous.Values["username"] = "jane"
	previous.Values["password"] = "secret"
	previous.Touched["username"] = true

	nextTree := []Component{
		{Ref: "username", Type: constants.ComponentTypeTextInput},
		{Ref: "otp", Type: constants.ComponentTypeTextInput},
	}
	next := NewFormState(nextTree, previous)

	ts.Equal("jane", next.Values["username"])
	ts.True(next.Touched["username"])
	ts.Equal("", next.Values["otp"])
	ts.NotContains(next.Values, "password")
}

func (ts *ModelTestSuite) TestFormStateIsValid() {
	form := NewFormState(nil, nil)
	ts.True(form.IsValid())

	form.Errors["username"] = "This field is required"
	ts.False(form.IsValid())
}
