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

package utils

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/flow/model"
)

type HeadingsTestSuite struct {
	suite.Suite
}

func TestHeadingsTestSuite(t *testing.T) {
	suite.Run(t, new(HeadingsTestSuite))
}

func heading(id, text string) model.Component {
	return model.Component{
		ID:      id,
		Type:    constants.ComponentTypeText,
		Variant: constants.VariantHeading1,
		Text:    text,
	}
}

func (ts *HeadingsTestSuite) TestExtractsTitleAndSubtitle() {
	components := []model.Component{
		heading("h1", "Sign in"),
		heading("h2", "Welcome back"),
		{ID: "input_1", Type: constants.ComponentTypeTextInput},
	}

	result := ExtractHeadings(components, "", "", "", "")

	ts.Equal("Sign in", result.Title)
	ts.Equal("Welcome back", result.Subtitle)
	ts.Require().Len(result.Components, 1)
	ts.Equal("input_1", result.Components[0].ID)
}

// TestThirdHeadingStaysInTree checks the extraction bound: with three heading
// nodes only the first two are pulled out, and the third remains exactly where
// it was.
func (ts *HeadingsTestSuite) TestThirdHeadingStaysInTree() {
	components := []model.Component{
		heading("h1", "Sign in"),
		heading("h2", "Welcome back"),
		heading("h3", "Third heading"),
	}

	result := ExtractHeadings(components, "", "", "", "")

	ts.Equal("Sign in", result.Title)
	ts.Equal("Welcome back", result.Subtitle)
	ts.Require().Len(result.Components, 1)
	ts.Equal("h3", result.Components[0].ID)
	ts.Equal("Third heading", result.Components[0].Text)
}

func (ts *HeadingsTestSuite) TestNestedHeadingsAndContainerPruning() {
	components := []model.Component{
		{
			ID:   "block_1",
			Type: constants.ComponentTypeBlock,
			Components: []model.Component{
				heading("h1", "Sign in"),
			},
		},
		{
			ID:   "block_2",
			Type: constants.ComponentTypeBlock,
			Components: []model.Component{
				heading("h2", "Welcome back"),
				{ID: "input_1", Type: constants.ComponentTypeTextInput},
			},
		},
	}

	result := ExtractHeadings(components, "", "", "", "")

	ts.Equal("Sign in", result.Title)
	ts.Equal("Welcome back", result.Subtitle)

	// block_1 was emptied and pruned; block_2 keeps its surviving child.
	ts.Require().Len(result.Components, 1)
	ts.Equal("block_2", result.Components[0].ID)
	ts.Require().Len(result.Components[0].Components, 1)
	ts.Equal("input_1", result.Components[0].Components[0].ID)
}

func (ts *HeadingsTestSuite) TestPrecedence() {
	components := []model.Component{
		heading("h1", "Extracted title"),
	}

	testCases := []struct {
		name             string
		titleOverride    string
		defaultTitle     string
		subtitleDefault  string
		expectedTitle    string
		expectedSubtitle string
	}{
		{
			name:          "OverrideWinsOverExtracted",
			titleOverride: "Override title",
			defaultTitle:  "Default title",
			expectedTitle: "Override title",
		},
		{
			name:          "ExtractedWinsOverDefault",
			defaultTitle:  "Default title",
			expectedTitle: "Extracted title",
		},
		{
			name:             "DefaultWhenNothingExtracted",
			subtitleDefault:  "Default subtitle",
			expectedTitle:    "Extracted title",
			expectedSubtitle: "Default subtitle",
		},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			result := ExtractHeadings(components, tc.titleOverride, "", tc.defaultTitle, tc.subtitleDefault)
			ts.Equal(tc.expectedTitle, result.Title)
			ts.Equal(tc.expectedSubtitle, result.Subtitle)
		})
	}
}

func (ts *HeadingsTestSuite) TestEmptyTree() {
	result := ExtractHeadings(nil, "", "", "", "")
	ts.Empty(result.Title)
	ts.Empty(result.Subtitle)
	ts.Empty(result.Components)
}

func (ts *HeadingsTestSuite) TestNonHeadingTextSurvives() {
	components := []model.Component{
		{
			ID:      "text_1",
			Type:    constants.ComponentTypeText,
			Variant: constants.VariantBody,
			Text:    "Body copy",
		},
	}

	result := ExtractHeadings(components, "", "", "", "")
	ts.Empty(result.Title)
	ts.Require().Len(result.Components, 1)
	ts.Equal("text_1", result.Components[0].ID)
}
