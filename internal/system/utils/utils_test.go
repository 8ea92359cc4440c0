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
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsTestSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (ts *UtilsTestSuite) TestSplitCamelCase() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "SimpleCamelCase", input: "firstName", expected: "First Name"},
		{name: "SingleWord", input: "username", expected: "Username"},
		{name: "MultipleWords", input: "confirmNewPassword", expected: "Confirm New Password"},
		{name: "AlreadyCapitalized", input: "Email", expected: "Email"},
		{name: "MultibyteUppercaseRun", input: "ÀBc", expected: "ÀBc"},
		{name: "MultibyteBoundary", input: "nomÉcran", expected: "Nom Écran"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			ts.Equal(tc.expected, SplitCamelCase(tc.input))
		})
	}
}

func (ts *UtilsTestSuite) TestFormatIdentifier() {
	ts.Equal("Resend otp", FormatIdentifier("resend_otp"))
	ts.Equal("Google auth", FormatIdentifier("google_auth"))
	ts.Equal("", FormatIdentifier(""))
}

func (ts *UtilsTestSuite) TestFilterEmptyValues() {
	input := map[string]string{
		"username": "jane",
		"password": "",
		"otp":      "123456",
	}

	filtered := FilterEmptyValues(input)
	ts.Len(filtered, 2)
	ts.Equal("jane", filtered["username"])
	ts.NotContains(filtered, "password")
}

func (ts *UtilsTestSuite) TestMergeStringMaps() {
	dst := map[string]string{"a": "1", "b": "2"}
	merged := MergeStringMaps(dst, map[string]string{"b": "3", "c": "4"})

	ts.Equal("1", merged["a"])
	ts.Equal("3", merged["b"])
	ts.Equal("4", merged["c"])

	fromNil := MergeStringMaps(nil, map[string]string{"x": "1"})
	ts.Equal("1", fromNil["x"])
}

func (ts *UtilsTestSuite) TestGenerateComponentID() {
	id := GenerateComponentID("input_")
	ts.True(strings.HasPrefix(id, "input_"))
	ts.Len(id, len("input_")+4)
}

func (ts *UtilsTestSuite) TestGetOrigin() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "FullURL", input: "https://app.example/home?next=/x", expected: "https://app.example"},
		{name: "WithPort", input: "http://127.0.0.1:8978/callback", expected: "http://127.0.0.1:8978"},
		{name: "Relative", input: "/callback", expected: ""},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			ts.Equal(tc.expected, GetOrigin(tc.input))
		})
	}
}
