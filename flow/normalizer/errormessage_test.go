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

package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-go/flow/model"
)

type ErrorMessageTestSuite struct {
	suite.Suite
}

func TestErrorMessageTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorMessageTestSuite))
}

func testTranslate(key string) string {
	if key == GenericErrorKey {
		return "Something went wrong. Please try again."
	}
	return key
}

func (ts *ErrorMessageTestSuite) TestFieldPrecedence() {
	testCases := []struct {
		name     string
		resp     *model.FlowResponse
		expected string
	}{
		{
			name: "FailureReasonWinsOverEverything",
			resp: &model.FlowResponse{
				FailureReason: "Invalid credentials",
				Description:   "The password is incorrect",
				Message:       "Authentication failed",
			},
			expected: "Invalid credentials",
		},
		{
			name: "DescriptionWinsOverMessage",
			resp: &model.FlowResponse{
				Description: "The password is incorrect",
				Message:     "Authentication failed",
			},
			expected: "The password is incorrect",
		},
		{
			name: "MessageWhenAlone",
			resp: &model.FlowResponse{
				Message: "Authentication failed",
			},
			expected: "Authentication failed",
		},
		{
			name:     "EmptyResponseFallsBackToGeneric",
			resp:     &model.FlowResponse{},
			expected: "Something went wrong. Please try again.",
		},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			ts.Equal(tc.expected, ExtractErrorMessage(tc.resp, testTranslate))
		})
	}
}

func (ts *ErrorMessageTestSuite) TestJSONWrappedErrorMessage() {
	err := errors.New(`{"failureReason": "Invalid credentials", "message": "Authentication failed"}`)
	ts.Equal("Invalid credentials", ExtractErrorMessage(err, testTranslate))
}

func (ts *ErrorMessageTestSuite) TestJSONWithoutKnownFieldsKeepsRawMessage() {
	err := errors.New(`{"detail": "unmapped"}`)
	ts.Equal(`{"detail": "unmapped"}`, ExtractErrorMessage(err, testTranslate))
}

func (ts *ErrorMessageTestSuite) TestPlainErrorMessage() {
	err := errors.New("connection refused")
	ts.Equal("connection refused", ExtractErrorMessage(err, testTranslate))
}

func (ts *ErrorMessageTestSuite) TestFlowErrorUnwrapsResponse() {
	flowErr := &FlowError{
		Response: &model.FlowResponse{FailureReason: "Account locked"},
		Message:  "ignored when the response carries a reason",
	}
	ts.Equal("Account locked", ExtractErrorMessage(flowErr, testTranslate))
}

func (ts *ErrorMessageTestSuite) TestNilFallsBackToGeneric() {
	ts.Equal("Something went wrong. Please try again.", ExtractErrorMessage(nil, testTranslate))
}

func (ts *ErrorMessageTestSuite) TestNilTranslateFallsBackToKey() {
	ts.Equal(GenericErrorKey, ExtractErrorMessage(nil, nil))
}
