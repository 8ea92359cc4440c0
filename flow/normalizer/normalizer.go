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

// Package normalizer classifies raw flow responses and converts their payloads
// into a uniform component tree, regardless of backend API generation.
package normalizer

import (
	"github.com/asgardeo/thunder-go/flow/adapter"
	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/flow/model"
	"github.com/asgardeo/thunder-go/i18n"
)

// NormalizedFlow is the uniform result of normalizing one flow response.
type NormalizedFlow struct {
	FlowID     string
	Components []model.Component
}

// FlowError wraps a response classified as a flow failure. The raw response is
// carried untouched so callers can inspect backend-specific error fields.
type FlowError struct {
	Response *model.FlowResponse
	Message  string
}

// Error returns the extracted failure message.
func (e *FlowError) Error() string {
	return e.Message
}

// Normalize classifies the response and converts its payload into a component
// tree. Responses already bearing a component tree pass through unchanged, so
// normalizing at multiple layers is a safe no-op.
func Normalize(resp *model.FlowResponse, translator i18n.Translator) (*NormalizedFlow, error) {
	if resp == nil {
		return &NormalizedFlow{}, nil
	}

	if IsErrorResponse(resp) {
		return nil, &FlowError{
			Response: resp,
			Message:  ExtractErrorMessage(resp, translator.T),
		}
	}

	normalized := &NormalizedFlow{FlowID: resp.FlowID}

	switch {
	case len(resp.Data.Components) > 0:
		// Already tree-shaped; pass through untouched.
		normalized.Components = resp.Data.Components
	case resp.Data.Meta != nil && len(resp.Data.Meta.Components) > 0:
		normalized.Components = i18n.ResolveComponentTranslations(resp.Data.Meta.Components, translator.T)
	case len(resp.Data.Inputs) > 0 || len(resp.Data.Actions) > 0:
		normalized.Components = adapter.AdaptLegacy(resp.Data, translator)
	}

	return normalized, nil
}

// IsErrorResponse classifies the response as a flow failure. The generation-2
// shape (flowStatus ERROR with a failureReason) is checked before the
// generation-1 shape (an error code together with a message or description).
func IsErrorResponse(resp *model.FlowResponse) bool {
	if resp == nil {
		return false
	}
	if resp.FlowStatus == constants.FlowStatusError && resp.FailureReason != "" {
		return true
	}
	if resp.Code != "" && (resp.Message != "" || resp.Description != "") {
		return true
	}
	return false
}
