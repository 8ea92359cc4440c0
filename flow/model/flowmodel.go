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

// Package model defines the data structures exchanged with the flow execution APIs.
package model

import (
	"github.com/asgardeo/thunder-go/flow/constants"
)

// FlowRequest represents the flow execution API request body. ActionID is the
// generation-1 action discriminator; Action is its generation-2 counterpart.
// Only one of the two is populated for a given request.
type FlowRequest struct {
	ApplicationID string            `json:"applicationId,omitempty"`
	FlowType      string            `json:"flowType,omitempty"`
	FlowID        string            `json:"flowId,omitempty"`
	ActionID      string            `json:"actionId,omitempty"`
	Action        string            `json:"action,omitempty"`
	Inputs        map[string]string `json:"inputs,omitempty"`
}

// FlowResponse represents the flow execution API response body across both
// backend generations. Generation-1 error responses carry Code together with
// Message or Description; generation-2 errors carry FlowStatus ERROR with a
// FailureReason.
type FlowResponse struct {
	FlowID        string                 `json:"flowId"`
	StepID        string                 `json:"stepId,omitempty"`
	FlowStatus    constants.FlowStatus   `json:"flowStatus,omitempty"`
	Type          constants.FlowStepType `json:"type,omitempty"`
	Data          FlowData               `json:"data,omitempty"`
	Assertion     string                 `json:"assertion,omitempty"`
	RedirectURL   string                 `json:"redirectUrl,omitempty"`
	FailureReason string                 `json:"failureReason,omitempty"`
	Code          string                 `json:"code,omitempty"`
	Message       string                 `json:"message,omitempty"`
	Description   string                 `json:"description,omitempty"`
}

// FlowData holds the data returned by a flow execution step. Components is the
// modern tree shape, Meta.Components the generation-2 "meta" shape, and
// Inputs/Actions the legacy flat shape.
type FlowData struct {
	Components     []Component       `json:"components,omitempty"`
	Meta           *FlowMeta         `json:"meta,omitempty"`
	Inputs         []InputData       `json:"inputs,omitempty"`
	Actions        []Action          `json:"actions,omitempty"`
	RedirectURL    string            `json:"redirectURL,omitempty"`
	AdditionalData map[string]string `json:"additionalData,omitempty"`
}

// FlowMeta carries the component tree on generation-2 "meta" shaped responses.
type FlowMeta struct {
	Components []Component `json:"components,omitempty"`
}

// InputData represents a legacy flat input descriptor.
type InputData struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Action represents a legacy flat action descriptor.
type Action struct {
	Type constants.ActionType `json:"type"`
	ID   string               `json:"id"`
}
