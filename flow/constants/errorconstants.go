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

package constants

import "github.com/asgardeo/thunder-go/serviceerror"

// Client error structs

// ErrorFlowNotActive is returned when a submission is attempted without an
// active incomplete flow.
var ErrorFlowNotActive = serviceerror.ServiceError{
	Code:             "FOR-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid flow state",
	ErrorDescription: "No active flow to submit against; initialize a flow first",
}

// ErrorFlowTerminated is returned when a submission is attempted against a
// flow that has already reached a terminal state.
var ErrorFlowTerminated = serviceerror.ServiceError{
	Code:             "FOR-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid flow state",
	ErrorDescription: "The flow has completed; start a new flow to retry",
}

// ErrorMissingRedirectURL is returned for a redirection response without a redirect URL.
var ErrorMissingRedirectURL = serviceerror.ServiceError{
	Code:             "FOR-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid flow response",
	ErrorDescription: "A redirection response did not carry a redirect URL",
}

// Server error structs

// ErrorPopupUnavailable is returned when the platform cannot open a popup window.
var ErrorPopupUnavailable = serviceerror.ServiceError{
	Code:             "FOR-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to open the external sign-in window",
}

// ErrorTranslatorInit is returned when the translation bundles cannot be loaded.
var ErrorTranslatorInit = serviceerror.ServiceError{
	Code:             "FOR-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to load the translation bundles",
}
