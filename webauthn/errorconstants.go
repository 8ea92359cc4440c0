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

package webauthn

import "github.com/asgardeo/thunder-go/serviceerror"

// Client error structs

// ErrorMissingUsername is returned when a ceremony start lacks a username.
var ErrorMissingUsername = serviceerror.ServiceError{
	Code:             "WAN-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "A username is required to start the ceremony",
}

// ErrorMissingCeremonyID is returned when a ceremony finish lacks a ceremony id.
var ErrorMissingCeremonyID = serviceerror.ServiceError{
	Code:             "WAN-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "A ceremony id is required to finish the ceremony",
}

// ErrorMissingCredential is returned when a ceremony finish lacks the authenticator response.
var ErrorMissingCredential = serviceerror.ServiceError{
	Code:             "WAN-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "An authenticator response is required to finish the ceremony",
}

// ErrorCeremonyExpired maps the backend's expired-ceremony rejection.
var ErrorCeremonyExpired = serviceerror.ServiceError{
	Code:             "WAN-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            "Ceremony expired",
	ErrorDescription: "The ceremony has expired; start a new one",
}

// ErrorCeremonyNotFound maps the backend's unknown-ceremony rejection.
var ErrorCeremonyNotFound = serviceerror.ServiceError{
	Code:             "WAN-60005",
	Type:             serviceerror.ClientErrorType,
	Error:            "Ceremony not found",
	ErrorDescription: "No ceremony exists for the given id",
}

// ErrorCredentialExists maps the backend's duplicate-credential rejection.
var ErrorCredentialExists = serviceerror.ServiceError{
	Code:             "WAN-60006",
	Type:             serviceerror.ClientErrorType,
	Error:            "Credential already registered",
	ErrorDescription: "A credential is already registered for this authenticator",
}

// ErrorCredentialNotFound maps the backend's unknown-credential rejection.
var ErrorCredentialNotFound = serviceerror.ServiceError{
	Code:             "WAN-60007",
	Type:             serviceerror.ClientErrorType,
	Error:            "Credential not found",
	ErrorDescription: "No registered credential matches the assertion",
}

// ErrorVerificationFailed maps the backend's signature or origin verification failure.
var ErrorVerificationFailed = serviceerror.ServiceError{
	Code:             "WAN-60008",
	Type:             serviceerror.ClientErrorType,
	Error:            "Verification failed",
	ErrorDescription: "The authenticator response failed verification",
}

// Server error structs

// ErrorCeremonyFailed is the generic ceremony failure for unmapped backend errors.
var ErrorCeremonyFailed = serviceerror.ServiceError{
	Code:             "WAN-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Ceremony failed",
	ErrorDescription: "The passkey ceremony could not be completed",
}

// ceremonyErrorCodes maps backend ceremony error codes to service errors.
var ceremonyErrorCodes = map[string]serviceerror.ServiceError{
	"WSE-60001": ErrorCeremonyExpired,
	"WSE-60002": ErrorCeremonyNotFound,
	"WSE-60003": ErrorCredentialExists,
	"WSE-60004": ErrorCredentialNotFound,
	"WSE-60005": ErrorVerificationFailed,
}
