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

package organization

import "github.com/asgardeo/thunder-go/serviceerror"

// Client error structs

// ErrorMissingOrganizationID is returned when an operation lacks an organization id.
var ErrorMissingOrganizationID = serviceerror.ServiceError{
	Code:             "ORG-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "An organization id is required",
}

// ErrorMissingOrganizationName is returned when a create or update lacks a name.
var ErrorMissingOrganizationName = serviceerror.ServiceError{
	Code:             "ORG-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "An organization name is required",
}

// Server error structs

// ErrorOperationFailed is returned when the backend rejects an organization operation.
var ErrorOperationFailed = serviceerror.ServiceError{
	Code:             "ORG-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Organization operation failed",
	ErrorDescription: "The backend rejected the organization operation",
}
