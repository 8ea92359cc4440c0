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

package config

import "github.com/asgardeo/thunder-go/serviceerror"

// Client error structs

// ErrorMissingBaseURL is returned when no backend base URL is configured.
var ErrorMissingBaseURL = serviceerror.ServiceError{
	Code:             "CFG-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid client configuration",
	ErrorDescription: "A base URL is required to reach the backend APIs",
}

// ErrorMissingApplicationID is returned when no application ID is configured.
var ErrorMissingApplicationID = serviceerror.ServiceError{
	Code:             "CFG-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid client configuration",
	ErrorDescription: "An application ID is required to execute flows",
}

// ErrorInvalidAPIGeneration is returned for an unrecognized API generation value.
var ErrorInvalidAPIGeneration = serviceerror.ServiceError{
	Code:             "CFG-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid client configuration",
	ErrorDescription: "API generation must be 1 or 2",
}
