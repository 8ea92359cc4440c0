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

// Package webauthn provides a thin client for the passkey ceremony APIs. Each
// ceremony is two sequential calls: a start call returning the challenge
// options and a finish call submitting the authenticator response.
package webauthn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asgardeo/thunder-go/apierror"
	"github.com/asgardeo/thunder-go/config"
	syshttp "github.com/asgardeo/thunder-go/internal/system/http"
	"github.com/asgardeo/thunder-go/internal/system/log"
	"github.com/asgardeo/thunder-go/serviceerror"
)

const loggerComponentName = "WebAuthnService"

const (
	registerStartPath      = "/webauthn/register/start"
	registerFinishPath     = "/webauthn/register/finish"
	authenticateStartPath  = "/webauthn/authenticate/start"
	authenticateFinishPath = "/webauthn/authenticate/finish"
)

// ChallengeOptions carries the backend's ceremony challenge. The options
// payload is the credential creation or request options, passed through
// opaque for the authenticator layer.
type ChallengeOptions struct {
	CeremonyID string          `json:"ceremonyId"`
	Options    json.RawMessage `json:"options"`
}

// CeremonyResult is the outcome of a finished ceremony.
type CeremonyResult struct {
	CredentialID string `json:"credentialId,omitempty"`
	UserID       string `json:"userId,omitempty"`
	Assertion    string `json:"assertion,omitempty"`
}

// ServiceInterface defines the passkey ceremony operations.
type ServiceInterface interface {
	StartRegistration(ctx context.Context, username string) (*ChallengeOptions, *serviceerror.ServiceError)
	FinishRegistration(ctx context.Context, ceremonyID string,
		credential json.RawMessage) (*CeremonyResult, *serviceerror.ServiceError)
	StartAuthentication(ctx context.Context, username string) (*ChallengeOptions, *serviceerror.ServiceError)
	FinishAuthentication(ctx context.Context, ceremonyID string,
		credential json.RawMessage) (*CeremonyResult, *serviceerror.ServiceError)
}

type service struct {
	cfg    *config.ClientConfig
	client syshttp.HTTPClientInterface
	logger *log.Logger
}

// NewService creates a webauthn service for the given configuration.
func NewService(cfg *config.ClientConfig, client syshttp.HTTPClientInterface) ServiceInterface {
	if client == nil {
		client = syshttp.GetHTTPClient()
	}
	return &service{
		cfg:    cfg,
		client: client,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// StartRegistration begins a passkey registration ceremony for the user.
func (s *service) StartRegistration(ctx context.Context, username string) (
	*ChallengeOptions, *serviceerror.ServiceError) {
	if username == "" {
		return nil, &ErrorMissingUsername
	}

	var challenge ChallengeOptions
	if svcErr := s.send(ctx, registerStartPath,
		map[string]string{"username": username}, &challenge); svcErr != nil {
		return nil, svcErr
	}
	return &challenge, nil
}

// FinishRegistration completes a registration ceremony with the authenticator response.
func (s *service) FinishRegistration(ctx context.Context, ceremonyID string,
	credential json.RawMessage) (*CeremonyResult, *serviceerror.ServiceError) {
	return s.finish(ctx, registerFinishPath, ceremonyID, credential)
}

// StartAuthentication begins a passkey authentication ceremony for the user.
func (s *service) StartAuthentication(ctx context.Context, username string) (
	*ChallengeOptions, *serviceerror.ServiceError) {
	if username == "" {
		return nil, &ErrorMissingUsername
	}

	var challenge ChallengeOptions
	if svcErr := s.send(ctx, authenticateStartPath,
		map[string]string{"username": username}, &challenge); svcErr != nil {
		return nil, svcErr
	}
	return &challenge, nil
}

// FinishAuthentication completes an authentication ceremony with the assertion response.
func (s *service) FinishAuthentication(ctx context.Context, ceremonyID string,
	credential json.RawMessage) (*CeremonyResult, *serviceerror.ServiceError) {
	return s.finish(ctx, authenticateFinishPath, ceremonyID, credential)
}

func (s *service) finish(ctx context.Context, path, ceremonyID string,
	credential json.RawMessage) (*CeremonyResult, *serviceerror.ServiceError) {
	if ceremonyID == "" {
		return nil, &ErrorMissingCeremonyID
	}
	if len(credential) == 0 {
		return nil, &ErrorMissingCredential
	}

	payload := map[string]json.RawMessage{
		"ceremonyId": json.RawMessage(fmt.Sprintf("%q", ceremonyID)),
		"credential": credential,
	}

	var result CeremonyResult
	if svcErr := s.send(ctx, path, payload, &result); svcErr != nil {
		return nil, svcErr
	}
	return &result, nil
}

// send posts one ceremony call and decodes the result. Backend rejections are
// mapped through the ceremony error-code table; unrecognized codes fall back
// to a generic ceremony failure carrying the backend description.
func (s *service) send(ctx context.Context, path string, body, out any) *serviceerror.ServiceError {
	req, err := syshttp.BuildJSONRequest(ctx, http.MethodPost, s.cfg.EndpointURL(path),
		body, s.cfg.Headers)
	if err != nil {
		return serviceerror.CustomServiceError(ErrorCeremonyFailed, err.Error())
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return serviceerror.CustomServiceError(ErrorCeremonyFailed, err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return serviceerror.CustomServiceError(ErrorCeremonyFailed, err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return s.mapCeremonyError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return serviceerror.CustomServiceError(ErrorCeremonyFailed, err.Error())
	}
	return nil
}

// mapCeremonyError translates a backend error response into a service error
// using the ceremony code table.
func (s *service) mapCeremonyError(statusCode int, body []byte) *serviceerror.ServiceError {
	var apiErr apierror.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		if mapped, ok := ceremonyErrorCodes[apiErr.Code]; ok {
			svcErr := mapped
			if apiErr.Description != "" {
				svcErr.ErrorDescription = apiErr.Description
			}
			svcErr.StatusCode = statusCode
			return &svcErr
		}

		description := apiErr.Description
		if description == "" {
			description = apiErr.Message
		}
		svcErr := serviceerror.CustomServiceError(ErrorCeremonyFailed, description)
		svcErr.StatusCode = statusCode
		return svcErr
	}

	svcErr := serviceerror.CustomServiceError(ErrorCeremonyFailed, string(body))
	svcErr.StatusCode = statusCode
	return svcErr
}
