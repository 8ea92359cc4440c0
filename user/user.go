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

// Package user provides a thin client for the authenticated user's profile API.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asgardeo/thunder-go/config"
	syshttp "github.com/asgardeo/thunder-go/internal/system/http"
	"github.com/asgardeo/thunder-go/internal/system/log"
	"github.com/asgardeo/thunder-go/serviceerror"
)

const loggerComponentName = "UserService"

const profilePath = "/users/me"

// Profile is the attribute map of the authenticated user.
type Profile map[string]any

// ServiceInterface defines the user profile operations.
type ServiceInterface interface {
	GetProfile(ctx context.Context) (Profile, *serviceerror.ServiceError)
	UpdateProfile(ctx context.Context, attributes Profile) (Profile, *serviceerror.ServiceError)
}

type service struct {
	cfg    *config.ClientConfig
	client syshttp.HTTPClientInterface
	logger *log.Logger
}

// NewService creates a user profile service for the given configuration.
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

// GetProfile retrieves the authenticated user's profile.
func (s *service) GetProfile(ctx context.Context) (Profile, *serviceerror.ServiceError) {
	return s.send(ctx, http.MethodGet, nil, "retrieve")
}

// UpdateProfile replaces the authenticated user's profile attributes.
func (s *service) UpdateProfile(ctx context.Context, attributes Profile) (
	Profile, *serviceerror.ServiceError) {
	if len(attributes) == 0 {
		return nil, &ErrorEmptyProfileUpdate
	}
	return s.send(ctx, http.MethodPut, attributes, "update")
}

func (s *service) send(ctx context.Context, method string, body any, operation string) (
	Profile, *serviceerror.ServiceError) {
	req, err := syshttp.BuildJSONRequest(ctx, method, s.cfg.EndpointURL(profilePath), body, s.cfg.Headers)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s user profile: %s", operation, err.Error()))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s user profile: %s", operation, err.Error()))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s user profile: %s", operation, err.Error()))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		svcErr := serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s user profile: %s", operation, string(respBody)))
		svcErr.StatusCode = resp.StatusCode
		return nil, svcErr
	}

	var profile Profile
	if err := json.Unmarshal(respBody, &profile); err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s user profile: %s", operation, err.Error()))
	}

	return profile, nil
}
