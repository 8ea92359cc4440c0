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

// Package organization provides a thin client for the organization management API.
package organization

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

const loggerComponentName = "OrganizationService"

const organizationsPath = "/organizations"

// Organization represents an organization managed by the backend.
type Organization struct {
	ID          string `json:"id,omitempty"`
	Handle      string `json:"handle,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parent      string `json:"parent,omitempty"`
}

// ServiceInterface defines the organization management operations.
type ServiceInterface interface {
	Create(ctx context.Context, org Organization) (*Organization, *serviceerror.ServiceError)
	Get(ctx context.Context, id string) (*Organization, *serviceerror.ServiceError)
	Update(ctx context.Context, id string, org Organization) (*Organization, *serviceerror.ServiceError)
}

type service struct {
	cfg    *config.ClientConfig
	client syshttp.HTTPClientInterface
	logger *log.Logger
}

// NewService creates an organization service for the given configuration.
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

// Create creates a new organization.
func (s *service) Create(ctx context.Context, org Organization) (
	*Organization, *serviceerror.ServiceError) {
	if org.Name == "" {
		return nil, &ErrorMissingOrganizationName
	}
	return s.send(ctx, http.MethodPost, s.cfg.EndpointURL(organizationsPath), org, "create")
}

// Get retrieves an organization by its identifier.
func (s *service) Get(ctx context.Context, id string) (*Organization, *serviceerror.ServiceError) {
	if id == "" {
		return nil, &ErrorMissingOrganizationID
	}
	return s.send(ctx, http.MethodGet, s.cfg.EndpointURL(organizationsPath+"/"+id), nil, "retrieve")
}

// Update replaces an organization's attributes.
func (s *service) Update(ctx context.Context, id string, org Organization) (
	*Organization, *serviceerror.ServiceError) {
	if id == "" {
		return nil, &ErrorMissingOrganizationID
	}
	if org.Name == "" {
		return nil, &ErrorMissingOrganizationName
	}
	return s.send(ctx, http.MethodPut, s.cfg.EndpointURL(organizationsPath+"/"+id), org, "update")
}

// send executes one organization API call. Backend failures embed the raw
// response body in the error description and preserve the HTTP status.
func (s *service) send(ctx context.Context, method, requestURL string, body any,
	operation string) (*Organization, *serviceerror.ServiceError) {
	req, err := syshttp.BuildJSONRequest(ctx, method, requestURL, body, s.cfg.Headers)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s organization: %s", operation, err.Error()))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s organization: %s", operation, err.Error()))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s organization: %s", operation, err.Error()))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		svcErr := serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s organization: %s", operation, string(respBody)))
		svcErr.StatusCode = resp.StatusCode
		return nil, svcErr
	}

	var result Organization
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, serviceerror.CustomServiceError(ErrorOperationFailed,
			fmt.Sprintf("Failed to %s organization: %s", operation, err.Error()))
	}

	return &result, nil
}
