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

// Package config provides structures and functions for loading and managing
// the SDK client configuration.
package config

import (
	"os"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/thunder-go/serviceerror"
)

// APIGeneration identifies the backend flow API generation the client talks to.
type APIGeneration int

const (
	// APIGenerationOne is the older authorize-based API with flat input/action responses.
	APIGenerationOne APIGeneration = 1
	// APIGenerationTwo is the component-tree flow execution API.
	APIGenerationTwo APIGeneration = 2
)

const (
	// DefaultFlowExecutePath is the flow step execution path on generation-2 servers.
	DefaultFlowExecutePath = "/flow/execute"
	// LegacyFlowExecutePath is the flow step execution path on older generation-2 deployments.
	LegacyFlowExecutePath = "/api/server/v1/flow/execute"
	// AuthorizePath is the OAuth2 authorization path used by generation-1 initiation
	// and the popup continuation call.
	AuthorizePath = "/oauth2/authorize"
)

// ClientConfig holds the client configuration for the SDK.
type ClientConfig struct {
	BaseURL        string            `yaml:"base_url"`
	ApplicationID  string            `yaml:"application_id"`
	APIGeneration  APIGeneration     `yaml:"api_generation"`
	FlowEndpoint   string            `yaml:"flow_endpoint"`
	AfterSignInURL string            `yaml:"after_sign_in_url"`
	AfterSignUpURL string            `yaml:"after_sign_up_url"`
	Locale         string            `yaml:"locale"`
	RequestTimeout time.Duration     `yaml:"request_timeout"`
	Headers        map[string]string `yaml:"headers"`
}

// LoadClientConfig loads the client configuration from a YAML file.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied config path
	if err != nil {
		return nil, err
	}

	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks the configuration and returns a service error when a
// required value is missing or invalid.
func (c *ClientConfig) Validate() *serviceerror.ServiceError {
	if strings.TrimSpace(c.BaseURL) == "" {
		return &ErrorMissingBaseURL
	}
	if strings.TrimSpace(c.ApplicationID) == "" {
		return &ErrorMissingApplicationID
	}
	switch c.APIGeneration {
	case 0, APIGenerationOne, APIGenerationTwo:
	default:
		return &ErrorInvalidAPIGeneration
	}
	return nil
}

// Generation returns the configured API generation, defaulting to generation two.
func (c *ClientConfig) Generation() APIGeneration {
	if c.APIGeneration == APIGenerationOne {
		return APIGenerationOne
	}
	return APIGenerationTwo
}

// FlowExecuteURL returns the absolute flow step execution endpoint.
func (c *ClientConfig) FlowExecuteURL() string {
	if c.FlowEndpoint != "" {
		return c.joinPath(c.FlowEndpoint)
	}
	return c.joinPath(DefaultFlowExecutePath)
}

// AuthorizeURL returns the absolute OAuth2 authorization endpoint.
func (c *ClientConfig) AuthorizeURL() string {
	return c.joinPath(AuthorizePath)
}

// EndpointURL returns the absolute URL for an arbitrary API path.
func (c *ClientConfig) EndpointURL(path string) string {
	return c.joinPath(path)
}

func (c *ClientConfig) joinPath(path string) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func (c *ClientConfig) applyDefaults() {
	if c.APIGeneration == 0 {
		c.APIGeneration = APIGenerationTwo
	}
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
}
