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

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (ts *ConfigTestSuite) TestLoadClientConfig() {
	content := `
base_url: https://thunder.example
application_id: app-1
api_generation: 1
after_sign_in_url: https://app.example/home
locale: fr-FR
request_timeout: 10s
headers:
  Authorization: Bearer token-1
`
	path := filepath.Join(ts.T().TempDir(), "config.yaml")
	ts.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadClientConfig(path)
	ts.Require().NoError(err)

	ts.Equal("https://thunder.example", cfg.BaseURL)
	ts.Equal("app-1", cfg.ApplicationID)
	ts.Equal(APIGenerationOne, cfg.Generation())
	ts.Equal("https://app.example/home", cfg.AfterSignInURL)
	ts.Equal("fr-FR", cfg.Locale)
	ts.Equal(10*time.Second, cfg.RequestTimeout)
	ts.Equal("Bearer token-1", cfg.Headers["Authorization"])
}

func (ts *ConfigTestSuite) TestLoadAppliesDefaults() {
	content := `
base_url: https://thunder.example
application_id: app-1
`
	path := filepath.Join(ts.T().TempDir(), "config.yaml")
	ts.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadClientConfig(path)
	ts.Require().NoError(err)

	ts.Equal(APIGenerationTwo, cfg.Generation())
	ts.Equal("en-US", cfg.Locale)
	ts.Equal(30*time.Second, cfg.RequestTimeout)
}

func (ts *ConfigTestSuite) TestLoadMissingFile() {
	_, err := LoadClientConfig(filepath.Join(ts.T().TempDir(), "missing.yaml"))
	ts.Error(err)
}

func (ts *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name         string
		cfg          ClientConfig
		expectedCode string
	}{
		{
			name:         "MissingBaseURL",
			cfg:          ClientConfig{ApplicationID: "app-1"},
			expectedCode: ErrorMissingBaseURL.Code,
		},
		{
			name:         "MissingApplicationID",
			cfg:          ClientConfig{BaseURL: "https://thunder.example"},
			expectedCode: ErrorMissingApplicationID.Code,
		},
		{
			name: "InvalidGeneration",
			cfg: ClientConfig{
				BaseURL:       "https://thunder.example",
				ApplicationID: "app-1",
				APIGeneration: 7,
			},
			expectedCode: ErrorInvalidAPIGeneration.Code,
		},
		{
			name: "Valid",
			cfg: ClientConfig{
				BaseURL:       "https://thunder.example",
				ApplicationID: "app-1",
				APIGeneration: APIGenerationTwo,
			},
		},
	}

	for _, tc := range testCases {
		ts.T().Run(tc.name, func(t *testing.T) {
			svcErr := tc.cfg.Validate()
			if tc.expectedCode == "" {
				ts.Nil(svcErr)
			} else {
				ts.Require().NotNil(svcErr)
				ts.Equal(tc.expectedCode, svcErr.Code)
			}
		})
	}
}

func (ts *ConfigTestSuite) TestEndpointURLs() {
	cfg := &ClientConfig{BaseURL: "https://thunder.example/"}

	ts.Equal("https://thunder.example/flow/execute", cfg.FlowExecuteURL())
	ts.Equal("https://thunder.example/oauth2/authorize", cfg.AuthorizeURL())
	ts.Equal("https://thunder.example/organizations", cfg.EndpointURL("organizations"))

	cfg.FlowEndpoint = LegacyFlowExecutePath
	ts.Equal("https://thunder.example/api/server/v1/flow/execute", cfg.FlowExecuteURL())
}
