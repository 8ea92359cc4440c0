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

package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-go/config"
)

type UserServiceTestSuite struct {
	suite.Suite
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (ts *UserServiceTestSuite) newService(handler http.HandlerFunc) (ServiceInterface, *httptest.Server) {
	server := httptest.NewServer(handler)
	cfg := &config.ClientConfig{
		BaseURL:       server.URL,
		ApplicationID: "app-1",
		Headers:       map[string]string{"Authorization": "Bearer token-1"},
	}
	return NewService(cfg, nil), server
}

func (ts *UserServiceTestSuite) TestGetProfile() {
	svc, server := ts.newService(func(w http.ResponseWriter, r *http.Request) {
		ts.Equal(http.MethodGet, r.Method)
		ts.Equal("/users/me", r.URL.Path)
		ts.Equal("Bearer token-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"username": "jane",
			"email":    "jane@example.com",
		})
	})
	defer server.Close()

	profile, svcErr := svc.GetProfile(context.Background())
	ts.Require().Nil(svcErr)
	ts.Equal("jane", profile["username"])
	ts.Equal("jane@example.com", profile["email"])
}

func (ts *UserServiceTestSuite) TestUpdateProfile() {
	svc, server := ts.newService(func(w http.ResponseWriter, r *http.Request) {
		ts.Equal(http.MethodPut, r.Method)

		var attrs map[string]any
		ts.Require().NoError(json.NewDecoder(r.Body).Decode(&attrs))
		ts.Equal("Jane", attrs["givenName"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(attrs)
	})
	defer server.Close()

	profile, svcErr := svc.UpdateProfile(context.Background(), Profile{"givenName": "Jane"})
	ts.Require().Nil(svcErr)
	ts.Equal("Jane", profile["givenName"])
}

func (ts *UserServiceTestSuite) TestEmptyUpdateIsRejected() {
	svc, server := ts.newService(func(w http.ResponseWriter, r *http.Request) {
		ts.FailNow("no request expected")
	})
	defer server.Close()

	_, svcErr := svc.UpdateProfile(context.Background(), nil)
	ts.Require().NotNil(svcErr)
	ts.Equal(ErrorEmptyProfileUpdate.Code, svcErr.Code)
}

func (ts *UserServiceTestSuite) TestBackendErrorEmbedsBody() {
	svc, server := ts.newService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"USR-1001","message":"Not authenticated"}`))
	})
	defer server.Close()

	_, svcErr := svc.GetProfile(context.Background())
	ts.Require().NotNil(svcErr)
	ts.Equal(ErrorOperationFailed.Code, svcErr.Code)
	ts.Equal(http.StatusUnauthorized, svcErr.StatusCode)
	ts.Contains(svcErr.ErrorDescription, "Failed to retrieve user profile:")
	ts.Contains(svcErr.ErrorDescription, "Not authenticated")
}
