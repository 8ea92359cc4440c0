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

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RequestTestSuite struct {
	suite.Suite
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}

func (ts *RequestTestSuite) TestJSONRequestHeaderPolicy() {
	req, err := BuildJSONRequest(context.Background(), http.MethodPost, "https://server.example/flow/execute",
		map[string]string{"flowId": "f1"}, map[string]string{
			"Authorization": "Bearer token-1",
			"Content-Type":  "text/plain",
			"Accept":        "text/plain",
		})
	ts.Require().NoError(err)

	// Mandated values win over caller input; other caller headers survive.
	ts.Equal(ContentTypeJSON, req.Header.Get(ContentTypeHeaderName))
	ts.Equal(ContentTypeJSON, req.Header.Get(AcceptHeaderName))
	ts.Equal("Bearer token-1", req.Header.Get("Authorization"))

	body, err := io.ReadAll(req.Body)
	ts.Require().NoError(err)
	ts.JSONEq(`{"flowId":"f1"}`, string(body))
}

func (ts *RequestTestSuite) TestFormRequestHeaderPolicy() {
	values := url.Values{}
	values.Set("applicationId", "app-1")

	req, err := BuildFormRequest(context.Background(), "https://server.example/oauth2/authorize",
		values, map[string]string{"Content-Type": "application/json"})
	ts.Require().NoError(err)

	ts.Equal(ContentTypeForm, req.Header.Get(ContentTypeHeaderName))
	ts.Equal(ContentTypeJSON, req.Header.Get(AcceptHeaderName))

	body, err := io.ReadAll(req.Body)
	ts.Require().NoError(err)
	ts.Equal("applicationId=app-1", string(body))
}

func (ts *RequestTestSuite) TestEmptyHeaderEntriesAreSkipped() {
	req, err := BuildJSONRequest(context.Background(), http.MethodPost, "https://server.example/flow/execute",
		nil, map[string]string{"X-Empty": "", "": "value"})
	ts.Require().NoError(err)

	_, present := req.Header["X-Empty"]
	ts.False(present)
}

func (ts *RequestTestSuite) TestTransportErrorMessage() {
	ts.Equal("Network or parsing error: connection refused",
		TransportErrorMessage(errors.New("connection refused")))
	ts.Equal("Network or parsing error: Unknown error", TransportErrorMessage(nil))
}
