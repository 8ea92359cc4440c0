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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/asgardeo/thunder-go/internal/system/utils"
)

const (
	// ContentTypeHeaderName is the Content-Type header name.
	ContentTypeHeaderName = "Content-Type"
	// AcceptHeaderName is the Accept header name.
	AcceptHeaderName = "Accept"
	// ContentTypeJSON is the JSON content type value.
	ContentTypeJSON = "application/json"
	// ContentTypeForm is the form-urlencoded content type value.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// BuildJSONRequest builds a POST request with a JSON-encoded body. The
// mandated Content-Type and Accept values are merged over caller supplied
// headers so they always win over caller input.
func BuildJSONRequest(ctx context.Context, method, requestURL string, body any,
	headers map[string]string) (*http.Request, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	applyHeaders(req, utils.MergeStringMaps(utils.MergeStringMaps(nil, headers), map[string]string{
		ContentTypeHeaderName: ContentTypeJSON,
		AcceptHeaderName:      ContentTypeJSON,
	}))

	return req, nil
}

// BuildFormRequest builds a POST request with a form-urlencoded body, applying
// the same header-merge policy as BuildJSONRequest.
func BuildFormRequest(ctx context.Context, requestURL string, values url.Values,
	headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL,
		strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	applyHeaders(req, utils.MergeStringMaps(utils.MergeStringMaps(nil, headers), map[string]string{
		ContentTypeHeaderName: ContentTypeForm,
		AcceptHeaderName:      ContentTypeJSON,
	}))

	return req, nil
}

// TransportErrorMessage normalizes a transport failure into a display message.
func TransportErrorMessage(err error) string {
	if err == nil {
		return "Network or parsing error: Unknown error"
	}
	return "Network or parsing error: " + err.Error()
}

func applyHeaders(req *http.Request, headers map[string]string) {
	for key, value := range headers {
		if key == "" || value == "" {
			continue
		}
		req.Header.Set(key, value)
	}
}
