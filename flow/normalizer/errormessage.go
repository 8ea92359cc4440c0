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

package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/asgardeo/thunder-go/flow/model"
	"github.com/asgardeo/thunder-go/i18n"
)

// GenericErrorKey is the translation key of the generic flow failure message.
const GenericErrorKey = "errors.flow.failure"

// errorPayload captures the error fields of either backend generation.
type errorPayload struct {
	FailureReason string `json:"failureReason"`
	Description   string `json:"description"`
	Message       string `json:"message"`
}

func (p errorPayload) message() string {
	switch {
	case p.FailureReason != "":
		return p.FailureReason
	case p.Description != "":
		return p.Description
	case p.Message != "":
		return p.Message
	default:
		return ""
	}
}

// ExtractErrorMessage extracts a human-readable failure message from a raw
// response, a FlowError, or an arbitrary error value. Precedence:
// failureReason > description > message > the error's own message > a
// translated generic fallback. Errors whose message is itself a JSON document
// are parsed first and the same precedence applied to the parsed object.
func ExtractErrorMessage(v any, translate i18n.TranslateFunc) string {
	if msg := extract(v); msg != "" {
		return msg
	}
	if translate != nil {
		return translate(GenericErrorKey)
	}
	return GenericErrorKey
}

func extract(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case *FlowError:
		if value == nil {
			return ""
		}
		if msg := extract(value.Response); msg != "" {
			return msg
		}
		return value.Message
	case *model.FlowResponse:
		if value == nil {
			return ""
		}
		return errorPayload{
			FailureReason: value.FailureReason,
			Description:   value.Description,
			Message:       value.Message,
		}.message()
	case error:
		return extractFromErrorMessage(value.Error())
	case string:
		return extractFromErrorMessage(value)
	default:
		return ""
	}
}

// extractFromErrorMessage applies the field precedence to a message that may
// itself be a serialized error payload.
func extractFromErrorMessage(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if strings.HasPrefix(trimmed, "{") {
		var payload errorPayload
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			if extracted := payload.message(); extracted != "" {
				return extracted
			}
		}
	}
	return msg
}
