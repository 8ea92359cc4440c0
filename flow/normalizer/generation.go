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
	"github.com/asgardeo/thunder-go/config"
	"github.com/asgardeo/thunder-go/flow/model"
)

// FieldMapping captures the per-generation naming differences on the wire, so
// a single request builder serves both API generations instead of parallel
// per-generation copies.
type FieldMapping struct {
	// UsesActionID is true when the generation names the action discriminator
	// "actionId" rather than "action".
	UsesActionID bool
	// UsesRefKeys is true when the generation keys input components by "ref"
	// rather than "id".
	UsesRefKeys bool
}

// MappingForGeneration returns the field mapping for a backend API generation.
func MappingForGeneration(generation config.APIGeneration) FieldMapping {
	if generation == config.APIGenerationOne {
		return FieldMapping{UsesActionID: true, UsesRefKeys: false}
	}
	return FieldMapping{UsesActionID: false, UsesRefKeys: true}
}

// ApplyAction sets the action discriminator on the request using the
// generation's field naming.
func (m FieldMapping) ApplyAction(req *model.FlowRequest, action string) {
	if action == "" {
		return
	}
	if m.UsesActionID {
		req.ActionID = action
	} else {
		req.Action = action
	}
}
