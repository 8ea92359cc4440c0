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

// Package adapter converts legacy flat input/action flow responses into the
// modern nested component-tree shape.
package adapter

import (
	"strings"

	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/flow/model"
	"github.com/asgardeo/thunder-go/i18n"
	"github.com/asgardeo/thunder-go/internal/system/utils"
)

const (
	fieldLabelKeyPrefix     = "elements.fields."
	fieldPlaceholderKey     = "elements.fields.placeholder"
	buttonLabelKeyPrefix    = "elements.buttons."
	submitButtonLabelKey    = "elements.buttons.submit"
	socialActionSuffix      = "_auth"
	defaultSubmitLabel      = "Continue"
	placeholderFallbackStem = "Enter your "
)

// AdaptLegacy converts a legacy inputs[]/actions[] payload into a component
// tree. Generated inputs plus one synthetic submit button are wrapped into a
// single form container (present only when at least one input exists); action
// derived buttons are appended as siblings outside the form, since they
// trigger alternate sign-in paths that bypass the form entirely.
func AdaptLegacy(data model.FlowData, translator i18n.Translator) []model.Component {
	var components []model.Component

	if len(data.Inputs) > 0 {
		formChildren := make([]model.Component, 0, len(data.Inputs)+1)
		for _, input := range data.Inputs {
			formChildren = append(formChildren, adaptInput(input, translator))
		}
		formChildren = append(formChildren, buildSubmitButton(translator))

		components = append(components, model.Component{
			ID:         utils.GenerateComponentID(constants.ComponentIDPrefixForm),
			Type:       constants.ComponentTypeForm,
			Components: formChildren,
		})
	}

	for _, action := range data.Actions {
		components = append(components, adaptAction(action, translator))
	}

	return components
}

// adaptInput converts a legacy input descriptor into an input component with
// an i18n-driven label and placeholder.
func adaptInput(input model.InputData, translator i18n.Translator) model.Component {
	componentType, variant := inferInputKind(input)
	label := resolveFieldLabel(input.Name, translator)

	return model.Component{
		ID:          utils.GenerateComponentID(constants.ComponentIDPrefixInput),
		Ref:         input.Name,
		Type:        componentType,
		Variant:     variant,
		Label:       label,
		Placeholder: resolveFieldPlaceholder(label, translator),
		Required:    input.Required,
	}
}

// inferInputKind derives the component type and variant from the declared
// input type. Backends occasionally under-specify password fields as generic
// strings, so a field whose name mentions "password" is forced to the
// password variant.
func inferInputKind(input model.InputData) (constants.ComponentType, constants.Variant) {
	switch strings.ToLower(input.Type) {
	case "email":
		return constants.ComponentTypeEmailInput, constants.VariantEmail
	case "password":
		return constants.ComponentTypePasswordInput, constants.VariantPassword
	}

	if strings.Contains(strings.ToLower(input.Name), "password") {
		return constants.ComponentTypePasswordInput, constants.VariantPassword
	}
	return constants.ComponentTypeTextInput, constants.VariantText
}

// resolveFieldLabel resolves a display label for the field, falling back to a
// human-readable split of the camelCase field name on a translation miss.
func resolveFieldLabel(name string, translator i18n.Translator) string {
	key := fieldLabelKeyPrefix + name
	label := translator.T(key)
	if label == key || label == "" {
		return utils.SplitCamelCase(name)
	}
	return label
}

// resolveFieldPlaceholder resolves the placeholder through the shared
// placeholder template, keyed by the resolved label.
func resolveFieldPlaceholder(label string, translator i18n.Translator) string {
	placeholder := translator.Tf(fieldPlaceholderKey, map[string]string{"field": label})
	if placeholder == fieldPlaceholderKey || placeholder == "" {
		return placeholderFallbackStem + label
	}
	return placeholder
}

// buildSubmitButton creates the synthetic submit button appended to the form.
func buildSubmitButton(translator i18n.Translator) model.Component {
	label := translator.T(submitButtonLabelKey)
	if label == submitButtonLabelKey {
		label = defaultSubmitLabel
	}

	return model.Component{
		ID:        utils.GenerateComponentID(constants.ComponentIDPrefixButton),
		Type:      constants.ComponentTypeAction,
		Variant:   constants.VariantPrimary,
		EventType: constants.EventTypeSubmit,
		Label:     label,
	}
}

// adaptAction converts a legacy action descriptor into a trigger button. The
// trailing "_auth" suffix is stripped before the translation lookup, so
// "google_auth" resolves through "elements.buttons.google".
func adaptAction(action model.Action, translator i18n.Translator) model.Component {
	lookupID := strings.TrimSuffix(action.ID, socialActionSuffix)
	key := buttonLabelKeyPrefix + lookupID
	label := translator.T(key)
	if label == key || label == "" {
		label = utils.FormatIdentifier(action.ID)
	}

	variant := constants.VariantSecondary
	if strings.HasSuffix(action.ID, socialActionSuffix) {
		variant = constants.VariantSocial
	}

	return model.Component{
		ID:        utils.GenerateComponentID(constants.ComponentIDPrefixAction),
		Type:      constants.ComponentTypeAction,
		Variant:   variant,
		EventType: constants.EventTypeTrigger,
		Label:     label,
		ActionID:  action.ID,
	}
}
