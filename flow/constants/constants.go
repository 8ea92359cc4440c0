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

// Package constants defines the constants used in the flow execution client.
package constants

// FlowType defines the type of flow execution.
type FlowType string

const (
	// FlowTypeAuthentication represents a flow execution for user authentication.
	FlowTypeAuthentication FlowType = "AUTHENTICATION"
	// FlowTypeRegistration represents a flow execution for user registration.
	FlowTypeRegistration FlowType = "REGISTRATION"
)

// FlowStatus defines the status of a flow execution.
type FlowStatus string

const (
	// FlowStatusComplete indicates that the flow execution is complete.
	FlowStatusComplete FlowStatus = "COMPLETE"
	// FlowStatusIncomplete indicates that the flow execution is incomplete.
	FlowStatusIncomplete FlowStatus = "INCOMPLETE"
	// FlowStatusError indicates that there was an error during the flow execution.
	FlowStatusError FlowStatus = "ERROR"
)

// FlowStepType defines the type of a step in the flow execution.
type FlowStepType string

const (
	// StepTypeView represents a step in the flow that requires user interaction.
	StepTypeView FlowStepType = "VIEW"
	// StepTypeRedirection represents a step in the flow that redirects the user to another URL.
	StepTypeRedirection FlowStepType = "REDIRECTION"
)

// ActionType defines the type of a legacy action descriptor.
type ActionType string

const (
	// ActionTypeButton represents a button action in a legacy flow response.
	ActionTypeButton ActionType = "BUTTON"
)

// ComponentType defines the rendering type of a node in the component tree.
type ComponentType string

const (
	// ComponentTypeTextInput represents a plain text input field.
	ComponentTypeTextInput ComponentType = "TEXT_INPUT"
	// ComponentTypePasswordInput represents a password input field.
	ComponentTypePasswordInput ComponentType = "PASSWORD_INPUT"
	// ComponentTypeEmailInput represents an email input field.
	ComponentTypeEmailInput ComponentType = "EMAIL_INPUT"
	// ComponentTypeText represents a static text node.
	ComponentTypeText ComponentType = "TEXT"
	// ComponentTypeAction represents a button or other actionable node.
	ComponentTypeAction ComponentType = "ACTION"
	// ComponentTypeBlock represents a generic container of child components.
	ComponentTypeBlock ComponentType = "BLOCK"
	// ComponentTypeForm represents a form container whose inputs are submitted together.
	ComponentTypeForm ComponentType = "FORM"
	// ComponentTypeDivider represents a visual divider.
	ComponentTypeDivider ComponentType = "DIVIDER"
	// ComponentTypeImage represents an image node.
	ComponentTypeImage ComponentType = "IMAGE"
	// ComponentTypeCheckbox represents a checkbox input.
	ComponentTypeCheckbox ComponentType = "CHECKBOX"
	// ComponentTypeSelect represents a select input.
	ComponentTypeSelect ComponentType = "SELECT"
)

// Variant defines the rendering sub-kind of a component.
type Variant string

const (
	// VariantText marks a generic text input.
	VariantText Variant = "TEXT"
	// VariantPassword marks a password input.
	VariantPassword Variant = "PASSWORD"
	// VariantEmail marks an email input.
	VariantEmail Variant = "EMAIL"
	// VariantPrimary marks a primary emphasis action.
	VariantPrimary Variant = "PRIMARY"
	// VariantSecondary marks a secondary emphasis action.
	VariantSecondary Variant = "SECONDARY"
	// VariantSocial marks a social sign-in action.
	VariantSocial Variant = "SOCIAL"
	// VariantBody marks body copy text.
	VariantBody Variant = "BODY"
	// VariantCaption marks caption text.
	VariantCaption Variant = "CAPTION"
	// VariantHeading1 through VariantHeading6 mark heading text levels.
	VariantHeading1 Variant = "HEADING_1"
	VariantHeading2 Variant = "HEADING_2"
	VariantHeading3 Variant = "HEADING_3"
	VariantHeading4 Variant = "HEADING_4"
	VariantHeading5 Variant = "HEADING_5"
	VariantHeading6 Variant = "HEADING_6"
)

// HeadingVariantPrefix is the variant prefix shared by all heading levels.
const HeadingVariantPrefix = "HEADING_"

// EventType defines the semantic trigger kind of an action component.
type EventType string

const (
	// EventTypeSubmit marks an action that submits validated form data.
	EventTypeSubmit EventType = "SUBMIT"
	// EventTypeTrigger marks an action that fires immediately without form validation.
	EventTypeTrigger EventType = "TRIGGER"
	// EventTypeCancel marks an action that cancels the current step.
	EventTypeCancel EventType = "CANCEL"
	// EventTypeBack marks an action that navigates to the previous step.
	EventTypeBack EventType = "BACK"
)

// Synthetic component identifier prefixes.
const (
	// ComponentIDPrefixInput prefixes synthetic input component identifiers.
	ComponentIDPrefixInput = "input_"
	// ComponentIDPrefixButton prefixes synthetic button component identifiers.
	ComponentIDPrefixButton = "button_"
	// ComponentIDPrefixForm prefixes synthetic form component identifiers.
	ComponentIDPrefixForm = "form_"
	// ComponentIDPrefixAction prefixes synthetic action component identifiers.
	ComponentIDPrefixAction = "action_"
	// ComponentIDPrefixSelect prefixes synthetic select component identifiers.
	ComponentIDPrefixSelect = "select_"
)

const (
	// PopupWindowName is the fixed window name used for the OAuth continuation popup.
	PopupWindowName = "oauth_popup"
	// PopupWindowFeatures is the fixed feature string used when opening the popup.
	PopupWindowFeatures = "width=500,height=600,scrollbars=yes,resizable=yes"
)
