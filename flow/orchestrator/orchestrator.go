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

// Package orchestrator drives the multi-step, server-directed flow
// conversation: it initializes a flow, submits user input against the current
// flow id, interprets normalized responses to transition state, and
// coordinates the popup-based OAuth continuation sub-protocol.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/asgardeo/thunder-go/config"
	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/flow/model"
	"github.com/asgardeo/thunder-go/flow/normalizer"
	"github.com/asgardeo/thunder-go/i18n"
	syshttp "github.com/asgardeo/thunder-go/internal/system/http"
	"github.com/asgardeo/thunder-go/internal/system/log"
	"github.com/asgardeo/thunder-go/internal/system/utils"
	"github.com/asgardeo/thunder-go/platform"
	"github.com/asgardeo/thunder-go/serviceerror"
)

const loggerComponentName = "FlowOrchestrator"

const requiredFieldMessageKey = "elements.fields.validation.required"

// State identifies the orchestrator's position in the flow conversation.
type State string

const (
	// StateUninitialized is the state before Initialize has been called.
	StateUninitialized State = "UNINITIALIZED"
	// StateInitializing is the state while the initiation request is in flight.
	StateInitializing State = "INITIALIZING"
	// StateIncomplete is the state while the flow awaits further user input.
	StateIncomplete State = "INCOMPLETE"
	// StateComplete is the terminal success state.
	StateComplete State = "COMPLETE"
	// StateError is the terminal failure state.
	StateError State = "ERROR"
)

// MessageType classifies a flow message surfaced to the host UI.
type MessageType string

const (
	// MessageTypeError marks a failure message.
	MessageTypeError MessageType = "error"
	// MessageTypeInfo marks an informational message.
	MessageTypeInfo MessageType = "info"
)

// FlowMessage is a user-facing message produced by the flow conversation.
type FlowMessage struct {
	Type    MessageType
	Message string
}

// CompletionResult carries the terminal success data of a flow.
type CompletionResult struct {
	RedirectURL    string
	Assertion      string
	AdditionalData map[string]string
}

// Step is the outcome of one orchestrator operation, handed to the host UI.
type Step struct {
	FlowID     string
	Components []model.Component
	Form       *model.FormState
	Message    *FlowMessage
	Complete   bool
	Result     *CompletionResult
	Popup      *PopupSession
}

// Orchestrator owns one flow conversation. A terminal state requires Reset or
// a fresh instance before another attempt.
type Orchestrator struct {
	cfg        *config.ClientConfig
	client     syshttp.HTTPClientInterface
	caps       platform.Capabilities
	translator i18n.Translator
	flowType   constants.FlowType
	mapping    normalizer.FieldMapping
	logger     *log.Logger

	onComplete func(CompletionResult)
	onError    func(error)
	onMessage  func(FlowMessage)

	mu                 sync.Mutex
	state              State
	initialized        bool
	loading            bool
	flowID             string
	components         []model.Component
	form               *model.FormState
	completionReported bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithHTTPClient overrides the HTTP client used for flow requests.
func WithHTTPClient(client syshttp.HTTPClientInterface) Option {
	return func(o *Orchestrator) { o.client = client }
}

// WithPlatform injects the platform capabilities used for redirection handling.
func WithPlatform(caps platform.Capabilities) Option {
	return func(o *Orchestrator) { o.caps = caps }
}

// WithTranslator overrides the translator used for labels and messages.
func WithTranslator(translator i18n.Translator) Option {
	return func(o *Orchestrator) { o.translator = translator }
}

// WithFlowType sets the flow type; the default is authentication.
func WithFlowType(flowType constants.FlowType) Option {
	return func(o *Orchestrator) { o.flowType = flowType }
}

// OnComplete registers the completion callback. It is invoked exactly once
// when the flow reaches its terminal success state.
func OnComplete(fn func(CompletionResult)) Option {
	return func(o *Orchestrator) { o.onComplete = fn }
}

// OnError registers an observer that receives the raw error or response for
// every flow failure, for host-application logging.
func OnError(fn func(error)) Option {
	return func(o *Orchestrator) { o.onError = fn }
}

// OnMessage registers an observer for user-facing flow messages.
func OnMessage(fn func(FlowMessage)) Option {
	return func(o *Orchestrator) { o.onMessage = fn }
}

// New creates an orchestrator for the given client configuration.
func New(cfg *config.ClientConfig, opts ...Option) (*Orchestrator, *serviceerror.ServiceError) {
	if cfg == nil {
		return nil, &config.ErrorMissingBaseURL
	}
	if svcErr := cfg.Validate(); svcErr != nil {
		return nil, svcErr
	}

	o := &Orchestrator{
		cfg:      cfg,
		flowType: constants.FlowTypeAuthentication,
		mapping:  normalizer.MappingForGeneration(cfg.Generation()),
		state:    StateUninitialized,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.client == nil {
		o.client = syshttp.NewHTTPClientWithTimeout(cfg.RequestTimeout)
	}
	if o.translator == nil {
		translator, err := i18n.NewTranslator(cfg.Locale)
		if err != nil {
			return nil, serviceerror.CustomServiceError(constants.ErrorTranslatorInit,
				"Failed to load translation bundles: "+err.Error())
		}
		o.translator = translator
	}

	return o, nil
}

// State returns the orchestrator's current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// FlowID returns the current flow identifier, empty outside an active flow.
func (o *Orchestrator) FlowID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.flowID
}

// Components returns the current component tree.
func (o *Orchestrator) Components() []model.Component {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.components
}

// Form returns the current form state.
func (o *Orchestrator) Form() *model.FormState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// IsLoading reports whether a request is outstanding. Host UIs are expected to
// disable submission affordances while true; the orchestrator itself tolerates
// re-entry.
func (o *Orchestrator) IsLoading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Reset returns the orchestrator to its uninitialized state so a new flow
// attempt can be made on the same instance.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateUninitialized
	o.initialized = false
	o.loading = false
	o.flowID = ""
	o.components = nil
	o.form = nil
	o.completionReported = false
}

// Initialize starts the flow conversation. Initialization is attempted at
// most once per instance lifetime; re-entrant calls (mount/unmount cycles in
// the hosting UI) return a snapshot of the current state without issuing a
// second initiation request.
func (o *Orchestrator) Initialize(ctx context.Context) (*Step, *serviceerror.ServiceError) {
	o.mu.Lock()
	if o.initialized {
		step := o.snapshotLocked()
		o.mu.Unlock()
		return step, nil
	}
	o.initialized = true
	o.state = StateInitializing
	o.loading = true
	o.mu.Unlock()

	o.logger.Debug("Initializing flow", log.String(log.LoggerKeyFlowType, string(o.flowType)))

	resp, err := o.initiateFlow(ctx)
	if err != nil {
		return o.handleFailure(err, true), nil
	}

	return o.applyResponse(ctx, resp, true)
}

// Submit sends user input or an action trigger against the current flow. When
// the triggering component is validation-exempt (social or trigger actions),
// client-side field validation is skipped; otherwise missing required fields
// block the submission without any network call.
func (o *Orchestrator) Submit(ctx context.Context, component *model.Component,
	formData map[string]string) (*Step, *serviceerror.ServiceError) {
	return o.submit(ctx, component, formData, false)
}

func (o *Orchestrator) submit(ctx context.Context, component *model.Component,
	formData map[string]string, skipValidation bool) (*Step, *serviceerror.ServiceError) {
	o.mu.Lock()
	switch o.state {
	case StateIncomplete:
	case StateComplete, StateError:
		o.mu.Unlock()
		return nil, &constants.ErrorFlowTerminated
	default:
		o.mu.Unlock()
		return nil, &constants.ErrorFlowNotActive
	}

	exempt := skipValidation || (component != nil && component.IsValidationExempt())
	if !exempt {
		if blocked := o.validateLocked(formData); blocked != nil {
			o.mu.Unlock()
			return blocked, nil
		}
	}

	flowID := o.flowID
	o.loading = true
	o.mu.Unlock()

	req := model.FlowRequest{FlowID: flowID}
	if component != nil {
		o.mapping.ApplyAction(&req, component.ActionDiscriminator())
	}
	if inputs := utils.FilterEmptyValues(formData); len(inputs) > 0 {
		req.Inputs = inputs
	}

	resp, err := o.executeFlowRequest(ctx, req)
	if err != nil {
		return o.handleFailure(err, false), nil
	}

	return o.applyResponse(ctx, resp, false)
}

// validateLocked checks required fields against the submitted data and
// records validation errors on the form state. It returns a blocking step
// when validation fails. Callers must hold the mutex.
func (o *Orchestrator) validateLocked(formData map[string]string) *Step {
	if o.form == nil {
		o.form = model.NewFormState(o.components, nil)
	}

	for key, value := range formData {
		if _, ok := o.form.Values[key]; ok {
			o.form.Values[key] = value
		}
	}

	o.form.Errors = make(map[string]string)
	for _, input := range model.CollectInputs(o.components) {
		key := input.Key()
		if key == "" || !input.Required {
			continue
		}
		if strings.TrimSpace(formData[key]) == "" {
			o.form.Touched[key] = true
			o.form.Errors[key] = o.translator.T(requiredFieldMessageKey)
		}
	}

	if !o.form.IsValid() {
		return &Step{
			FlowID:     o.flowID,
			Components: o.components,
			Form:       o.form,
		}
	}
	return nil
}

// initiateFlow issues the generation-dependent flow initiation request.
func (o *Orchestrator) initiateFlow(ctx context.Context) (*model.FlowResponse, error) {
	if o.cfg.Generation() == config.APIGenerationOne {
		values := url.Values{}
		values.Set("applicationId", o.cfg.ApplicationID)
		values.Set("flowType", string(o.flowType))

		req, err := syshttp.BuildFormRequest(ctx, o.cfg.AuthorizeURL(), values, o.cfg.Headers)
		if err != nil {
			return nil, err
		}
		return o.doFlowRequest(req)
	}

	return o.executeFlowRequest(ctx, model.FlowRequest{
		ApplicationID: o.cfg.ApplicationID,
		FlowType:      string(o.flowType),
	})
}

// executeFlowRequest posts a JSON flow request to the step execution endpoint.
func (o *Orchestrator) executeFlowRequest(ctx context.Context, flowReq model.FlowRequest) (
	*model.FlowResponse, error) {
	req, err := syshttp.BuildJSONRequest(ctx, http.MethodPost, o.cfg.FlowExecuteURL(), flowReq, o.cfg.Headers)
	if err != nil {
		return nil, err
	}
	return o.doFlowRequest(req)
}

// doFlowRequest executes a prepared request and decodes the flow response.
// Non-OK responses that decode into a recognizable error shape are returned
// for downstream classification; everything else surfaces as an error.
func (o *Orchestrator) doFlowRequest(req *http.Request) (*model.FlowResponse, error) {
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, errors.New(syshttp.TransportErrorMessage(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			o.logger.Error("Failed to close flow response body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(syshttp.TransportErrorMessage(err))
	}

	var flowResp model.FlowResponse
	if err := json.Unmarshal(body, &flowResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("flow request failed with status %s: %s", resp.Status, string(body))
		}
		return nil, errors.New(syshttp.TransportErrorMessage(err))
	}

	if resp.StatusCode != http.StatusOK && !normalizer.IsErrorResponse(&flowResp) {
		return nil, fmt.Errorf("flow request failed with status %s: %s", resp.Status, string(body))
	}

	return &flowResp, nil
}

// applyResponse normalizes a flow response and transitions the orchestrator.
func (o *Orchestrator) applyResponse(ctx context.Context, resp *model.FlowResponse,
	init bool) (*Step, *serviceerror.ServiceError) {
	normalized, err := normalizer.Normalize(resp, o.translator)
	if err != nil {
		return o.handleFailure(err, init), nil
	}

	if resp.FlowStatus == constants.FlowStatusComplete {
		return o.completeFlow(ctx, resp)
	}

	if resp.Type == constants.StepTypeRedirection {
		redirectURL := resp.Data.RedirectURL
		if redirectURL == "" {
			redirectURL = resp.RedirectURL
		}
		if redirectURL == "" {
			return nil, &constants.ErrorMissingRedirectURL
		}

		o.mu.Lock()
		if normalized.FlowID != "" {
			o.flowID = normalized.FlowID
		}
		o.state = StateIncomplete
		o.loading = false
		o.mu.Unlock()

		session, svcErr := o.startPopup(redirectURL)
		if svcErr != nil {
			return nil, svcErr
		}
		return &Step{FlowID: o.FlowID(), Popup: session}, nil
	}

	o.mu.Lock()
	if normalized.FlowID != "" {
		o.flowID = normalized.FlowID
	}
	o.components = normalized.Components
	o.form = model.NewFormState(o.components, o.form)
	o.state = StateIncomplete
	o.loading = false
	step := o.snapshotLocked()
	o.mu.Unlock()

	return step, nil
}

// completeFlow transitions to the terminal success state and reports the
// completion result exactly once.
func (o *Orchestrator) completeFlow(ctx context.Context, resp *model.FlowResponse) (
	*Step, *serviceerror.ServiceError) {
	result := CompletionResult{
		Assertion:      resp.Assertion,
		AdditionalData: resp.Data.AdditionalData,
		RedirectURL:    resp.RedirectURL,
	}
	if result.RedirectURL == "" {
		result.RedirectURL = resp.Data.RedirectURL
	}

	// Legacy sign-in completions carry an assertion that must be exchanged
	// for the final redirect through the authorize endpoint.
	if o.cfg.Generation() == config.APIGenerationOne && resp.Assertion != "" {
		redirectURL, err := o.exchangeAssertion(ctx, resp)
		if err != nil {
			return o.handleFailure(err, false), nil
		}
		if redirectURL != "" {
			result.RedirectURL = redirectURL
		}
	}

	o.mu.Lock()
	o.state = StateComplete
	o.loading = false
	alreadyReported := o.completionReported
	o.completionReported = true
	o.mu.Unlock()

	if !alreadyReported && o.onComplete != nil {
		o.onComplete(result)
	}

	o.logger.Debug("Flow completed", log.String(log.LoggerKeyFlowID, resp.FlowID))
	return &Step{FlowID: resp.FlowID, Complete: true, Result: &result}, nil
}

// exchangeAssertion posts the legacy assertion continuation and returns the
// final redirect URL.
func (o *Orchestrator) exchangeAssertion(ctx context.Context, resp *model.FlowResponse) (string, error) {
	payload := map[string]string{"assertion": resp.Assertion}
	if resp.Data.AdditionalData != nil {
		if sessionDataKey, ok := resp.Data.AdditionalData["sessionDataKey"]; ok {
			payload["sessionDataKey"] = sessionDataKey
		}
	}

	req, err := syshttp.BuildJSONRequest(ctx, http.MethodPost, o.cfg.AuthorizeURL(), payload, o.cfg.Headers)
	if err != nil {
		return "", err
	}

	authResp, err := o.doFlowRequest(req)
	if err != nil {
		return "", err
	}
	if authResp.RedirectURL != "" {
		return authResp.RedirectURL, nil
	}
	return authResp.Data.RedirectURL, nil
}

// handleFailure funnels any flow failure through the shared error-message
// extraction and surfaces it as a flow message instead of an error return.
// The raw failure is forwarded to the error observer for host logging.
// Initialization failures are terminal; submission failures leave the current
// flow resumable so the user can retry.
func (o *Orchestrator) handleFailure(err error, init bool) *Step {
	message := normalizer.ExtractErrorMessage(err, o.translator.T)

	o.mu.Lock()
	if init {
		o.state = StateError
	}
	o.loading = false
	flowID := o.flowID
	components := o.components
	form := o.form
	o.mu.Unlock()

	o.logger.Error("Flow operation failed", log.String(log.LoggerKeyFlowID, flowID),
		log.String("reason", message))

	if o.onError != nil {
		o.onError(err)
	}

	flowMessage := FlowMessage{Type: MessageTypeError, Message: message}
	if o.onMessage != nil {
		o.onMessage(flowMessage)
	}

	return &Step{
		FlowID:     flowID,
		Components: components,
		Form:       form,
		Message:    &flowMessage,
	}
}

// snapshotLocked builds a Step from the current state. Callers must hold the mutex.
func (o *Orchestrator) snapshotLocked() *Step {
	return &Step{
		FlowID:     o.flowID,
		Components: o.components,
		Form:       o.form,
		Complete:   o.state == StateComplete,
	}
}
