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

// flowcli runs an authentication flow against a Thunder deployment from the
// terminal: it renders each step's components as prompts, reads input from
// stdin, and drives the flow to completion.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/asgardeo/thunder-go/config"
	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/flow/model"
	"github.com/asgardeo/thunder-go/flow/orchestrator"
	flowutils "github.com/asgardeo/thunder-go/flow/utils"
	"github.com/asgardeo/thunder-go/internal/system/log"
	"github.com/asgardeo/thunder-go/platform/localredirect"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the client configuration file")
	register := flag.Bool("register", false, "run a registration flow instead of authentication")
	flag.Parse()

	if err := run(*configPath, *register); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string, register bool) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowCLI"))

	cfg, err := config.LoadClientConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flowType := constants.FlowTypeAuthentication
	if register {
		flowType = constants.FlowTypeRegistration
	}

	done := make(chan orchestrator.CompletionResult, 1)

	opts := []orchestrator.Option{
		orchestrator.WithFlowType(flowType),
		orchestrator.WithPlatform(localredirect.New("127.0.0.1:8978", "/callback")),
		orchestrator.OnComplete(func(result orchestrator.CompletionResult) {
			done <- result
		}),
		orchestrator.OnMessage(func(msg orchestrator.FlowMessage) {
			fmt.Printf("[%s] %s\n", msg.Type, msg.Message)
		}),
	}

	orch, svcErr := orchestrator.New(cfg, opts...)
	if svcErr != nil {
		return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
	}

	ctx := context.Background()
	step, svcErr := orch.Initialize(ctx)
	if svcErr != nil {
		return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		if step.Complete {
			printCompletion(step.Result)
			return nil
		}
		if step.Popup != nil {
			fmt.Println("Continue sign-in in the browser window...")
			<-step.Popup.Done()
			if !step.Popup.HasProcessed() {
				return fmt.Errorf("sign-in window closed before completion")
			}

			// The continuation request runs in the session's goroutine;
			// wait for it to settle into a terminal state or the next step.
			next, err := awaitContinuation(orch, done)
			if err != nil {
				return err
			}
			if next == nil {
				return nil
			}
			step = next
			continue
		}
		if orch.State() == orchestrator.StateError {
			return fmt.Errorf("the flow could not be started")
		}

		headings := flowutils.ExtractHeadings(step.Components, "", "", "", "")
		if headings.Title != "" {
			fmt.Println()
			fmt.Println(headings.Title)
			if headings.Subtitle != "" {
				fmt.Println(headings.Subtitle)
			}
		}

		if step.Message != nil {
			fmt.Printf("[%s] %s\n", step.Message.Type, step.Message.Message)
		}

		formData, trigger, err := promptStep(reader, headings.Components, step.Form)
		if err != nil {
			return err
		}

		logger.Debug("Submitting step", log.String(log.LoggerKeyFlowID, step.FlowID))
		step, svcErr = orch.Submit(ctx, trigger, formData)
		if svcErr != nil {
			return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
		}
	}
}

// awaitContinuation waits for the popup continuation submission to finish and
// returns the next step, or nil once the flow has completed.
func awaitContinuation(orch *orchestrator.Orchestrator,
	done <-chan orchestrator.CompletionResult) (*orchestrator.Step, error) {
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case result := <-done:
			printCompletion(&result)
			return nil, nil
		default:
		}

		if orch.State() == orchestrator.StateIncomplete && !orch.IsLoading() &&
			len(orch.Components()) > 0 {
			return &orchestrator.Step{
				FlowID:     orch.FlowID(),
				Components: orch.Components(),
				Form:       orch.Form(),
			}, nil
		}

		time.Sleep(100 * time.Millisecond)
	}
	return nil, fmt.Errorf("timed out waiting for sign-in completion")
}

// promptStep renders the step's inputs and actions as terminal prompts and
// returns the collected form data plus the chosen triggering component.
func promptStep(reader *bufio.Reader, components []model.Component,
	form *model.FormState) (map[string]string, *model.Component, error) {
	formData := make(map[string]string)

	inputs := model.CollectInputs(components)
	for _, input := range inputs {
		label := input.Label
		if label == "" {
			label = input.Key()
		}
		prompt := label
		if input.Required {
			prompt += " *"
		}
		if form != nil && form.Errors[input.Key()] != "" {
			fmt.Println("  !", form.Errors[input.Key()])
		}

		fmt.Printf("%s: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read input: %w", err)
		}
		formData[input.Key()] = strings.TrimSpace(line)
	}

	actions := collectActions(components)
	if len(actions) == 0 {
		return formData, nil, nil
	}
	if len(actions) == 1 {
		return formData, &actions[0], nil
	}

	fmt.Println("Choose an action:")
	for i, action := range actions {
		label := action.Text
		if label == "" {
			label = action.Label
		}
		fmt.Printf("  %d) %s\n", i+1, label)
	}
	fmt.Print("> ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(actions) {
		return nil, nil, fmt.Errorf("invalid choice")
	}

	return formData, &actions[choice-1], nil
}

// collectActions gathers the triggerable action components in display order.
func collectActions(components []model.Component) []model.Component {
	var actions []model.Component
	for i := range components {
		c := &components[i]
		if c.Type == constants.ComponentTypeAction {
			actions = append(actions, *c)
		}
		if len(c.Components) > 0 {
			actions = append(actions, collectActions(c.Components)...)
		}
	}
	return actions
}

func printCompletion(result *orchestrator.CompletionResult) {
	fmt.Println("Flow complete.")
	if result == nil {
		return
	}
	if result.RedirectURL != "" {
		fmt.Println("Redirect:", result.RedirectURL)
	}
	if result.Assertion != "" {
		fmt.Println("Assertion:", result.Assertion)
	}
}
