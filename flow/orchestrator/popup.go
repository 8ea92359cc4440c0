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

package orchestrator

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/asgardeo/thunder-go/flow/constants"
	"github.com/asgardeo/thunder-go/internal/system/log"
	sysutils "github.com/asgardeo/thunder-go/internal/system/utils"
	"github.com/asgardeo/thunder-go/platform"
	"github.com/asgardeo/thunder-go/serviceerror"
)

// popupPollInterval is the period of the location polling observer.
const popupPollInterval = time.Second

// PopupSession tracks one external sign-in window. Completion is observed two
// ways at once: completion messages posted by the window, and periodic polling
// of the window location for the redirect parameters. Whichever observer fires
// first wins; the continuation is processed at most once.
type PopupSession struct {
	orch           *Orchestrator
	popup          platform.Popup
	logger         *log.Logger
	allowedOrigins []string

	mu        sync.Mutex
	processed bool

	done         chan struct{}
	teardownOnce sync.Once
}

// startPopup opens the external window for a redirection step and starts both
// completion observers.
func (o *Orchestrator) startPopup(redirectURL string) (*PopupSession, *serviceerror.ServiceError) {
	if o.caps == nil {
		return nil, &constants.ErrorPopupUnavailable
	}

	popup, err := o.caps.OpenPopup(redirectURL, constants.PopupWindowName, constants.PopupWindowFeatures)
	if err != nil {
		return nil, serviceerror.CustomServiceError(constants.ErrorPopupUnavailable,
			"Failed to open sign-in window: "+err.Error())
	}

	afterFlowURL := o.cfg.AfterSignInURL
	if o.flowType == constants.FlowTypeRegistration && o.cfg.AfterSignUpURL != "" {
		afterFlowURL = o.cfg.AfterSignUpURL
	}

	var allowed []string
	if origin := sysutils.GetOrigin(afterFlowURL); origin != "" {
		allowed = append(allowed, origin)
	}
	if origin := o.caps.Origin(); origin != "" {
		allowed = append(allowed, origin)
	}

	session := &PopupSession{
		orch:           o,
		popup:          popup,
		logger:         o.logger,
		allowedOrigins: allowed,
		done:           make(chan struct{}),
	}

	go session.watchMessages()
	go session.pollLocation()

	return session, nil
}

// HasProcessed reports whether the continuation has been consumed.
func (s *PopupSession) HasProcessed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed
}

// Cancel stops both observers and closes the window without processing a
// continuation.
func (s *PopupSession) Cancel() {
	s.teardown()
}

// Done is closed once the session has torn down, whether by completion,
// cancellation, or the window being closed.
func (s *PopupSession) Done() <-chan struct{} {
	return s.done
}

// watchMessages consumes completion messages posted by the external window.
// Messages from origins other than the configured after-flow origin or the
// host's own origin are ignored.
func (s *PopupSession) watchMessages() {
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-s.popup.Messages():
			if !ok {
				return
			}
			if !s.originAllowed(msg.Origin) {
				s.logger.Debug("Ignoring completion message from unexpected origin",
					log.String("origin", msg.Origin))
				continue
			}
			code := msg.Data["code"]
			if code == "" {
				continue
			}
			s.process(code, msg.Data["state"])
		}
	}
}

// pollLocation periodically inspects the window location for the redirect
// parameters. A cross-origin location means the window is still on the
// external provider and is simply not ready yet.
func (s *PopupSession) pollLocation() {
	ticker := time.NewTicker(popupPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if s.popup.Closed() {
				s.logger.Debug("Sign-in window closed before completion")
				s.teardown()
				return
			}

			location, err := s.popup.Location()
			if err != nil {
				if !errors.Is(err, platform.ErrCrossOrigin) {
					s.logger.Debug("Failed to read sign-in window location", log.Error(err))
				}
				continue
			}

			parsed, err := url.Parse(location)
			if err != nil {
				continue
			}
			query := parsed.Query()

			if errParam := query.Get("error"); errParam != "" {
				s.logger.Debug("Sign-in window returned an error", log.String("error", errParam))
				s.teardown()
				return
			}
			if code := query.Get("code"); code != "" {
				s.process(code, query.Get("state"))
				return
			}
		}
	}
}

// process submits the continuation exactly once and tears the session down.
func (s *PopupSession) process(code, state string) {
	s.mu.Lock()
	if s.processed {
		s.mu.Unlock()
		return
	}
	s.processed = true
	s.mu.Unlock()

	s.teardown()

	s.logger.Debug("Processing sign-in continuation", log.String("code", log.MaskString(code)))

	inputs := map[string]string{"code": code}
	if state != "" {
		inputs["state"] = state
	}

	if _, svcErr := s.orch.submit(context.Background(), nil, inputs, true); svcErr != nil {
		s.logger.Error("Failed to submit sign-in continuation",
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}
}

// originAllowed checks a message origin against the allowed set. An empty
// allowed set accepts any origin; some hosts cannot determine one.
func (s *PopupSession) originAllowed(origin string) bool {
	if len(s.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

func (s *PopupSession) teardown() {
	s.teardownOnce.Do(func() {
		close(s.done)
		if err := s.popup.Close(); err != nil {
			s.logger.Debug("Failed to close sign-in window", log.Error(err))
		}
	})
}
