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

// Package platform defines the capability interface the flow orchestrator uses
// for external-window navigation, so the state machine itself never touches
// host environment globals and stays testable without one.
package platform

import "errors"

// ErrCrossOrigin is returned by Popup.Location while the popup is navigated to
// an external origin whose location cannot be read. Callers treat it as "not
// yet ready", not as a failure.
var ErrCrossOrigin = errors.New("popup location is cross-origin")

// Message is a completion message posted back by the external sign-in window.
type Message struct {
	// Origin is the origin the message was posted from.
	Origin string
	// Data carries the message payload, typically code and state parameters.
	Data map[string]string
}

// Popup is an external navigation window opened for an OAuth continuation.
type Popup interface {
	// Location returns the popup's current URL, or ErrCrossOrigin while it
	// cannot be read.
	Location() (string, error)
	// Closed reports whether the popup has been closed.
	Closed() bool
	// Close closes the popup. Closing an already-closed popup is a no-op.
	Close() error
	// Messages returns the channel completion messages are delivered on.
	Messages() <-chan Message
}

// Capabilities is the platform surface injected into the flow orchestrator.
type Capabilities interface {
	// OpenPopup opens an external navigation window at the given URL.
	OpenPopup(url, name, features string) (Popup, error)
	// Origin returns the host application's own origin, used to validate
	// completion message sources.
	Origin() string
}
