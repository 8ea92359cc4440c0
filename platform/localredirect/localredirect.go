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

// Package localredirect implements the platform capabilities for native and
// CLI hosts: the "popup" is the system browser plus a loopback HTTP listener
// that captures the provider's redirect back.
package localredirect

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/asgardeo/thunder-go/internal/system/log"
	"github.com/asgardeo/thunder-go/platform"
)

const loggerComponentName = "LocalRedirectPlatform"

// callbackPageBody is served to the browser once the redirect is captured.
const callbackPageBody = "<html><body><p>Sign-in received. You may close this window.</p></body></html>"

// Provider implements platform.Capabilities using a loopback redirect listener.
type Provider struct {
	// ListenAddr is the loopback address the callback listener binds to.
	// The configured after-flow URL must point at this address.
	ListenAddr string
	// CallbackPath is the path the provider redirects back to.
	CallbackPath string
	// OpenBrowser launches the system browser; defaults to the platform opener.
	OpenBrowser func(url string) error

	mu     sync.Mutex
	origin string
}

// New creates a Provider listening on the given loopback address.
func New(listenAddr, callbackPath string) *Provider {
	if callbackPath == "" {
		callbackPath = "/callback"
	}
	return &Provider{
		ListenAddr:   listenAddr,
		CallbackPath: callbackPath,
	}
}

// Origin returns the listener origin.
func (p *Provider) Origin() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.origin
}

// OpenPopup starts the loopback listener and opens the system browser at the
// given URL. The window name and feature string are browser-popup concepts and
// are ignored here.
func (p *Provider) OpenPopup(popupURL, _, _ string) (platform.Popup, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listener, err := net.Listen("tcp", p.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to start callback listener: %w", err)
	}

	origin := "http://" + listener.Addr().String()
	p.mu.Lock()
	p.origin = origin
	p.mu.Unlock()

	popup := &localPopup{
		origin:   origin,
		messages: make(chan platform.Message, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(p.CallbackPath, popup.handleCallback)
	popup.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := popup.server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("Callback listener terminated unexpectedly", log.Error(serveErr))
		}
	}()

	opener := p.OpenBrowser
	if opener == nil {
		opener = openSystemBrowser
	}
	if err := opener(popupURL); err != nil {
		_ = popup.Close()
		return nil, fmt.Errorf("failed to open browser: %w", err)
	}

	logger.Debug("Opened external sign-in window", log.String("origin", origin))
	return popup, nil
}

type localPopup struct {
	origin   string
	server   *http.Server
	messages chan platform.Message

	mu          sync.Mutex
	callbackURL string
	closed      bool
	delivered   bool
}

// handleCallback captures the provider redirect and delivers it as a message.
func (lp *localPopup) handleCallback(w http.ResponseWriter, r *http.Request) {
	lp.mu.Lock()
	lp.callbackURL = lp.origin + r.URL.String()
	alreadyDelivered := lp.delivered
	lp.delivered = true
	lp.mu.Unlock()

	if !alreadyDelivered {
		data := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				data[key] = values[0]
			}
		}
		lp.messages <- platform.Message{Origin: lp.origin, Data: data}
	}

	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(callbackPageBody))
}

// Location returns the captured callback URL once the redirect has arrived.
// Before that the browser is on the external provider's origin, which a
// loopback listener cannot observe.
func (lp *localPopup) Location() (string, error) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.callbackURL == "" {
		return "", platform.ErrCrossOrigin
	}
	return lp.callbackURL, nil
}

// Closed reports whether the listener has been shut down.
func (lp *localPopup) Closed() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.closed
}

// Close shuts down the callback listener.
func (lp *localPopup) Close() error {
	lp.mu.Lock()
	if lp.closed {
		lp.mu.Unlock()
		return nil
	}
	lp.closed = true
	lp.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return lp.server.Shutdown(ctx)
}

// Messages returns the channel completion messages are delivered on.
func (lp *localPopup) Messages() <-chan platform.Message {
	return lp.messages
}

// openSystemBrowser opens the default browser for the current OS.
func openSystemBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
