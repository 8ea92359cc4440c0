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

package localredirect

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-go/platform"
)

type LocalRedirectTestSuite struct {
	suite.Suite
}

func TestLocalRedirectTestSuite(t *testing.T) {
	suite.Run(t, new(LocalRedirectTestSuite))
}

func (ts *LocalRedirectTestSuite) openPopup() (*Provider, platform.Popup) {
	provider := New("127.0.0.1:0", "/callback")
	provider.OpenBrowser = func(string) error { return nil }

	popup, err := provider.OpenPopup("https://idp.example/authorize", "", "")
	ts.Require().NoError(err)
	return provider, popup
}

func (ts *LocalRedirectTestSuite) TestCallbackDeliversMessage() {
	provider, popup := ts.openPopup()
	defer func() { _ = popup.Close() }()

	origin := provider.Origin()
	ts.Require().NotEmpty(origin)

	// Until the redirect arrives, the location is unreadable.
	_, err := popup.Location()
	ts.Require().True(errors.Is(err, platform.ErrCrossOrigin))

	resp, err := http.Get(origin + "/callback?code=auth-code&state=xyz")
	ts.Require().NoError(err)
	body, err := io.ReadAll(resp.Body)
	ts.Require().NoError(err)
	ts.Require().NoError(resp.Body.Close())
	ts.Contains(string(body), "You may close this window")

	select {
	case msg := <-popup.Messages():
		ts.Equal(origin, msg.Origin)
		ts.Equal("auth-code", msg.Data["code"])
		ts.Equal("xyz", msg.Data["state"])
	case <-time.After(2 * time.Second):
		ts.FailNow("no message delivered")
	}

	location, err := popup.Location()
	ts.Require().NoError(err)
	ts.Contains(location, "code=auth-code")
}

func (ts *LocalRedirectTestSuite) TestDuplicateCallbackDeliversOnce() {
	provider, popup := ts.openPopup()
	defer func() { _ = popup.Close() }()

	origin := provider.Origin()
	for i := 0; i < 2; i++ {
		resp, err := http.Get(origin + "/callback?code=auth-code")
		ts.Require().NoError(err)
		ts.Require().NoError(resp.Body.Close())
	}

	select {
	case <-popup.Messages():
	case <-time.After(2 * time.Second):
		ts.FailNow("no message delivered")
	}

	select {
	case <-popup.Messages():
		ts.FailNow("duplicate callback delivered a second message")
	case <-time.After(100 * time.Millisecond):
	}
}

func (ts *LocalRedirectTestSuite) TestCloseShutsDownListener() {
	provider, popup := ts.openPopup()
	origin := provider.Origin()

	ts.False(popup.Closed())
	ts.Require().NoError(popup.Close())
	ts.True(popup.Closed())

	// Closing again is a no-op.
	ts.Require().NoError(popup.Close())

	_, err := http.Get(origin + "/callback?code=late")
	ts.Error(err)
}

func (ts *LocalRedirectTestSuite) TestBrowserLaunchFailureClosesListener() {
	provider := New("127.0.0.1:0", "")
	provider.OpenBrowser = func(string) error { return errors.New("no browser") }

	_, err := provider.OpenPopup("https://idp.example/authorize", "", "")
	ts.Require().Error(err)
	ts.Contains(err.Error(), "failed to open browser")
}
