// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the whole resty API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL that keeps cookies
// between requests and does not follow redirects, so callers can assert on
// the Location of page gates.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}
