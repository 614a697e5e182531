// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web front of the lead flow: the HTML pages,
// the JSON endpoints they call, and the middleware chain around them.
//
// Every request goes through trace id assignment, access logging, panic
// recovery, compression and the session middleware before it reaches a
// handler. Handlers read and mutate the visitor's session state and delegate
// everything else to the service layer.
package http
