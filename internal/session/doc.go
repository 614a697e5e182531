// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the per-visitor [models.SessionState] on the server.
//
// The browser only holds a signed token naming the session. The state itself
// lives in a [Store]: in process memory for a single instance, or in redis
// when several instances serve the same visitors.
//
// [Manager.Middleware] loads the state before the handler runs and persists
// it, when it changed, right before the response headers are written.
package session
