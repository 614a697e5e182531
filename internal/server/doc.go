// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server next to the background workers and
// shuts both down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
