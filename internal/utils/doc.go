// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the HTTP server and the
// operator CLI: the JSON response writer and the resty client wrapper.
package utils
