// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var ErrInvalidBody = errors.New("invalid request body")
