// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var sessionCtxKey = contextKey("session")

// WithSession attaches sess to ctx.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, sess)
}

// FromContext returns the session attached by the middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey).(*Session)
	return sess, ok && sess != nil
}

// State returns the session state attached to ctx. Without a session it
// returns a detached empty state whose changes are never persisted.
func State(ctx context.Context) *models.SessionState {
	if sess, ok := FromContext(ctx); ok {
		return sess.State
	}
	return &models.SessionState{}
}

// Middleware loads the visitor's session into the request context and saves
// it before the first byte of the response is written.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess, err := m.Load(r)
		if err != nil {
			log.Err(err).Msg("session could not be loaded")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := r.Context()
		sw := &sessionWriter{ResponseWriter: w}
		sw.commit = func() {
			if err := m.Save(ctx, w, sess); err != nil {
				log.Err(err).Str("session_id", sess.ID).Msg("session could not be saved")
			}
		}

		next.ServeHTTP(sw, r.WithContext(WithSession(ctx, sess)))
		sw.flush()
	})
}

// sessionWriter runs commit once, right before headers leave.
type sessionWriter struct {
	http.ResponseWriter
	commit func()
	once   sync.Once
}

func (w *sessionWriter) flush() {
	w.once.Do(w.commit)
}

func (w *sessionWriter) WriteHeader(code int) {
	w.flush()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
