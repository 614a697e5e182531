// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/google/uuid"
)

// Session is a loaded state together with the id it is stored under.
type Session struct {
	ID    string
	State *models.SessionState

	// stored is false until the state has been written to the store once.
	stored bool
}

// Manager reads and writes sessions through a [Store] and the session
// cookie.
type Manager struct {
	store      Store
	codec      *TokenCodec
	ttl        time.Duration
	cookieName string
	secure     bool
	newID      func() string

	logger *logger.Logger
}

// NewManager wires a Manager from the application configuration.
func NewManager(store Store, cfg config.StructuredConfig, logger *logger.Logger) *Manager {
	return &Manager{
		store:      store,
		codec:      NewTokenCodec(cfg.App.SessionSecret, cfg.App.SessionTTL),
		ttl:        cfg.App.SessionTTL,
		cookieName: cfg.Storage.Session.CookieName,
		secure:     cfg.Server.SecureCookies,
		newID:      newSessionID,
		logger:     logger,
	}
}

func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Load returns the session named by the request cookie. A missing, forged,
// expired or unknown token yields a fresh empty session. Only store failures
// are returned as errors.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return m.fresh(), nil
	}

	id, err := m.codec.Parse(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("discarding session cookie")
		return m.fresh(), nil
	}

	state, err := m.store.Get(r.Context(), id)
	if errors.Is(err, ErrSessionNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	return &Session{ID: id, State: state, stored: true}, nil
}

func (m *Manager) fresh() *Session {
	return &Session{ID: m.newID(), State: &models.SessionState{}}
}

// Save persists sess when its state changed. An emptied state is removed
// from the store and its cookie expired.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if !sess.State.Dirty() {
		return nil
	}

	if sess.State.IsEmpty() {
		if sess.stored {
			if err := m.store.Delete(ctx, sess.ID); err != nil {
				return fmt.Errorf("error deleting session: %w", err)
			}
			sess.stored = false
		}
		m.expireCookie(w)
		sess.State.MarkClean()
		return nil
	}

	if err := m.store.Set(ctx, sess.ID, sess.State, m.ttl); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	sess.stored = true

	token, err := m.codec.Issue(sess.ID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	sess.State.MarkClean()
	return nil
}

func (m *Manager) expireCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
