// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/app"
	"github.com/MKhiriev/ncm-lead/internal/crypto"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/MKhiriev/ncm-lead/internal/validators"
	"github.com/MKhiriev/ncm-lead/models"
)

// leadService is the concrete implementation of LeadService.
type leadService struct {
	// leadRepository persists leads. Its Create and Update run in their own
	// transactions, so the welcome email is only enqueued after commit.
	leadRepository store.LeadRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// notifier may be nil, in which case no welcome email is scheduled.
	notifier WelcomeNotifier

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewLeadService wires a LeadService to its collaborators.
func NewLeadService(
	leadRepository store.LeadRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	notifier WelcomeNotifier,
	m *metrics.Metrics,
	logger *logger.Logger,
) LeadService {
	return &leadService{
		leadRepository: leadRepository,
		hasher:         hasher,
		validator:      validator,
		notifier:       notifier,
		metrics:        m,
		logger:         logger,
	}
}

// Register creates a lead from req.
//
// The ncm column is taken from the session lookup and is empty when the
// visitor registers without one. On success the visitor is signed in,
// lead_data is filled from the submitted fields and the welcome email is
// enqueued. A failure to enqueue is logged and never returned.
//
// Returns:
//   - *ValidationError for a missing field or a short password.
//   - ErrDuplicateEmail if the email is taken.
//   - A wrapped storage or hashing error otherwise.
func (s *leadService) Register(ctx context.Context, state *models.SessionState, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.TrimSpace(req.Email)
	req.Telefone = strings.TrimSpace(req.Telefone)
	req.Cnpj = strings.TrimSpace(req.Cnpj)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected by validator")
		return fieldValidationError(err)
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		s.metrics.ObserveRegistration(err)
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	var ncmCode string
	if state.NcmData != nil {
		ncmCode = state.NcmData.Ncm
	}

	lead := models.Lead{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Cnpj:     req.Cnpj,
		Senha:    hash,
		Ncm:      ncmCode,
	}

	err = s.leadRepository.Create(ctx, lead)
	s.metrics.ObserveRegistration(err)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", lead.Email).Msg("email already registered")
		return ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("email", lead.Email).Msg("lead creation ended with error")
		return fmt.Errorf("lead creation ended with error: %w", err)
	}

	state.SignIn(lead.Email, lead.Nome)
	if err = state.SetLeadData(lead.Data()); err != nil {
		// unreachable after SignIn
		log.Err(err).Msg("storing lead data in session ended with error")
	}

	s.enqueueWelcome(ctx, lead, req.Senha, state.NcmData)

	return nil
}

func (s *leadService) enqueueWelcome(ctx context.Context, lead models.Lead, password string, ncm *models.NcmData) {
	if s.notifier == nil {
		return
	}

	email := models.WelcomeEmail{
		To:    lead.Email,
		Nome:  lead.Nome,
		Senha: password,
	}
	if ncm != nil {
		ncmCopy := *ncm
		email.Ncm = &ncmCopy
	}

	if err := s.notifier.Enqueue(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("email", lead.Email).Msg("welcome email was not scheduled")
	}
}

// Authenticate verifies email and password and signs the visitor in.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Hashes in a legacy format or with an outdated cost are replaced on a
// successful sign-in; a failure to do so is only logged.
func (s *leadService) Authenticate(ctx context.Context, state *models.SessionState, req models.LoginRequest) (models.UserSummary, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("login rejected by validator")
		return models.UserSummary{}, newValidationError(app.MsgCredentialsRequired, err)
	}

	lead, err := s.leadRepository.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrLeadNotFound) {
		s.metrics.ObserveLogin(ErrInvalidCredentials)
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.UserSummary{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("lead lookup ended with error")
		return models.UserSummary{}, fmt.Errorf("lead lookup ended with error: %w", err)
	}

	if err = s.hasher.Compare(lead.Senha, req.Senha); err != nil {
		s.metrics.ObserveLogin(ErrInvalidCredentials)
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Err(err).Str("email", lead.Email).Msg("stored password hash could not be verified")
		}
		return models.UserSummary{}, ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(lead.Senha) {
		s.rehash(ctx, lead, req.Senha)
	}

	state.SignIn(lead.Email, lead.Nome)
	s.metrics.ObserveLogin(nil)

	return models.UserSummary{Nome: lead.Nome, Email: lead.Email}, nil
}

func (s *leadService) rehash(ctx context.Context, lead models.Lead, password string) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("email", lead.Email).Msg("password rehash ended with error")
		return
	}

	err = s.leadRepository.Update(ctx, models.LeadUpdate{
		OldEmail:  lead.Email,
		Nome:      lead.Nome,
		Email:     lead.Email,
		Telefone:  lead.Telefone,
		Cnpj:      lead.Cnpj,
		SenhaHash: &hash,
	})
	if err != nil {
		log.Err(err).Str("email", lead.Email).Msg("storing rehashed password ended with error")
		return
	}

	log.Info().Str("email", lead.Email).Msg("password hash upgraded")
}

func (s *leadService) Profile(ctx context.Context, state *models.SessionState) (models.LeadData, error) {
	if !state.Authenticated {
		return models.LeadData{}, ErrUnauthenticated
	}

	lead, err := s.findSignedIn(ctx, state)
	if err != nil {
		return models.LeadData{}, err
	}

	return lead.Data(), nil
}

// UpdateProfile rewrites the signed-in lead, addressed by the email held in
// the session before the edit.
//
// Returns:
//   - ErrUnauthenticated if nobody is signed in.
//   - *ValidationError for a missing field or a short new password.
//   - ErrWrongCurrentPassword if senha_atual does not match.
//   - ErrEmailTakenByAnotherUser if the new email belongs to another lead.
//   - ErrLeadNotFound if the lead no longer exists.
func (s *leadService) UpdateProfile(ctx context.Context, state *models.SessionState, req models.ProfileUpdateRequest) (models.ProfileUpdate, error) {
	log := logger.FromContext(ctx)

	if !state.Authenticated {
		return models.ProfileUpdate{}, ErrUnauthenticated
	}

	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.TrimSpace(req.Email)
	req.Telefone = strings.TrimSpace(req.Telefone)
	req.Cnpj = strings.TrimSpace(req.Cnpj)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("profile update rejected by validator")
		return models.ProfileUpdate{}, fieldValidationError(err)
	}

	update := models.LeadUpdate{
		OldEmail: state.UserEmail,
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Cnpj:     req.Cnpj,
	}

	if req.ChangesPassword() {
		lead, err := s.findSignedIn(ctx, state)
		if err != nil {
			return models.ProfileUpdate{}, err
		}

		if err = s.hasher.Compare(lead.Senha, req.SenhaAtual); err != nil {
			log.Debug().Err(err).Str("email", lead.Email).Msg("current password mismatch")
			return models.ProfileUpdate{}, ErrWrongCurrentPassword
		}

		hash, err := s.hasher.Hash(req.SenhaNova)
		if err != nil {
			log.Err(err).Msg("password hashing ended with error")
			return models.ProfileUpdate{}, fmt.Errorf("password hashing ended with error: %w", err)
		}
		update.SenhaHash = &hash
	}

	err := s.leadRepository.Update(ctx, update)
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.ProfileUpdate{}, ErrEmailTakenByAnotherUser
	case errors.Is(err, store.ErrLeadNotFound):
		log.Warn().Str("email", update.OldEmail).Msg("signed-in lead vanished before update")
		return models.ProfileUpdate{}, ErrLeadNotFound
	case err != nil:
		log.Err(err).Str("email", update.OldEmail).Msg("lead update ended with error")
		return models.ProfileUpdate{}, fmt.Errorf("lead update ended with error: %w", err)
	}

	if update.Email != state.UserEmail {
		state.SetUserEmail(update.Email)
	}
	nameChanged := update.Nome != state.UserName
	if nameChanged {
		state.SetUserName(update.Nome)
	}

	data := models.LeadData{
		Nome:     update.Nome,
		Email:    update.Email,
		Telefone: update.Telefone,
		Cnpj:     update.Cnpj,
	}
	if state.LeadData != nil {
		_ = state.SetLeadData(data)
	}

	return models.ProfileUpdate{Lead: data, NameChanged: nameChanged}, nil
}

// IdentifyAuthenticated fills lead_data from the store for a signed-in
// visitor. A vanished lead is not an error, the caller just carries on as
// if the visitor were anonymous.
func (s *leadService) IdentifyAuthenticated(ctx context.Context, state *models.SessionState) (bool, error) {
	if !state.Authenticated {
		return false, nil
	}

	lead, err := s.leadRepository.FindByEmail(ctx, state.UserEmail)
	if errors.Is(err, store.ErrLeadNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", state.UserEmail).Msg("lead lookup ended with error")
		return false, fmt.Errorf("lead lookup ended with error: %w", err)
	}

	if err = state.SetLeadData(lead.Data()); err != nil {
		return false, err
	}
	return true, nil
}

// findSignedIn loads the lead the session points at. When it is gone the
// session is cleared.
func (s *leadService) findSignedIn(ctx context.Context, state *models.SessionState) (models.Lead, error) {
	lead, err := s.leadRepository.FindByEmail(ctx, state.UserEmail)
	if errors.Is(err, store.ErrLeadNotFound) {
		logger.FromContext(ctx).Warn().Str("email", state.UserEmail).Msg("signed-in lead no longer exists")
		state.Clear()
		return models.Lead{}, ErrLeadNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", state.UserEmail).Msg("lead lookup ended with error")
		return models.Lead{}, fmt.Errorf("lead lookup ended with error: %w", err)
	}
	return lead, nil
}

// fieldValidationError turns a validator error into the message shown on
// the registration and profile forms.
func fieldValidationError(err error) error {
	if errors.Is(err, validators.ErrPasswordTooShort) {
		return newValidationError(app.MsgPasswordTooShort, err)
	}

	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return newValidationError(app.MsgFieldRequired(fe.Field), err)
	}

	return newValidationError(app.MsgInvalidBody, err)
}
