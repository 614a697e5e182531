// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFlow mimics the server's gates with a single session.
type fakeFlow struct {
	looked, identified, signedIn bool
	lookupErr                    error
	calls                        []string
}

func (f *fakeFlow) Lookup(context.Context, string) error {
	f.calls = append(f.calls, "lookup")
	if f.lookupErr != nil {
		return f.lookupErr
	}
	f.looked = true
	return nil
}

func (f *fakeFlow) SaveLead(context.Context, models.RegisterRequest) error {
	f.calls = append(f.calls, "save")
	f.identified, f.signedIn = true, true
	return nil
}

func (f *fakeFlow) Login(_ context.Context, req models.LoginRequest) (models.UserSummary, error) {
	f.calls = append(f.calls, "login")
	f.signedIn = true
	return models.UserSummary{Email: req.Email}, nil
}

func (f *fakeFlow) UpdateProfile(context.Context, models.ProfileUpdateRequest) (models.ProfileUpdateResponse, error) {
	return models.ProfileUpdateResponse{Success: true}, nil
}

func (f *fakeFlow) Page(_ context.Context, path string) (PageResult, error) {
	f.calls = append(f.calls, path)
	switch {
	case path == "/lead" && !f.looked,
		(path == "/resultado" || path == "/simulacao") && !f.identified:
		return PageResult{Status: http.StatusFound, Location: "/"}, nil
	case path == "/perfil" && !f.signedIn:
		return PageResult{Status: http.StatusFound, Location: "/login"}, nil
	case path == "/logout":
		*f = fakeFlow{calls: f.calls}
		return PageResult{Status: http.StatusFound, Location: "/"}, nil
	}
	return PageResult{Status: http.StatusOK}, nil
}

func (f *fakeFlow) Logout(ctx context.Context) error {
	_, err := f.Page(ctx, "/logout")
	return err
}

func (f *fakeFlow) Version(context.Context) (models.AppBuildInfo, error) {
	return models.AppBuildInfo{}, nil
}

var smokeInput = SmokeInput{
	Ncm: "100630", Nome: "Smoke", Email: "smoke@example.com", Telefone: "0", Cnpj: "0", Senha: "segredo1",
}

func TestSmoke_AllSteps(t *testing.T) {
	flow := &fakeFlow{}
	var steps []SmokeStep

	err := Smoke(context.Background(), flow, smokeInput, func(s SmokeStep) { steps = append(steps, s) })

	require.NoError(t, err)
	require.Len(t, steps, 9)
	for _, s := range steps {
		assert.NoError(t, s.Err, s.Name)
	}
	assert.Equal(t, "lookup", flow.calls[0])
	assert.Equal(t, "/perfil", flow.calls[len(flow.calls)-1])
}

func TestSmoke_StopsAtFirstFailure(t *testing.T) {
	flow := &fakeFlow{lookupErr: ErrNotFound}
	var steps []SmokeStep

	err := Smoke(context.Background(), flow, smokeInput, func(s SmokeStep) { steps = append(steps, s) })

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, steps, 1)
	assert.Equal(t, []string{"lookup"}, flow.calls)
}
