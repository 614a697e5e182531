// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/ncm-lead/models"
)

// SmokeInput is the visitor replayed by [Smoke].
type SmokeInput struct {
	Ncm      string
	Nome     string
	Email    string
	Telefone string
	Cnpj     string
	Senha    string
}

// SmokeStep is the outcome of one step.
type SmokeStep struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Smoke walks lookup, registration, result, logout, login and profile in
// order and stops at the first failing step. report, if set, is called after
// every step.
func Smoke(ctx context.Context, client FlowClient, in SmokeInput, report func(SmokeStep)) error {
	steps := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"lookup", func(ctx context.Context) error {
			return client.Lookup(ctx, in.Ncm)
		}},
		{"lead page", func(ctx context.Context) error {
			return expectPage(ctx, client, "/lead")
		}},
		{"register", func(ctx context.Context) error {
			return client.SaveLead(ctx, models.RegisterRequest{
				Nome: in.Nome, Email: in.Email, Telefone: in.Telefone, Cnpj: in.Cnpj, Senha: in.Senha,
			})
		}},
		{"result page", func(ctx context.Context) error {
			return expectPage(ctx, client, "/resultado")
		}},
		{"simulation page", func(ctx context.Context) error {
			return expectPage(ctx, client, "/simulacao")
		}},
		{"logout", client.Logout},
		{"profile requires login", func(ctx context.Context) error {
			page, err := client.Page(ctx, "/perfil")
			if err != nil {
				return err
			}
			if page.Location != "/login" {
				return fmt.Errorf("expected redirect to /login, got %d %q", page.Status, page.Location)
			}
			return nil
		}},
		{"login", func(ctx context.Context) error {
			user, err := client.Login(ctx, models.LoginRequest{Email: in.Email, Senha: in.Senha})
			if err != nil {
				return err
			}
			if user.Email != in.Email {
				return fmt.Errorf("signed in as %q, expected %q", user.Email, in.Email)
			}
			return nil
		}},
		{"profile page", func(ctx context.Context) error {
			return expectPage(ctx, client, "/perfil")
		}},
	}

	for _, s := range steps {
		start := time.Now()
		err := s.run(ctx)
		if report != nil {
			report(SmokeStep{Name: s.name, Duration: time.Since(start), Err: err})
		}
		if err != nil {
			return fmt.Errorf("smoke step %q: %w", s.name, err)
		}
	}
	return nil
}

func expectPage(ctx context.Context, client FlowClient, path string) error {
	page, err := client.Page(ctx, path)
	if err != nil {
		return err
	}
	if page.Status != http.StatusOK {
		return fmt.Errorf("GET %s answered %d (location %q)", path, page.Status, page.Location)
	}
	return nil
}
