// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"testing"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *WelcomeComposer {
	return NewWelcomeComposer(config.Notifier{
		FromEmail: "onboarding@resend.dev",
		FromName:  "Conta Azul - Crédito Tributário",
	}, "https://credito.example.com/")
}

func TestWelcomeComposer_Compose(t *testing.T) {
	msg, err := testComposer().Compose(models.WelcomeEmail{
		To:    "ana@example.com",
		Nome:  "Ana",
		Senha: "segredo1",
		Ncm:   &models.NcmData{Ncm: "100630", Descricao: "Arroz", Cclasstrib: "200003"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Conta Azul - Crédito Tributário <onboarding@resend.dev>", msg.From)
	assert.Equal(t, []string{"ana@example.com"}, msg.To)
	assert.Equal(t, WelcomeSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "Bem-vindo, Ana!")
	assert.Contains(t, msg.HTML, "segredo1")
	assert.Contains(t, msg.HTML, "100630")
	assert.Contains(t, msg.HTML, "200003")
	assert.Contains(t, msg.HTML, `href="https://credito.example.com/login"`)
	assert.NotContains(t, msg.HTML, notAvailable)
}

func TestWelcomeComposer_Compose_WithoutLookup(t *testing.T) {
	msg, err := testComposer().Compose(models.WelcomeEmail{To: "ana@example.com", Nome: "Ana", Senha: "segredo1"})

	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "<strong>Código:</strong> N/A")
	assert.Contains(t, msg.HTML, "<strong>Descrição:</strong> N/A")
	assert.Contains(t, msg.HTML, "<strong>Cclasstrib:</strong> N/A")
}

func TestWelcomeComposer_Compose_PartialNcm(t *testing.T) {
	msg, err := testComposer().Compose(models.WelcomeEmail{
		To:  "ana@example.com",
		Ncm: &models.NcmData{Ncm: "100630"},
	})

	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "<strong>Código:</strong> 100630")
	assert.Contains(t, msg.HTML, "<strong>Cclasstrib:</strong> N/A")
}

func TestWelcomeComposer_Compose_EscapesInput(t *testing.T) {
	msg, err := testComposer().Compose(models.WelcomeEmail{
		To:   "ana@example.com",
		Nome: `<script>alert("x")</script>`,
	})

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}
