// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/models"
)

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "Bem-vindo ao Simulador de Crédito Tributário - Conta Azul"

const notAvailable = "N/A"

type welcomeTemplateData struct {
	Nome       string
	Email      string
	Senha      string
	Ncm        string
	Descricao  string
	Cclasstrib string
	LoginURL   string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #2787e9; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Conta Azul</h1>
    <p style="color: white; margin: 5px 0 0 0;">Crédito Tributário</p>
  </div>
  <div style="padding: 30px; background-color: #f9f9f9;">
    <h2 style="color: #333;">Bem-vindo, {{.Nome}}!</h2>
    <p style="color: #666; line-height: 1.6;">Sua conta foi criada com sucesso no Mapeador e Simulador de Crédito Tributário da Conta Azul.</p>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #2787e9; margin-top: 0;">Seus dados de acesso:</h3>
      <p style="margin: 10px 0;"><strong>E-mail:</strong> {{.Email}}</p>
      <p style="margin: 10px 0;"><strong>Senha:</strong> {{.Senha}}</p>
    </div>
    <div style="background-color: #e6f4ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #2787e9; margin-top: 0;">NCM Consultado:</h3>
      <p style="margin: 10px 0;"><strong>Código:</strong> {{.Ncm}}</p>
      <p style="margin: 10px 0;"><strong>Descrição:</strong> {{.Descricao}}</p>
      <p style="margin: 10px 0;"><strong>Cclasstrib:</strong> {{.Cclasstrib}}</p>
    </div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.LoginURL}}" style="background-color: #2787e9; color: white; padding: 12px 30px; text-decoration: none; border-radius: 50px; display: inline-block;">Acessar Plataforma</a>
    </div>
    <p style="color: #999; font-size: 12px; text-align: center; margin-top: 30px;">Esta é uma mensagem automática. Por favor, não responda este e-mail.</p>
  </div>
</div>
`))

// WelcomeComposer renders [models.WelcomeEmail] into a [Message].
type WelcomeComposer struct {
	from     string
	loginURL string
}

func NewWelcomeComposer(notifierCfg config.Notifier, publicURL string) *WelcomeComposer {
	return &WelcomeComposer{
		from:     fmt.Sprintf("%s <%s>", notifierCfg.FromName, notifierCfg.FromEmail),
		loginURL: strings.TrimRight(publicURL, "/") + "/login",
	}
}

// Compose renders email. Missing NCM fields are shown as "N/A".
func (c *WelcomeComposer) Compose(email models.WelcomeEmail) (Message, error) {
	data := welcomeTemplateData{
		Nome:       email.Nome,
		Email:      email.To,
		Senha:      email.Senha,
		Ncm:        notAvailable,
		Descricao:  notAvailable,
		Cclasstrib: notAvailable,
		LoginURL:   c.loginURL,
	}
	if email.Ncm != nil {
		data.Ncm = orNotAvailable(email.Ncm.Ncm)
		data.Descricao = orNotAvailable(email.Ncm.Descricao)
		data.Cclasstrib = orNotAvailable(email.Ncm.Cclasstrib)
	}

	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrComposingEmail, err)
	}

	return Message{
		From:    c.from,
		To:      []string{email.To},
		Subject: WelcomeSubject,
		HTML:    buf.String(),
	}, nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
