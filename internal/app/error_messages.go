// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing messages written into JSON error bodies.
// The product is Brazilian, so messages are in Portuguese.
package app

import "fmt"

const (
	// MsgNcmRequired is returned by POST /consultar for an empty code.
	MsgNcmRequired = "Código NCM é obrigatório"

	// MsgNcmNotFound is returned when neither an exact nor a prefix match
	// exists.
	MsgNcmNotFound = "NCM não encontrado"

	// MsgPasswordTooShort is returned when a new password has fewer than six
	// characters.
	MsgPasswordTooShort = "Senha deve ter no mínimo 6 caracteres"

	// MsgEmailAlreadyExists is returned by registration for a taken email.
	MsgEmailAlreadyExists = "E-mail já cadastrado"

	// MsgEmailTakenByAnotherUser is returned by a profile update whose new
	// email belongs to another lead.
	MsgEmailTakenByAnotherUser = "E-mail já cadastrado por outro usuário"

	// MsgCredentialsRequired is returned by POST /api/login when email or
	// password is missing.
	MsgCredentialsRequired = "E-mail e senha são obrigatórios"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "E-mail ou senha inválidos"

	// MsgWrongCurrentPassword is returned by a profile update whose
	// senha_atual does not match.
	MsgWrongCurrentPassword = "Senha atual incorreta"

	// MsgUnauthenticated is returned by endpoints that need a logged-in lead.
	MsgUnauthenticated = "Não autenticado"

	// MsgLeadNotFound is returned when the session points at a lead that no
	// longer exists.
	MsgLeadNotFound = "Usuário não encontrado"

	// MsgInvalidBody is returned when the request body is not valid JSON.
	MsgInvalidBody = "Requisição inválida"

	// MsgInternalServerError hides unexpected failures from the client.
	MsgInternalServerError = "Erro interno do servidor"
)

// MsgFieldRequired formats the message for a missing required field.
func MsgFieldRequired(field string) string {
	return fmt.Sprintf("Campo %s é obrigatório", field)
}
