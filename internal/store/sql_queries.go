// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ncm-lead/models"
)

const (
	ncmTable   = "ncm"
	leadsTable = "leads"
)

var (
	ncmColumns = []string{
		"id",
		"ncm",
		"COALESCE(descricao, '')",
		"COALESCE(cclasstrib, '')",
		"COALESCE(cst, '')",
		"COALESCE(descricao_cst, '')",
	}

	leadColumns = []string{
		"id",
		"nome",
		"email",
		"COALESCE(telefone, '')",
		"COALESCE(cnpj, '')",
		"senha",
		"COALESCE(ncm, '')",
		"created_at",
	}
)

func buildFindNcmExactQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Select(ncmColumns...).
		From(ncmTable).
		Where(sq.Eq{"ncm": code}).
		Limit(1).
		ToSql()
}

// buildFindNcmByPrefixQuery matches ncm LIKE code%. LIKE metacharacters in
// code are escaped so that they match literally.
func buildFindNcmByPrefixQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Select(ncmColumns...).
		From(ncmTable).
		Where(sq.Expr(`ncm LIKE ? ESCAPE '\'`, escapeLike(code)+"%")).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertNcmBatchQuery(b sq.StatementBuilderType, records []models.NcmRecord) (string, []any, error) {
	if len(records) == 0 {
		return "", nil, fmt.Errorf("%w: empty batch", ErrBuildingSQLQuery)
	}

	insert := b.Insert(ncmTable).Columns("ncm", "descricao", "cclasstrib", "cst", "descricao_cst")
	for _, r := range records {
		insert = insert.Values(r.Ncm, r.Descricao, r.Cclasstrib, r.Cst, r.DescricaoCst)
	}
	return insert.ToSql()
}

func buildDeleteAllNcmQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(ncmTable).ToSql()
}

func buildCountNcmQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(ncmTable).ToSql()
}

func buildInsertLeadQuery(b sq.StatementBuilderType, lead models.Lead) (string, []any, error) {
	return b.Insert(leadsTable).
		Columns("nome", "email", "telefone", "cnpj", "senha", "ncm").
		Values(lead.Nome, lead.Email, lead.Telefone, lead.Cnpj, lead.Senha, lead.Ncm).
		ToSql()
}

func buildFindLeadByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(leadColumns...).
		From(leadsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildUpdateLeadQuery updates every public field, and the password hash
// only when one is supplied, for the row keyed by the old email.
func buildUpdateLeadQuery(b sq.StatementBuilderType, update models.LeadUpdate) (string, []any, error) {
	query := b.Update(leadsTable).
		Set("nome", update.Nome).
		Set("email", update.Email).
		Set("telefone", update.Telefone).
		Set("cnpj", update.Cnpj)

	if update.SenhaHash != nil {
		query = query.Set("senha", *update.SenhaHash)
	}

	return query.Where(sq.Eq{"email": update.OldEmail}).ToSql()
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
