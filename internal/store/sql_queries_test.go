// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ncm-lead/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildFindNcmExactQuery(t *testing.T) {
	query, args, err := buildFindNcmExactQuery(dollar, "100630")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from ncm")
	require.Contains(t, q, "where ncm = $1")
	require.Contains(t, q, "limit 1")
	require.Equal(t, []any{"100630"}, args)
}

func TestBuildFindNcmByPrefixQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		code    string
		wantSQL string
		wantArg string
	}{
		{name: "postgres", builder: dollar, code: "1006", wantSQL: "ncm LIKE $1", wantArg: "1006%"},
		{name: "sqlite", builder: question, code: "1006", wantSQL: "ncm LIKE ?", wantArg: "1006%"},
		{name: "wildcards escaped", builder: question, code: "10%6_", wantSQL: "ncm LIKE ?", wantArg: `10\%6\_%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindNcmByPrefixQuery(tt.builder, tt.code)
			require.NoError(t, err)
			require.Contains(t, query, tt.wantSQL)
			require.Contains(t, strings.ToLower(query), "order by id")
			require.Equal(t, []any{tt.wantArg}, args)
		})
	}
}

func TestBuildInsertNcmBatchQuery(t *testing.T) {
	records := []models.NcmRecord{
		{Ncm: "1", Descricao: "d1", Cclasstrib: "c1", Cst: "s1", DescricaoCst: "ds1"},
		{Ncm: "2", Descricao: "d2", Cclasstrib: "c2", Cst: "s2", DescricaoCst: "ds2"},
	}

	query, args, err := buildInsertNcmBatchQuery(dollar, records)
	require.NoError(t, err)
	require.Contains(t, query, "INSERT INTO ncm (ncm,descricao,cclasstrib,cst,descricao_cst)")
	require.Contains(t, query, "($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")
	require.Len(t, args, 10)
	require.Equal(t, "ds2", args[9])

	_, _, err = buildInsertNcmBatchQuery(dollar, nil)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestBuildInsertLeadQuery(t *testing.T) {
	lead := models.Lead{Nome: "Ana", Email: "ana@x.com", Telefone: "11", Cnpj: "123", Senha: "hash", Ncm: "100630"}

	query, args, err := buildInsertLeadQuery(question, lead)
	require.NoError(t, err)
	require.Contains(t, query, "INSERT INTO leads (nome,email,telefone,cnpj,senha,ncm) VALUES (?,?,?,?,?,?)")
	require.Equal(t, []any{"Ana", "ana@x.com", "11", "123", "hash", "100630"}, args)
}

func TestBuildUpdateLeadQuery(t *testing.T) {
	hash := "new-hash"

	tests := []struct {
		name       string
		update     models.LeadUpdate
		wantSenha  bool
		wantArgLen int
	}{
		{
			name:       "without password",
			update:     models.LeadUpdate{OldEmail: "old@x.com", Nome: "N", Email: "new@x.com", Telefone: "T", Cnpj: "C"},
			wantArgLen: 5,
		},
		{
			name:       "with password",
			update:     models.LeadUpdate{OldEmail: "old@x.com", Nome: "N", Email: "new@x.com", Telefone: "T", Cnpj: "C", SenhaHash: &hash},
			wantSenha:  true,
			wantArgLen: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateLeadQuery(dollar, tt.update)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "update leads set nome = $1, email = $2, telefone = $3, cnpj = $4")
			require.Equal(t, tt.wantSenha, strings.Contains(q, "senha ="))
			require.Len(t, args, tt.wantArgLen)
			// old email is always the last argument, in the WHERE clause
			require.Equal(t, "old@x.com", args[len(args)-1])
		})
	}
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, "1006", escapeLike("1006"))
	require.Equal(t, `a\%b\_c\\`, escapeLike(`a%b_c\`))
}
