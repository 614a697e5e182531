// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NcmRecord is a row of the "ncm" reference table: a Mercosur Common
// Nomenclature code together with its tax-classification codes.
//
// Records are bulk-loaded by the importer and are read-only for the web flow.
// The Ncm code is not unique, several rows may share a code or a prefix.
type NcmRecord struct {
	// ID is the surrogate key of the row. It is never exposed via JSON.
	ID int64 `json:"-"`

	// Ncm is the merchandise classification code (e.g. "100630").
	Ncm string `json:"ncm"`

	// Descricao is the free-text description of the merchandise.
	Descricao string `json:"descricao"`

	// Cclasstrib is the tax-classification code associated with the NCM.
	Cclasstrib string `json:"cclasstrib"`

	// Cst is the secondary classification code.
	Cst string `json:"cst"`

	// DescricaoCst is the free-text description of Cst.
	DescricaoCst string `json:"descricao_cst"`
}

// TableName returns the name of the database table associated with NcmRecord.
func (n NcmRecord) TableName() string {
	return "ncm"
}

// Data returns the public fields of the record as they are kept in the
// visitor's session.
func (n NcmRecord) Data() NcmData {
	return NcmData{
		Ncm:          n.Ncm,
		Descricao:    n.Descricao,
		Cclasstrib:   n.Cclasstrib,
		Cst:          n.Cst,
		DescricaoCst: n.DescricaoCst,
	}
}

// NcmData is the session copy of the last successfully looked-up NcmRecord.
type NcmData struct {
	Ncm          string `json:"ncm"`
	Descricao    string `json:"descricao"`
	Cclasstrib   string `json:"cclasstrib"`
	Cst          string `json:"cst"`
	DescricaoCst string `json:"descricao_cst"`
}
