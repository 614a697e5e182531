// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package importer loads the NCM reference spreadsheet, exported as CSV,
// into the ncm table.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/MKhiriev/ncm-lead/models"
)

// DefaultBatchSize is how many rows go into one transaction.
const DefaultBatchSize = 100

// Header columns of the source spreadsheet.
const (
	ColumnNcm          = "NCM"
	ColumnDescricao    = "Descrição"
	ColumnCclasstrib   = "Cclasstrib"
	ColumnCst          = "CST"
	ColumnDescricaoCst = "Descrição CST-IBS/CBS"
)

var (
	ErrMissingColumn = errors.New("missing csv column")
	ErrEmptyFile     = errors.New("csv file has no header")
)

// Result summarizes an import run.
type Result struct {
	Deleted  int64
	Imported int
	Total    int64
}

type Importer struct {
	repo      store.NcmRepository
	batchSize int

	// progress, if set, is called after every committed batch with the
	// number of rows imported so far.
	progress func(imported int)

	logger *logger.Logger
}

type Option func(*Importer)

func WithBatchSize(n int) Option {
	return func(i *Importer) {
		if n > 0 {
			i.batchSize = n
		}
	}
}

func WithProgress(fn func(imported int)) Option {
	return func(i *Importer) {
		i.progress = fn
	}
}

func New(repo store.NcmRepository, logger *logger.Logger, opts ...Option) *Importer {
	i := &Importer{repo: repo, batchSize: DefaultBatchSize, logger: logger}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportFile opens path and runs [Importer.Import] on it.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("error opening csv file: %w", err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import replaces the whole ncm table with the rows read from r. The header
// is checked before anything is deleted.
func (i *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, ErrEmptyFile
	}
	if err != nil {
		return Result{}, fmt.Errorf("error reading csv header: %w", err)
	}
	columns, err := indexColumns(header)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if res.Deleted, err = i.repo.DeleteAll(ctx); err != nil {
		return Result{}, fmt.Errorf("error clearing ncm table: %w", err)
	}
	i.logger.Info().Int64("deleted", res.Deleted).Msg("previous ncm rows removed")

	batch := make([]models.NcmRecord, 0, i.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := i.repo.InsertBatch(ctx, batch); err != nil {
			return fmt.Errorf("error inserting rows %d-%d: %w", res.Imported+1, res.Imported+len(batch), err)
		}
		res.Imported += len(batch)
		batch = batch[:0]
		if i.progress != nil {
			i.progress(res.Imported)
		}
		return nil
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("error reading csv: %w", err)
		}

		batch = append(batch, columns.record(row))
		if len(batch) == i.batchSize {
			if err = flush(); err != nil {
				return res, err
			}
		}
	}
	if err = flush(); err != nil {
		return res, err
	}

	if res.Total, err = i.repo.Count(ctx); err != nil {
		return res, fmt.Errorf("error counting ncm rows: %w", err)
	}

	i.logger.Info().Int("imported", res.Imported).Int64("total", res.Total).Msg("ncm import finished")
	return res, nil
}

type columnIndex struct {
	ncm, descricao, cclasstrib, cst, descricaoCst int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for n, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		pos[name] = n
	}

	lookup := func(name string) (int, error) {
		n, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return n, nil
	}

	var (
		idx columnIndex
		err error
	)
	if idx.ncm, err = lookup(ColumnNcm); err != nil {
		return idx, err
	}
	if idx.descricao, err = lookup(ColumnDescricao); err != nil {
		return idx, err
	}
	if idx.cclasstrib, err = lookup(ColumnCclasstrib); err != nil {
		return idx, err
	}
	if idx.cst, err = lookup(ColumnCst); err != nil {
		return idx, err
	}
	if idx.descricaoCst, err = lookup(ColumnDescricaoCst); err != nil {
		return idx, err
	}
	return idx, nil
}

func (c columnIndex) record(row []string) models.NcmRecord {
	field := func(n int) string {
		if n < len(row) {
			return row[n]
		}
		return ""
	}

	return models.NcmRecord{
		Ncm:          field(c.ncm),
		Descricao:    field(c.descricao),
		Cclasstrib:   field(c.cclasstrib),
		Cst:          field(c.cst),
		DescricaoCst: field(c.descricaoCst),
	}
}
