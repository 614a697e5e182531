// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/mock"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const header = "NCM,Descrição,Cclasstrib,CST,Descrição CST-IBS/CBS\n"

func csvRows(n int) string {
	var b strings.Builder
	b.WriteString(header)
	for i := range n {
		fmt.Fprintf(&b, "1006%04d,Arroz %d,200003,200,\"Alíquota reduzida, 60%%\"\n", i, i)
	}
	return b.String()
}

func TestImport_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNcmRepository(ctrl)

	var sizes []int
	gomock.InOrder(
		repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(7), nil),
		repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []models.NcmRecord) error {
				sizes = append(sizes, len(records))
				return nil
			}).Times(3),
		repo.EXPECT().Count(gomock.Any()).Return(int64(250), nil),
	)

	var progress []int
	imp := New(repo, logger.Nop(), WithProgress(func(n int) { progress = append(progress, n) }))

	res, err := imp.Import(context.Background(), strings.NewReader(csvRows(250)))

	require.NoError(t, err)
	assert.Equal(t, Result{Deleted: 7, Imported: 250, Total: 250}, res)
	assert.Equal(t, []int{100, 100, 50}, sizes)
	assert.Equal(t, []int{100, 200, 250}, progress)
}

func TestImport_MapsColumnsByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNcmRepository(ctrl)

	data := "\ufeffCST,NCM,Extra,Descrição CST-IBS/CBS,Cclasstrib,Descrição\n" +
		"200,10063021,x,\"Alíquota reduzida, 60%\",200003,Arroz semibranqueado\n"

	repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().InsertBatch(gomock.Any(), []models.NcmRecord{{
		Ncm:          "10063021",
		Descricao:    "Arroz semibranqueado",
		Cclasstrib:   "200003",
		Cst:          "200",
		DescricaoCst: "Alíquota reduzida, 60%",
	}}).Return(nil)
	repo.EXPECT().Count(gomock.Any()).Return(int64(1), nil)

	res, err := New(repo, logger.Nop()).Import(context.Background(), strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestImport_MissingColumnDeletesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNcmRepository(ctrl)

	_, err := New(repo, logger.Nop()).Import(context.Background(), strings.NewReader("NCM,Descrição,CST\n1006,Arroz,200\n"))

	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Cclasstrib")
}

func TestImport_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := New(mock.NewMockNcmRepository(ctrl), logger.Nop()).Import(context.Background(), strings.NewReader(""))

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestImport_InsertFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNcmRepository(ctrl)
	boom := errors.New("disk full")

	repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(boom)

	res, err := New(repo, logger.Nop(), WithBatchSize(2)).Import(context.Background(), strings.NewReader(csvRows(5)))

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rows 3-4")
	assert.Equal(t, 2, res.Imported)
}

func TestImportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNcmRepository(ctrl)

	t.Run("missing file", func(t *testing.T) {
		_, err := New(repo, logger.Nop()).ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ncm.csv")
		require.NoError(t, os.WriteFile(path, []byte(csvRows(3)), 0o600))

		repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(3)).Return(nil)
		repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)

		res, err := New(repo, logger.Nop()).ImportFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Total)
	})
}
