package document_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/document"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
)

func finalizedDoc() *domain.Document {
	now := testfixtures.At(2025, time.January, 7, 10, 0)
	doc := domain.NewDocument(3, "Acta de conciliación", domain.DocumentRecord, "Contenido inicial", 10, now)
	doc.ID = 5
	doc.Finalize(10, now.Add(time.Hour))
	return doc
}

func TestRepository_SaveOnlyOverDraft(t *testing.T) {
	exec := &testfixtures.Executor{RowsAffected: 1}
	repo := document.NewRepository(exec)
	doc := finalizedDoc()

	ok, err := repo.Save(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, exec.Queries, 1)
	q := exec.Last()
	assert.Contains(t, q.SQL, "UPDATE documents")
	assert.Contains(t, q.SQL, "history = $")

	// новый статус в SET, черновик в условии
	assert.Equal(t, []interface{}{domain.DocumentFinal, domain.DocumentDraft}, q.ArgsFor("status ="))
	assert.Equal(t, []interface{}{int64(5)}, q.ArgsFor("id ="))
	assert.Equal(t, []interface{}{doc.Version}, q.ArgsFor("version ="))
}

func TestRepository_SaveOverFinalized(t *testing.T) {
	exec := &testfixtures.Executor{RowsAffected: 0}
	repo := document.NewRepository(exec)

	ok, err := repo.Save(context.Background(), finalizedDoc())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_SaveExecError(t *testing.T) {
	exec := &testfixtures.Executor{Err: errors.New("connection reset")}
	repo := document.NewRepository(exec)

	_, err := repo.Save(context.Background(), finalizedDoc())
	assert.ErrorIs(t, err, document.ErrExecQuery)
}
