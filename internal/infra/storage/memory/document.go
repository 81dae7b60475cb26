package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	documentRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/document"
)

// DocumentRepository документы слушаний в памяти
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository создает репозиторий документов над store
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	defer r.store.enter(ctx)()

	if _, ok := r.store.hearings[doc.HearingID]; !ok {
		return nil, fmt.Errorf("%w: hearing %d", documentRepo.ErrHearingNotFound, doc.HearingID)
	}

	stored := cloneDocument(doc)
	stored.ID = r.store.nextDocID
	r.store.nextDocID++
	r.store.documents[stored.ID] = stored

	doc.ID = stored.ID
	return doc, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	defer r.store.enter(ctx)()

	doc, ok := r.store.documents[id]
	if !ok {
		return nil, documentRepo.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (r *DocumentRepository) ListByHearing(ctx context.Context, hearingID int64) ([]*domain.Document, error) {
	defer r.store.enter(ctx)()

	docs := make([]*domain.Document, 0)
	for _, doc := range r.store.documents {
		if doc.HearingID == hearingID {
			docs = append(docs, cloneDocument(doc))
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
		}
		return docs[i].ID > docs[j].ID
	})
	return docs, nil
}

// Save записывает документ, только если сохраненная версия еще черновик
func (r *DocumentRepository) Save(ctx context.Context, doc *domain.Document) (bool, error) {
	defer r.store.enter(ctx)()

	current, ok := r.store.documents[doc.ID]
	if !ok || current.Status != domain.DocumentDraft {
		return false, nil
	}

	r.store.documents[doc.ID] = cloneDocument(doc)
	return true, nil
}
