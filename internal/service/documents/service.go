package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	documentRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/document"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

// Service сервис документов слушаний с историей версий
type Service struct {
	documentRepo DocumentRepository
	hearingRepo  HearingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса документов
func NewService(
	documentRepo DocumentRepository,
	hearingRepo HearingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		documentRepo: documentRepo,
		hearingRepo:  hearingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает черновик первой версии для одобренной заявки
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.DocumentResponse, error) {
	if !req.Principal.CanWriteDocuments() {
		s.logger.Warn("Create: user=%d cannot write documents", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	title := strings.TrimSpace(req.Title)
	docType := domain.DocumentType(strings.ToLower(req.Type))

	verr := domain.NewValidationError()
	if title == "" {
		verr.Add("title", "El título es requerido")
	} else if len([]rune(title)) > domain.MaxDocumentTitleLength {
		verr.Add("title", fmt.Sprintf("El título no puede exceder %d caracteres", domain.MaxDocumentTitleLength))
	}
	if !docType.Valid() {
		verr.Add("type", "Tipo de documento inválido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	h, err := s.hearingRepo.GetByID(ctx, req.HearingID)
	if err != nil {
		if errors.Is(err, hearingRepo.ErrHearingNotFound) {
			s.logger.Warn("Create: hearing id=%d not found", req.HearingID)
			return nil, ErrHearingNotFound
		}
		s.logger.Error("Create: failed to get hearing id=%d: %v", req.HearingID, err)
		return nil, fmt.Errorf("%w: Create - get hearing: %v", ErrInternal, err)
	}
	if h.Status != domain.StatusApproved {
		s.logger.Warn("Create: hearing id=%d has status=%s", req.HearingID, h.Status)
		return nil, fmt.Errorf("%w: hearing %d is %s", ErrHearingNotApproved, req.HearingID, h.Status)
	}

	doc := domain.NewDocument(req.HearingID, title, docType, req.Content, req.Principal.UserID, s.timeProvider.Now())
	created, err := s.documentRepo.Create(ctx, doc)
	if err != nil {
		if errors.Is(err, documentRepo.ErrHearingNotFound) {
			return nil, ErrHearingNotFound
		}
		s.logger.Error("Create: failed to create document for hearing id=%d: %v", req.HearingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: document id=%d created for hearing id=%d by user=%d", created.ID, req.HearingID, req.Principal.UserID)
	return models.FromDomainDocument(created), nil
}

// Get документ по ID
func (s *Service) Get(ctx context.Context, principal domain.Principal, id int64) (*models.DocumentResponse, error) {
	doc, err := s.loadReadable(ctx, "Get", principal, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDocument(doc), nil
}

// GetHistory история версий документа, старые первыми
func (s *Service) GetHistory(ctx context.Context, principal domain.Principal, id int64) (*models.HistoryResponse, error) {
	doc, err := s.loadReadable(ctx, "GetHistory", principal, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainHistory(doc), nil
}

// ListByHearing документы заявки, последние измененные первыми
func (s *Service) ListByHearing(ctx context.Context, principal domain.Principal, hearingID int64) (*models.DocumentListResponse, error) {
	if err := s.checkRead(ctx, "ListByHearing", principal, hearingID); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByHearing(ctx, hearingID)
	if err != nil {
		s.logger.Error("ListByHearing: repository error for hearing id=%d: %v", hearingID, err)
		return nil, fmt.Errorf("%w: ListByHearing - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDocumentList(docs), nil
}

// Update применяет PUT: новое содержимое и/или смену статуса в одной транзакции
// Содержимое применяется до финализации; финализированный документ не возвращается в draft
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.DocumentResponse, error) {
	var target domain.DocumentStatus
	if req.Status != nil {
		target = domain.DocumentStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		if target != domain.DocumentFinal && target != domain.DocumentDraft {
			verr := domain.NewValidationError()
			verr.Add("status", "Estado de documento inválido")
			return nil, verr
		}
	}

	if req.Content == nil && target == "" {
		return s.Get(ctx, req.Principal, req.DocumentID)
	}
	if !req.Principal.CanWriteDocuments() {
		s.logger.Warn("Update: user=%d cannot write documents", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.Document
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx, "Update", req.DocumentID)
		if err != nil {
			return err
		}

		changed := false
		if req.Content != nil {
			if err := s.edit(doc, *req.Content, req.Principal.UserID); err != nil {
				return err
			}
			changed = true
		}

		switch target {
		case domain.DocumentDraft:
			if doc.IsFinal() {
				return ErrImmutable
			}
		case domain.DocumentFinal:
			if doc.Finalize(req.Principal.UserID, s.timeProvider.Now()) {
				changed = true
			}
		}

		if changed {
			ok, err := s.documentRepo.Save(ctx, doc)
			if err != nil {
				return fmt.Errorf("%w: Update - save: %v", ErrInternal, err)
			}
			if !ok && req.Content != nil {
				return ErrImmutable
			}
		}

		result = doc
		return nil
	})
	if err != nil {
		s.logErr("Update", req.DocumentID, err)
		return nil, s.mapTxErr("Update", err)
	}

	s.logger.Info("Update: document id=%d version=%d status=%s by user=%d",
		req.DocumentID, result.Version, result.Status, req.Principal.UserID)
	return models.FromDomainDocument(result), nil
}

// UpdateContent сохраняет текущую версию в историю и заменяет содержимое
// Финализированный документ не меняется: ErrImmutable
func (s *Service) UpdateContent(ctx context.Context, principal domain.Principal, id int64, content string) (*models.DocumentResponse, error) {
	if !principal.CanWriteDocuments() {
		s.logger.Warn("UpdateContent: user=%d cannot write documents", principal.UserID)
		return nil, ErrAccessDenied
	}

	var updated *domain.Document
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx, "UpdateContent", id)
		if err != nil {
			return err
		}

		if err := s.edit(doc, content, principal.UserID); err != nil {
			return err
		}

		ok, err := s.documentRepo.Save(ctx, doc)
		if err != nil {
			return fmt.Errorf("%w: UpdateContent - save: %v", ErrInternal, err)
		}
		if !ok {
			// документ финализировали между чтением и записью
			return ErrImmutable
		}

		updated = doc
		return nil
	})
	if err != nil {
		s.logErr("UpdateContent", id, err)
		return nil, s.mapTxErr("UpdateContent", err)
	}

	s.logger.Info("UpdateContent: document id=%d now at version=%d by user=%d", id, updated.Version, principal.UserID)
	return models.FromDomainDocument(updated), nil
}

func (s *Service) edit(doc *domain.Document, content string, editor int64) error {
	if err := doc.Edit(content, editor, s.timeProvider.Now()); err != nil {
		if errors.Is(err, domain.ErrDocumentFinalized) {
			return ErrImmutable
		}
		return fmt.Errorf("%w: edit: %v", ErrInternal, err)
	}
	return nil
}

// Finalize фиксирует документ; повторный вызов возвращает документ без изменений
func (s *Service) Finalize(ctx context.Context, principal domain.Principal, id int64) (*models.DocumentResponse, error) {
	if !principal.CanWriteDocuments() {
		s.logger.Warn("Finalize: user=%d cannot write documents", principal.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.Document
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx, "Finalize", id)
		if err != nil {
			return err
		}

		if !doc.Finalize(principal.UserID, s.timeProvider.Now()) {
			result = doc
			return nil
		}

		if _, err := s.documentRepo.Save(ctx, doc); err != nil {
			return fmt.Errorf("%w: Finalize - save: %v", ErrInternal, err)
		}

		result = doc
		return nil
	})
	if err != nil {
		s.logErr("Finalize", id, err)
		return nil, s.mapTxErr("Finalize", err)
	}

	s.logger.Info("Finalize: document id=%d is final", id)
	return models.FromDomainDocument(result), nil
}

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, documentRepo.ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: %s - get document: %v", ErrInternal, op, err)
	}
	return doc, nil
}

// loadReadable документ, если пользователь может его читать
func (s *Service) loadReadable(ctx context.Context, op string, principal domain.Principal, id int64) (*domain.Document, error) {
	doc, err := s.load(ctx, op, id)
	if err != nil {
		s.logErr(op, id, err)
		return nil, err
	}
	if err := s.checkRead(ctx, op, principal, doc.HearingID); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkRead читать документы могут редакторы, архив и владелец заявки
func (s *Service) checkRead(ctx context.Context, op string, principal domain.Principal, hearingID int64) error {
	if principal.CanWriteDocuments() || principal.Roles.Has(domain.UserRoleArchive) {
		return nil
	}

	h, err := s.hearingRepo.GetByID(ctx, hearingID)
	if err != nil {
		if errors.Is(err, hearingRepo.ErrHearingNotFound) {
			return ErrHearingNotFound
		}
		s.logger.Error("%s: failed to get hearing id=%d: %v", op, hearingID, err)
		return fmt.Errorf("%w: %s - get hearing: %v", ErrInternal, op, err)
	}
	if !principal.CanAccess(h) {
		s.logger.Warn("%s: access denied for user=%d to documents of hearing id=%d", op, principal.UserID, hearingID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) mapTxErr(op string, err error) error {
	switch {
	case errors.Is(err, ErrDocumentNotFound), errors.Is(err, ErrImmutable), errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
	}
}

func (s *Service) logErr(op string, id int64, err error) {
	switch {
	case errors.Is(err, ErrDocumentNotFound):
		s.logger.Warn("%s: document id=%d not found", op, id)
	case errors.Is(err, ErrImmutable):
		s.logger.Warn("%s: document id=%d is final", op, id)
	default:
		s.logger.Error("%s: document id=%d: %v", op, id, err)
	}
}
