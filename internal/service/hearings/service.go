package hearings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

// Service сервис заявок: чтение, комментарии, отклонение и отмена
// Одобрение с назначением зала выполняет usecase approve_hearing_request
type Service struct {
	hearingRepo     HearingRepository
	transitions     TransitionRecorder
	hearingDuration time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	hearingRepo HearingRepository,
	transitions TransitionRecorder,
	hearingDuration time.Duration,
	logger Logger,
) *Service {
	return &Service{
		hearingRepo:     hearingRepo,
		transitions:     transitions,
		hearingDuration: hearingDuration,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает заявку; доступно владельцу и администратору
func (s *Service) GetByID(ctx context.Context, principal domain.Principal, id int64) (*models.HearingResponse, error) {
	h, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !principal.CanAccess(h) {
		s.logger.Warn("GetByID: access denied for user=%d to hearing id=%d", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainHearing(h, s.hearingDuration), nil
}

// List заявки с фильтрами; обычный пользователь видит только свои
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.HearingListResponse, error) {
	filter := domain.HearingFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if !req.Principal.IsAdmin() {
		userID := req.Principal.UserID
		filter.RequestedBy = &userID
	}

	if req.Status != nil {
		status := domain.HearingStatus(strings.ToLower(*req.Status))
		if !status.Valid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.Type != nil {
		hearingType := domain.HearingType(strings.ToLower(*req.Type))
		if !hearingType.Valid() {
			s.logger.Warn("List: invalid type=%s", *req.Type)
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, *req.Type)
		}
		filter.Type = &hearingType
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	hearings, err := s.hearingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Principal.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d hearings for user=%d", len(hearings), req.Principal.UserID)
	return models.FromDomainHearingList(hearings, s.hearingDuration), nil
}

// ListCurrent одобренные слушания, идущие прямо сейчас
func (s *Service) ListCurrent(ctx context.Context) (*models.HearingListResponse, error) {
	hearings, err := s.hearingRepo.ListInProgress(ctx, s.timeProvider.Now(), s.hearingDuration)
	if err != nil {
		s.logger.Error("ListCurrent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCurrent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHearingList(hearings, s.hearingDuration), nil
}

// Reject pending -> rejected; только администратор
func (s *Service) Reject(ctx context.Context, req *models.TransitionRequest) (*models.HearingResponse, error) {
	if !req.Principal.IsAdmin() {
		s.logger.Warn("Reject: user=%d is not an admin", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	return s.transition(ctx, "reject", req, domain.StatusRejected, []domain.HearingStatus{domain.StatusPending})
}

// Cancel pending|approved -> cancelled; владелец или администратор
// Привязка зала снимается в том же UPDATE
func (s *Service) Cancel(ctx context.Context, req *models.TransitionRequest) (*models.HearingResponse, error) {
	return s.transition(ctx, "cancel", req, domain.StatusCancelled,
		[]domain.HearingStatus{domain.StatusPending, domain.StatusApproved})
}

// AddComment добавляет комментарий в ленту заявки; владелец или администратор
func (s *Service) AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.HearingResponse, error) {
	text := strings.TrimSpace(req.Text)
	verr := domain.NewValidationError()
	if text == "" {
		verr.Add("text", "El comentario es requerido")
	} else if len([]rune(text)) > domain.MaxCommentLength {
		verr.Add("text", fmt.Sprintf("El comentario no puede exceder %d caracteres", domain.MaxCommentLength))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	h, err := s.load(ctx, "AddComment", req.HearingID)
	if err != nil {
		return nil, err
	}
	if !req.Principal.CanAccess(h) {
		s.logger.Warn("AddComment: access denied for user=%d to hearing id=%d", req.Principal.UserID, req.HearingID)
		return nil, ErrAccessDenied
	}

	comment := domain.Comment{Text: text, CreatedBy: req.Principal.UserID, CreatedAt: s.timeProvider.Now()}
	if err := s.hearingRepo.AddComment(ctx, req.HearingID, comment); err != nil {
		if errors.Is(err, hearingRepo.ErrHearingNotFound) {
			return nil, ErrHearingNotFound
		}
		s.logger.Error("AddComment: repository error for hearing id=%d: %v", req.HearingID, err)
		return nil, fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: user=%d commented on hearing id=%d", req.Principal.UserID, req.HearingID)
	return s.reload(ctx, "AddComment", req.HearingID)
}

func (s *Service) transition(
	ctx context.Context,
	name string,
	req *models.TransitionRequest,
	to domain.HearingStatus,
	from []domain.HearingStatus,
) (*models.HearingResponse, error) {
	h, err := s.load(ctx, name, req.HearingID)
	if err != nil {
		return nil, err
	}

	if !req.Principal.CanAccess(h) {
		s.logger.Warn("%s: access denied for user=%d to hearing id=%d", name, req.Principal.UserID, req.HearingID)
		return nil, ErrAccessDenied
	}

	if err := domain.CheckTransition(h.Status, to); err != nil {
		s.logger.Warn("%s: hearing id=%d: %v", name, req.HearingID, err)
		s.transitions.IncHearingTransition(name, "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	var comment *domain.Comment
	if req.Comment != nil && strings.TrimSpace(*req.Comment) != "" {
		comment = &domain.Comment{
			Text:      strings.TrimSpace(*req.Comment),
			CreatedBy: req.Principal.UserID,
			CreatedAt: s.timeProvider.Now(),
		}
	}

	ok, err := s.hearingRepo.UpdateStatus(ctx, req.HearingID, from, to, comment)
	if err != nil {
		s.logger.Error("%s: repository error for hearing id=%d: %v", name, req.HearingID, err)
		s.transitions.IncHearingTransition(name, "error")
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, name, err)
	}
	if !ok {
		// статус изменился между чтением и записью
		s.logger.Warn("%s: hearing id=%d changed status concurrently", name, req.HearingID)
		s.transitions.IncHearingTransition(name, "invalid")
		return nil, fmt.Errorf("%w: hearing %d is no longer %v", ErrInvalidTransition, req.HearingID, from)
	}

	s.transitions.IncHearingTransition(name, "ok")
	s.logger.Info("%s: hearing id=%d %s -> %s by user=%d", name, req.HearingID, h.Status, to, req.Principal.UserID)

	return s.reload(ctx, name, req.HearingID)
}

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.HearingRequest, error) {
	h, err := s.hearingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hearingRepo.ErrHearingNotFound) {
			s.logger.Warn("%s: hearing id=%d not found", op, id)
			return nil, ErrHearingNotFound
		}
		s.logger.Error("%s: repository error for hearing id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return h, nil
}

func (s *Service) reload(ctx context.Context, op string, id int64) (*models.HearingResponse, error) {
	h, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainHearing(h, s.hearingDuration), nil
}
