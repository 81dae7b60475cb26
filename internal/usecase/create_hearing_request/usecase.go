package create_hearing_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/pkg/ptr"
)

// UseCase use case подачи заявки на слушание
type UseCase struct {
	hearingRepo  HearingRepository
	holidayRepo  HolidayRepository
	policy       domain.SchedulingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hearingRepo HearingRepository,
	holidayRepo HolidayRepository,
	policy domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		hearingRepo:  hearingRepo,
		holidayRepo:  holidayRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет заявку, присваивает номер дела и сохраняет ее в статусе pending
// Правила расписания проверяются только здесь; при одобрении они не перепроверяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.HearingResponse, error) {
	uc.logger.Info("CreateHearingRequest: user=%d, type=%s, at=%s, participants=%d",
		req.RequestedBy, req.Type, req.HearingDateTime.Format(domain.DateTimeFormat), len(req.Participants))

	// 1. Правила расписания, форму проверяет HTTP-слой
	now := uc.timeProvider.Now()
	holidays, err := uc.holidayRepo.ListForYear(ctx, uc.policy.In(req.HearingDateTime).Year())
	if err != nil {
		uc.logger.Error("CreateHearingRequest: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	if verr := validateSchedule(uc.policy, req.HearingDateTime, now, holidays); verr.HasErrors() {
		uc.logger.Warn("CreateHearingRequest: schedule rejected: %v", verr)
		return nil, verr
	}

	// 2. Номер дела
	seq, err := uc.hearingRepo.NextCaseSequence(ctx)
	if err != nil {
		uc.logger.Error("CreateHearingRequest: failed to get case sequence: %v", err)
		return nil, fmt.Errorf("%w: failed to get case sequence: %v", ErrInternal, err)
	}

	// 3. Сохраняем заявку
	hearing := &domain.HearingRequest{
		CaseNumber:        domain.FormatCaseNumber(seq, uc.policy.In(now).Year()),
		Type:              req.Type,
		HearingDateTime:   req.HearingDateTime.UTC(),
		ClaimAmount:       req.ClaimAmount,
		ClaimDetails:      req.ClaimDetails,
		VehicleCount:      req.VehicleCount,
		Address:           strings.TrimSpace(req.Address),
		Department:        strings.TrimSpace(req.Department),
		City:              strings.TrimSpace(req.City),
		Description:       strings.TrimSpace(req.Description),
		AdditionalDetails: trimOptional(req.AdditionalDetails),
		Participants:      req.Participants,
		Status:            domain.StatusPending,
		RequestedBy:       req.RequestedBy,
		Comments:          []domain.Comment{},
	}

	created, err := uc.hearingRepo.Create(ctx, hearing)
	if err != nil {
		uc.logger.Error("CreateHearingRequest: failed to create hearing %s: %v", hearing.CaseNumber, err)
		return nil, fmt.Errorf("%w: failed to create hearing: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateHearingRequest: created hearing id=%d case=%s", created.ID, created.CaseNumber)
	return models.FromDomainHearing(created, uc.policy.HearingDuration), nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return ptr.Ptr(trimmed)
}
