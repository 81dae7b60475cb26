package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	addCommentHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/add_comment"
	approveHearingHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/approve_hearing_request"
	cancelHearingHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/cancel_hearing_request"
	createDocumentHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/create_document"
	createHearingHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/create_hearing_request"
	findRoomsHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/find_available_rooms"
	getDocumentHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/get_document"
	getDocumentHistoryHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/get_document_history"
	getHearingHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/get_hearing_request"
	getRoomStatusHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/get_room_status"
	listCurrentHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/list_current_hearings"
	listHearingDocumentsHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/list_hearing_documents"
	listHearingsHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/list_hearing_requests"
	listHolidaysHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/list_holidays"
	rejectHearingHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/reject_hearing_request"
	updateDocumentHandler "github.com/m04kA/SMC-HearingService/internal/api/handlers/update_document"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/config"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/holiday"
	documentsService "github.com/m04kA/SMC-HearingService/internal/service/documents"
	hearingsService "github.com/m04kA/SMC-HearingService/internal/service/hearings"
	approveHearingUC "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
	createHearingUC "github.com/m04kA/SMC-HearingService/internal/usecase/create_hearing_request"
	findRoomsUC "github.com/m04kA/SMC-HearingService/internal/usecase/find_available_rooms"
	getRoomStatusUC "github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
	"github.com/m04kA/SMC-HearingService/pkg/metrics"
)

const healthTimeout = 2 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRouter собирает сервисы, use case и обработчики поверх хранилища
// m может быть nil, тогда метрики не собираются и /metrics не публикуется
func NewRouter(cfg *config.Config, repos Repositories, m *metrics.Metrics, log Logger) (*mux.Router, error) {
	loc, err := cfg.Scheduling.Location()
	if err != nil {
		return nil, fmt.Errorf("scheduling time zone: %w", err)
	}

	policy := domain.SchedulingPolicy{
		Location:         loc,
		OpenHour:         cfg.Scheduling.OpenHour,
		CloseHour:        cfg.Scheduling.CloseHour,
		MaxAdvanceMonths: cfg.Scheduling.MaxAdvanceMonths,
		HearingDuration:  cfg.Scheduling.HearingDuration(),
	}
	duration := policy.HearingDuration

	holidays := holidayRepo.NewCache(repos.Holidays, cfg.Cache.HolidaysTTLDuration())

	// Сервисы
	hearingSvc := hearingsService.NewService(repos.Hearings, m, duration, log)
	documentSvc := documentsService.NewService(repos.Documents, repos.Hearings, repos.TxManager, log)

	// Use cases
	createHearing := createHearingUC.NewUseCase(repos.Hearings, holidays, policy, log)
	approveHearing := approveHearingUC.NewUseCase(repos.Hearings, repos.Rooms, repos.TxManager, m, duration, log)
	findRooms := findRoomsUC.NewUseCase(repos.Rooms, repos.Hearings, duration, log)
	getRoomStatus := getRoomStatusUC.NewUseCase(repos.Rooms, repos.Hearings, duration, log)

	validator := handlers.NewValidator()

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}
	r.Use(middleware.Recover(log))

	r.HandleFunc("/health", healthHandler(repos.Ping, log)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, log))

	// --- Заявки на слушания ---
	api.HandleFunc("/hearing-requests",
		createHearingHandler.NewHandler(createHearing, validator, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/hearing-requests",
		listHearingsHandler.NewHandler(hearingSvc, loc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/hearing-requests/current",
		listCurrentHandler.NewHandler(hearingSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/hearing-requests/{id}",
		getHearingHandler.NewHandler(hearingSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/hearing-requests/{id}/approve",
		approveHearingHandler.NewHandler(approveHearing, validator, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/hearing-requests/{id}/reject",
		rejectHearingHandler.NewHandler(hearingSvc, validator, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/hearing-requests/{id}/cancel",
		cancelHearingHandler.NewHandler(hearingSvc, validator, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/hearing-requests/{id}/comments",
		addCommentHandler.NewHandler(hearingSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/hearing-requests/{id}/documents",
		listHearingDocumentsHandler.NewHandler(documentSvc, log).Handle).Methods(http.MethodGet)

	// --- Залы ---
	api.HandleFunc("/rooms/available",
		findRoomsHandler.NewHandler(findRooms, duration, loc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/status",
		getRoomStatusHandler.NewHandler(getRoomStatus, duration, loc, log).Handle).Methods(http.MethodGet)

	// --- Документы ---
	api.HandleFunc("/documents",
		createDocumentHandler.NewHandler(documentSvc, validator, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/documents/{id}",
		getDocumentHandler.NewHandler(documentSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}",
		updateDocumentHandler.NewHandler(documentSvc, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/documents/{id}/history",
		getDocumentHistoryHandler.NewHandler(documentSvc, log).Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/holidays",
		listHolidaysHandler.NewHandler(holidays, loc, log).Handle).Methods(http.MethodGet)

	return r, nil
}

func healthHandler(ping func(ctx context.Context) error, log Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				log.Error("GET /health - storage unavailable: %v", err)
				handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
