package approve_hearing_request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
	approveHearing "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
)

type fakeUseCase struct {
	got *approveHearing.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *approveHearing.Request) (*models.HearingResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HearingResponse{ID: req.HearingID, Status: "approved", AssignedRoomID: &req.RoomID}, nil
}

func serve(t *testing.T, uc *fakeUseCase, withPrincipal bool, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, handlers.NewValidator(), logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/hearing-requests/{id}/approve", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	if withPrincipal {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), testfixtures.Admin()))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Approves(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, true, "/api/v1/hearing-requests/7/approve", `{"locationId":1,"roomId":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.HearingID)
	assert.Equal(t, int64(1), uc.got.LocationID)
	assert.Equal(t, int64(10), uc.got.RoomID)
	assert.Equal(t, testfixtures.AdminID, uc.got.Principal.UserID)

	var resp models.HearingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandle_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		withPrincipal bool
		path          string
		body          string
		wantStatus    int
	}{
		{"no principal", false, "/api/v1/hearing-requests/7/approve", `{"locationId":1,"roomId":10}`, http.StatusUnauthorized},
		{"bad id", true, "/api/v1/hearing-requests/x/approve", `{"locationId":1,"roomId":10}`, http.StatusBadRequest},
		{"broken json", true, "/api/v1/hearing-requests/7/approve", `{"locationId":`, http.StatusBadRequest},
		{"missing room", true, "/api/v1/hearing-requests/7/approve", `{"locationId":1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tt.withPrincipal, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_MapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantError  string
	}{
		{approveHearing.ErrAccessDenied, http.StatusForbidden, msgAccessDenied},
		{approveHearing.ErrHearingNotFound, http.StatusNotFound, msgHearingNotFound},
		{approveHearing.ErrRoomNotFound, http.StatusNotFound, msgRoomNotFound},
		{approveHearing.ErrRoomNotInLocation, http.StatusBadRequest, msgRoomNotInLocation},
		{approveHearing.ErrInvalidTransition, http.StatusBadRequest, msgCannotApprove},
		{approveHearing.ErrRoomUnavailable, http.StatusConflict, msgRoomUnavailable},
		{approveHearing.ErrConflict, http.StatusConflict, msgRoomConflict},
		{approveHearing.ErrInternal, http.StatusInternalServerError, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &fakeUseCase{err: fmt.Errorf("%w: detail", tt.err)}
			rec := serve(t, uc, true, "/api/v1/hearing-requests/7/approve", `{"locationId":1,"roomId":10}`)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
