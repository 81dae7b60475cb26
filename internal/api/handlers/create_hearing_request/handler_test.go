package create_hearing_request

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
	createHearing "github.com/m04kA/SMC-HearingService/internal/usecase/create_hearing_request"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
)

type fakeUseCase struct {
	got *createHearing.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createHearing.Request) (*models.HearingResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HearingResponse{ID: 1, CaseNumber: "CASO-1001-2025", Status: "pending"}, nil
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"type":            "transit",
		"hearingDateTime": "2025-01-07T10:00:00-05:00",
		"claimAmount":     2500000,
		"vehicleCount":    2,
		"address":         "Carrera 7 # 32-16",
		"department":      "Cundinamarca",
		"city":            "Bogotá",
		"description":     testfixtures.Description(),
		"participants": []map[string]interface{}{
			{"name": "Ana Gómez", "documentId": "1020304050", "entityType": "natural", "email": "ana@example.com", "role": "convener"},
		},
	}
}

func post(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	h := NewHandler(uc, handlers.NewValidator(), logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hearing-requests", strings.NewReader(string(raw)))
	req = req.WithContext(middleware.WithPrincipal(req.Context(), testfixtures.Owner()))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeFields(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Fields
}

func TestHandle_Creates(t *testing.T) {
	uc := &fakeUseCase{}
	body := validBody()
	body["type"] = "  TRANSIT "
	body["city"] = "  Bogotá  "
	body["participants"] = []map[string]interface{}{
		{"name": " Ana Gómez ", "documentId": "1020304050", "entityType": "Natural", "email": " ana@example.com ", "role": "CONVENER"},
	}

	rec := post(t, uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, testfixtures.OwnerID, uc.got.RequestedBy)
	assert.Equal(t, domain.HearingTypeTransit, uc.got.Type)
	assert.Equal(t, "Bogotá", uc.got.City)
	require.Len(t, uc.got.Participants, 1)
	assert.Equal(t, "Ana Gómez", uc.got.Participants[0].Name)
	assert.Equal(t, domain.EntityNatural, uc.got.Participants[0].EntityType)
	assert.Equal(t, "ana@example.com", uc.got.Participants[0].Email)
	assert.Equal(t, domain.RoleConvener, uc.got.Participants[0].Role)
}

func TestHandle_FormValidation(t *testing.T) {
	uc := &fakeUseCase{}
	body := validBody()
	body["type"] = "maritime"
	body["claimAmount"] = 0
	body["vehicleCount"] = 100
	body["description"] = "muy corta"
	body["participants"] = []map[string]interface{}{
		{"name": "", "documentId": "1", "entityType": "robot", "email": "no-email", "role": "judge"},
	}

	rec := post(t, uc, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)

	fields := decodeFields(t, rec)
	assert.Equal(t, "Valor no permitido", fields["type"])
	assert.Equal(t, "Debe ser mayor o igual a 1", fields["claimAmount"])
	assert.Equal(t, "No puede ser mayor a 99", fields["vehicleCount"])
	assert.Equal(t, "Debe tener al menos 100 caracteres", fields["description"])
	assert.Equal(t, "Este campo es requerido", fields["participants[0].name"])
	assert.Equal(t, "Valor no permitido", fields["participants[0].entityType"])
	assert.Equal(t, "Ingrese un correo electrónico válido", fields["participants[0].email"])
	assert.Equal(t, "Valor no permitido", fields["participants[0].role"])
	assert.NotContains(t, fields, "address")
	assert.NotContains(t, fields, "participants[0].documentId")
}

func TestHandle_FieldLimits(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value interface{}
		want  string
	}{
		{"blank address", "address", "   ", "Este campo es requerido"},
		{"claim over limit", "claimAmount", 1000000000, "No puede ser mayor a 999999999"},
		{"negative vehicles", "vehicleCount", -1, "Debe ser mayor o igual a 0"},
		{"long description", "description", strings.Repeat("a", 1001), "No puede exceder 1000 caracteres"},
		{"long details", "additionalDetails", strings.Repeat("b", 501), "No puede exceder 500 caracteres"},
		{"no participants", "participants", []interface{}{}, "Debe agregar al menos 1 elemento(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			body := validBody()
			body[tt.field] = tt.value

			rec := post(t, uc, body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
			assert.Equal(t, tt.want, decodeFields(t, rec)[tt.field])
		})
	}
}

func TestHandle_NegativeClaimDetail(t *testing.T) {
	uc := &fakeUseCase{}
	body := validBody()
	body["claimDetails"] = map[string]interface{}{"damages": -5, "deductible": 0}

	rec := post(t, uc, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeFields(t, rec)
	assert.Equal(t, "Debe ser mayor o igual a 0", fields["claimDetails.damages"])
	assert.NotContains(t, fields, "claimDetails.deductible")
}

func TestHandle_ScheduleErrorFromUseCase(t *testing.T) {
	verr := domain.NewValidationError()
	verr.Add("hearingDateTime", "No se pueden programar audiencias en fines de semana")
	uc := &fakeUseCase{err: verr}

	rec := post(t, uc, validBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No se pueden programar audiencias en fines de semana", decodeFields(t, rec)["hearingDateTime"])
}

func TestHandle_BadDateTime(t *testing.T) {
	uc := &fakeUseCase{}
	body := validBody()
	body["hearingDateTime"] = "mañana"

	rec := post(t, uc, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
	assert.Equal(t, msgInvalidDateTime, decodeFields(t, rec)["hearingDateTime"])
}
