package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

type participantPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type payload struct {
	Title        string               `json:"title" validate:"required,max=5"`
	Kind         string               `json:"kind" validate:"oneof=a b"`
	Participants []participantPayload `json:"participants" validate:"required,min=1,dive"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	verr := v.Struct(&payload{
		Title:        "",
		Kind:         "c",
		Participants: []participantPayload{{Name: "Ana", Email: "no-email"}},
	})
	require.NotNil(t, verr)
	assert.Equal(t, "Este campo es requerido", verr.FieldErrors["title"])
	assert.Equal(t, "Valor no permitido", verr.FieldErrors["kind"])
	assert.Equal(t, "Ingrese un correo electrónico válido", verr.FieldErrors["participants[0].email"])
	assert.NotContains(t, verr.FieldErrors, "participants[0].name")

	verr = v.Struct(&payload{Title: "Acta final", Kind: "a", Participants: []participantPayload{}})
	require.NotNil(t, verr)
	assert.Equal(t, "No puede exceder 5 caracteres", verr.FieldErrors["title"])
	assert.Equal(t, "Debe agregar al menos 1 elemento(s)", verr.FieldErrors["participants"])

	assert.Nil(t, v.Struct(&payload{
		Title:        "Acta",
		Kind:         "a",
		Participants: []participantPayload{{Name: "Ana", Email: "ana@example.com"}},
	}))
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	verr := domain.NewValidationError()
	verr.Add("text", "El comentario es requerido")

	RespondValidationError(rec, verr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, map[string]string{"text": "El comentario es requerido"}, body.Fields)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Text string `json:"text"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hola"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "hola", v.Text)

	r = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	assert.NoError(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3"} {
		r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err = PathInt64(r, "id")
		assert.Error(t, err, raw)
	}
}

func TestQueryTime(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*60*60)

	r := httptest.NewRequest(http.MethodGet, "/?start=2025-01-07T10:00:00-05:00&day=2025-01-07&bad=yesterday", nil)

	start, err := QueryTime(r, "start", bogota)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, time.January, 7, 15, 0, 0, 0, time.UTC)))

	day, err := QueryTime(r, "day", bogota)
	require.NoError(t, err)
	assert.True(t, day.Equal(time.Date(2025, time.January, 7, 0, 0, 0, 0, bogota)))

	missing, err := QueryTime(r, "end", bogota)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryTime(r, "bad", bogota)
	assert.Error(t, err)
}
