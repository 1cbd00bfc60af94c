package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medialert/internal/application/alert"
	"medialert/internal/application/service"
	"medialert/internal/infrastructure/auth"
	"medialert/internal/infrastructure/database/gormdb"
	"medialert/internal/infrastructure/openai"
	"medialert/internal/infrastructure/tone"
	"medialert/internal/interfaces/api/handler"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"
	"medialert/internal/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e   *echo.Echo
	hub *alert.Hub
}

func newTestServer(t *testing.T) *testServer {
	db := gormdb.NewTestDB(t)
	log := logger.NewNop()
	m := metrics.New()

	reminderRepo := gormdb.NewReminderRepository(db)
	refillRepo := gormdb.NewRefillRepository(db)

	tokens, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	hub := alert.NewHub(context.Background(), alert.HubConfig{
		Reminders: reminderRepo,
		Dismisser: alert.NewDismisser(reminderRepo, refillRepo, log, m),
		Notifier:  alert.NewNotifier(tone.Multi{}, time.Hour),
		Location:  time.UTC,
		Now:       func() time.Time { return time.Date(2026, 2, 3, 8, 0, 15, 0, time.UTC) },
		Log:       log,
		Metrics:   m,
	})
	t.Cleanup(hub.Close)

	userSvc := service.NewUserService(gormdb.NewUserRepository(db), tokens, log)
	e := NewRouter(&Config{
		AuthHandler:       handler.NewAuthHandler(userSvc, log),
		ReminderHandler:   handler.NewReminderHandler(service.NewReminderService(reminderRepo, hub, log), service.NewAlertService(hub, log), log),
		RefillHandler:     handler.NewRefillHandler(service.NewRefillService(refillRepo, log), log),
		DosageHandler:     handler.NewDosageHandler(service.NewDosageService(gormdb.NewDosageRepository(db), log), log),
		FeedbackHandler:   handler.NewFeedbackHandler(service.NewFeedbackService(gormdb.NewFeedbackRepository(db), userSvc, log), log),
		SuggestionHandler: handler.NewSuggestionHandler(service.NewSuggestionService(openai.New("", ""), 5, log, m), log),
		HealthHandler:     handler.NewHealthHandler(gormdb.Pinger(db), log),
		Tokens:            tokens,
		Validator:         validation.New(),
		Metrics:           m,
		Logger:            log,
	})
	return &testServer{e: e, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) login(t *testing.T, email string) string {
	rec := s.do(t, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"secret1"}`)
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, rec.Code, rec.Body.String())
	return decode(t, rec)["token"].(string)
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	rec = s.do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/auth/login", "", `{"email":"not-an-email","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "valid email")

	rec = s.do(t, http.MethodPost, "/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", decode(t, rec)["email"])

	rec = s.do(t, http.MethodGet, "/api/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDueReminderWorkflow(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "alice@example.com")
	ctx := context.Background()

	rec := s.do(t, http.MethodPost, "/api/refills", token, `{"name":"Aspirin","totalQuantity":30,"remainingQuantity":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/reminders", token, `{"medicineName":"Aspirin","time":"25:00","type":"Morning"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "HH:MM")

	rec = s.do(t, http.MethodPost, "/api/reminders", token, `{"medicineName":"Aspirin","time":"8:00","type":"Morning","quantity":"1/2"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "08:00", created["time"])

	rec = s.do(t, http.MethodGet, "/api/reminders/due", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.NoError(t, s.hub.Poll(ctx))

	rec = s.do(t, http.MethodGet, "/api/reminders/due", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created["id"], decode(t, rec)["id"])

	rec = s.do(t, http.MethodPost, "/api/reminders/due/ack", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ack := decode(t, rec)
	assert.Equal(t, true, ack["inventoryUpdated"])
	assert.Equal(t, true, ack["reminderDeleted"])
	assert.InDelta(t, 9.5, ack["remainingQuantity"], 1e-9)

	rec = s.do(t, http.MethodPost, "/api/reminders/due/ack", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/reminders", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/refills", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.InDelta(t, 9.5, items[0]["remainingQuantity"], 1e-9)
}

func TestRemindersAreScopedToTheirOwner(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice@example.com")
	bob := s.login(t, "bob@example.com")

	rec := s.do(t, http.MethodPost, "/api/reminders", alice, `{"medicineName":"Aspirin","time":"21:30","type":"Night"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.do(t, http.MethodDelete, "/api/reminders/"+id, bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/reminders/"+id, alice, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDosagesFeedbackAndSuggestions(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "alice@example.com")

	rec := s.do(t, http.MethodPost, "/api/dosages", token, `{"name":"Ibuprofen","quantity":"200mg","time":"after lunch"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.do(t, http.MethodPut, "/api/dosages/"+id, token, `{"name":"Ibuprofen","quantity":"400mg","time":"after lunch"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "400mg", decode(t, rec)["quantity"])

	rec = s.do(t, http.MethodPost, "/api/dosages", token, `{"name":"Ibuprofen"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/feedback", token, `{"message":"Very helpful"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/suggestions/refill", token, `{"medication":"Aspirin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/suggestions/refill", token, `{"medication":"Aspirin","location":"Berlin"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "medialert_http_requests_total")

	rec = s.do(t, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
