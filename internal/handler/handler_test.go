package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/handler/dto"
	hmocks "github.com/eventpass/eventpass/internal/handler/mocks"
	"github.com/eventpass/eventpass/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockAdmissionSvc, *hmocks.MockRegistrationSvc, *hmocks.MockBadgeSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	admissionSvc := hmocks.NewMockAdmissionSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)
	badgeSvc := hmocks.NewMockBadgeSvc(t)

	h := NewHandler(eventSvc, admissionSvc, registrationSvc, badgeSvc)
	r := router.InitRouter("test", h)

	return eventSvc, admissionSvc, registrationSvc, badgeSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	capacity := 500
	event := &domain.Event{
		ID:        uuid.New().String(),
		Name:      "GopherCon",
		Capacity:  &capacity,
		CreatedAt: time.Now(),
	}
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:     "GopherCon",
		Capacity: &capacity,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Name)
	assert.Equal(t, 500, *resp.Capacity)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", Name: "GopherCon"},
		{ID: "e2", Name: "RustConf"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Occurrence reconciliation ---

func TestHandler_ReconcileOccurrences_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	eventSvc.EXPECT().ReconcileOccurrences(mock.Anything, eventID, mock.Anything).
		Return([]domain.Occurrence{
			{ID: "o1", EventID: eventID, StartTime: start},
		}, nil)

	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID+"/occurrences", dto.ReconcileOccurrencesRequest{
		Occurrences: []dto.OccurrenceEntry{
			{StartTime: start.Format(time.RFC3339)},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OccurrenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "o1", resp[0].ID)
}

func TestHandler_ReconcileOccurrences_BadTimestamp(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID+"/occurrences", dto.ReconcileOccurrencesRequest{
		Occurrences: []dto.OccurrenceEntry{
			{StartTime: "yesterday"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReconcileOccurrences_DuplicateStart(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	start := time.Now().Add(24 * time.Hour)

	eventSvc.EXPECT().ReconcileOccurrences(mock.Anything, eventID, mock.Anything).
		Return(nil, domain.ErrDuplicateStartTime)

	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID+"/occurrences", dto.ReconcileOccurrencesRequest{
		Occurrences: []dto.OccurrenceEntry{
			{StartTime: start.Format(time.RFC3339)},
			{StartTime: start.Format(time.RFC3339)},
		},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Registrations ---

func registerBody() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:         "alice@example.com",
		FullName:      "Alice Liddell",
		OccurrenceIDs: []string{"o1"},
	}
}

func TestHandler_Register_Created(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reg := &domain.Registration{
		ID:      uuid.New().String(),
		EventID: eventID,
		PassID:  "EP-000042",
		Status:  domain.StatusRegistered,
	}
	admissionSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(reg, true, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/registrations", registerBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EP-000042", resp.PassID)
}

func TestHandler_Register_IdempotentResubmit(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reg := &domain.Registration{ID: "r1", EventID: eventID, PassID: "EP-000042"}
	admissionSvc.EXPECT().Admit(mock.Anything, mock.Anything).Return(reg, false, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/registrations", registerBody())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Register_CapacityExceeded(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	admissionSvc.EXPECT().Admit(mock.Anything, mock.Anything).
		Return(nil, false, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/registrations", registerBody())

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conflict", resp.Kind)
}

func TestHandler_Register_MissingOccurrences(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	body := registerBody()
	body.OccurrenceIDs = nil

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/registrations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PatchStatus_Success(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	registrationSvc.EXPECT().Transition(mock.Anything, regID, domain.StatusCancelled).
		Return(&domain.Registration{ID: regID, Status: domain.StatusCancelled}, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/registrations/"+regID+"/status", dto.PatchStatusRequest{
		Status: "cancelled",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_PatchStatus_UnknownStatus(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	regID := uuid.New().String()
	w := doJSON(t, r, http.MethodPatch, "/api/registrations/"+regID+"/status", dto.PatchStatusRequest{
		Status: "parked",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PatchStatus_AlreadyCancelled(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	registrationSvc.EXPECT().Transition(mock.Anything, regID, domain.StatusCheckedIn).
		Return(nil, domain.ErrAlreadyCancelled)

	w := doJSON(t, r, http.MethodPatch, "/api/registrations/"+regID+"/status", dto.PatchStatusRequest{
		Status: "checked-in",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SearchRegistrations(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q domain.SearchQuery) bool {
		return q.Status == "registered" && q.FreeText == "alice" &&
			q.SortBy == "attendee_name" && q.SortDesc && q.Limit == 10
	})).Return(&domain.SearchResult{
		Items: []domain.RegistrationView{
			{ID: "r1", AttendeeName: "Alice Liddell", Status: domain.StatusRegistered},
		},
		Total: 1,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/registrations?status=registered&q=alice&sort_by=attendee_name&order=desc&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Alice Liddell", resp.Items[0].AttendeeName)
}

func TestHandler_SearchRegistrations_InvalidEventIDFilter(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations?event_id=not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp.Kind)
}

func TestHandler_SearchRegistrations_InvalidOccurrenceIDFilter(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations?occurrence_id=42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Check-in and badges ---

func TestHandler_CheckIn_Success(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().CheckIn(mock.Anything, "ep-000042").
		Return(&domain.Registration{ID: "r1", Status: domain.StatusCheckedIn}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/checkin", dto.CheckInRequest{Query: "ep-000042"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checked-in", resp.Status)
}

func TestHandler_CheckIn_Ambiguous(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().CheckIn(mock.Anything, "4").
		Return(nil, domain.ErrAmbiguousPass)

	w := doJSON(t, r, http.MethodPost, "/api/checkin", dto.CheckInRequest{Query: "4"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_NotFound(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().CheckIn(mock.Anything, "EP-999999").
		Return(nil, domain.ErrPassNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/checkin", dto.CheckInRequest{Query: "EP-999999"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBadge_Success(t *testing.T) {
	_, _, _, badgeSvc, r := setupRouter(t)

	badgeSvc.EXPECT().RenderBadge(mock.Anything, "EP-000042").
		Return([]byte("%PDF-1.3 fake"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/passes/EP-000042/badge", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "badge.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestHandler_GetBadge_NotFound(t *testing.T) {
	_, _, _, badgeSvc, r := setupRouter(t)

	badgeSvc.EXPECT().RenderBadge(mock.Anything, "EP-999999").
		Return(nil, domain.ErrPassNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/passes/EP-999999/badge", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
