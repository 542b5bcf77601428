package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistrationService(t *testing.T) (*mocks.MockRegistrationRepo, *mocks.MockNotifier, *RegistrationService) {
	t.Helper()
	regRepo := mocks.NewMockRegistrationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewRegistrationService(regRepo, notifier, newTestLogger(t))
	return regRepo, notifier, svc
}

// --- Transition ---

func TestRegistrationService_Transition_Success(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{
		ID: "r1", Status: domain.StatusRegistered,
	}, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusRegistered, domain.StatusCheckedIn).
		Return(nil)

	reg, err := svc.Transition(context.Background(), "r1", domain.StatusCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, reg.Status)
}

func TestRegistrationService_Transition_SameStatusNoOp(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{
		ID: "r1", Status: domain.StatusCheckedIn,
	}, nil)

	reg, err := svc.Transition(context.Background(), "r1", domain.StatusCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, reg.Status)
}

func TestRegistrationService_Transition_CancelledIsTerminal(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{
		ID: "r1", Status: domain.StatusCancelled,
	}, nil)

	_, err := svc.Transition(context.Background(), "r1", domain.StatusCheckedIn)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestRegistrationService_Transition_InvalidBackwards(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{
		ID: "r1", Status: domain.StatusCheckedIn,
	}, nil)

	_, err := svc.Transition(context.Background(), "r1", domain.StatusRegistered)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRegistrationService_Transition_NotFound(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Transition(context.Background(), "missing", domain.StatusCancelled)

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Transition_LostRace(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{
		ID: "r1", Status: domain.StatusRegistered,
	}, nil)
	// Someone cancelled between the read and the guarded write.
	regRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusRegistered, domain.StatusCheckedIn).
		Return(domain.ErrInvalidTransition)

	_, err := svc.Transition(context.Background(), "r1", domain.StatusCheckedIn)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// --- ResolvePass ---

func TestRegistrationService_ResolvePass_ExactMatch(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", PassID: "EP-000042"}
	// The messy operator input must reach the store in canonical form.
	regRepo.EXPECT().GetByPassID(mock.Anything, "EP-000042").Return(reg, nil)

	got, err := svc.ResolvePass(context.Background(), "  ep–000042 ")

	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestRegistrationService_ResolvePass_DigitsFallback(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", PassID: "EP-000042"}
	regRepo.EXPECT().GetByPassID(mock.Anything, "42").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().FindByPassDigits(mock.Anything, "42").
		Return([]*domain.Registration{reg}, nil)

	got, err := svc.ResolvePass(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "EP-000042", got.PassID)
}

func TestRegistrationService_ResolvePass_Ambiguous(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByPassID(mock.Anything, "4").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().FindByPassDigits(mock.Anything, "4").
		Return([]*domain.Registration{{ID: "r1"}, {ID: "r2"}}, nil)

	_, err := svc.ResolvePass(context.Background(), "4")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousPass)
}

func TestRegistrationService_ResolvePass_NotFound(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByPassID(mock.Anything, "EP-999999").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().FindByPassDigits(mock.Anything, "999999").
		Return(nil, nil)

	_, err := svc.ResolvePass(context.Background(), "EP-999999")

	assert.ErrorIs(t, err, domain.ErrPassNotFound)
}

func TestRegistrationService_ResolvePass_NoDigitsNoFallback(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByPassID(mock.Anything, "EP").
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.ResolvePass(context.Background(), "ep")

	assert.ErrorIs(t, err, domain.ErrPassNotFound)
}

func TestRegistrationService_ResolvePass_EmptyQuery(t *testing.T) {
	_, _, svc := newRegistrationService(t)

	_, err := svc.ResolvePass(context.Background(), " \u200b ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- CheckIn ---

func TestRegistrationService_CheckIn_Success(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", PassID: "EP-000042", Status: domain.StatusRegistered}
	regRepo.EXPECT().GetByPassID(mock.Anything, "EP-000042").Return(reg, nil)
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.StatusRegistered, domain.StatusCheckedIn).
		Return(nil)

	got, err := svc.CheckIn(context.Background(), "EP-000042")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, got.Status)
}

func TestRegistrationService_CheckIn_SecondScanIdempotent(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", PassID: "EP-000042", Status: domain.StatusCheckedIn}
	regRepo.EXPECT().GetByPassID(mock.Anything, "EP-000042").Return(reg, nil)

	got, err := svc.CheckIn(context.Background(), "EP-000042")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, got.Status)
}

func TestRegistrationService_CheckIn_Cancelled(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", PassID: "EP-000042", Status: domain.StatusCancelled}
	regRepo.EXPECT().GetByPassID(mock.Anything, "EP-000042").Return(reg, nil)

	_, err := svc.CheckIn(context.Background(), "EP-000042")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

// --- Search ---

func TestRegistrationService_Search_DefaultsAndClamping(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q domain.SearchQuery) bool {
		return q.Limit == defaultPageSize && q.Offset == 0
	})).Return(&domain.SearchResult{}, nil).Once()

	_, err := svc.Search(context.Background(), domain.SearchQuery{Offset: -5})
	require.NoError(t, err)

	regRepo.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q domain.SearchQuery) bool {
		return q.Limit == maxPageSize
	})).Return(&domain.SearchResult{}, nil).Once()

	_, err = svc.Search(context.Background(), domain.SearchQuery{Limit: 10000})
	require.NoError(t, err)
}

func TestRegistrationService_Search_InvalidStatus(t *testing.T) {
	_, _, svc := newRegistrationService(t)

	_, err := svc.Search(context.Background(), domain.SearchQuery{Status: "parked"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Search_InvalidSortField(t *testing.T) {
	_, _, svc := newRegistrationService(t)

	_, err := svc.Search(context.Background(), domain.SearchQuery{SortBy: "pass_id; DROP TABLE"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- SendReminders ---

func TestRegistrationService_SendReminders(t *testing.T) {
	regRepo, notifier, svc := newRegistrationService(t)

	items := []domain.ReminderItem{
		{RegistrationID: "r1", OccurrenceID: "o1", AttendeeEmail: "a@x.com", StartTime: time.Now()},
		{RegistrationID: "r2", OccurrenceID: "o1", AttendeeEmail: "b@x.com", StartTime: time.Now()},
	}

	regRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(items, nil)
	notifier.EXPECT().NotifyOccurrenceReminder(mock.Anything, items[0]).Return()
	notifier.EXPECT().NotifyOccurrenceReminder(mock.Anything, items[1]).Return()
	regRepo.EXPECT().MarkReminded(mock.Anything, "r1", "o1").Return(nil)
	// A mark failure skips the count but not the rest of the batch.
	regRepo.EXPECT().MarkReminded(mock.Anything, "r2", "o1").Return(errors.New("db down"))

	sent, err := svc.SendReminders(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestRegistrationService_SendReminders_ListFails(t *testing.T) {
	regRepo, _, svc := newRegistrationService(t)

	regRepo.EXPECT().ListDueReminders(mock.Anything, time.Hour).
		Return(nil, errors.New("db down"))

	_, err := svc.SendReminders(context.Background(), time.Hour)

	require.Error(t, err)
}
