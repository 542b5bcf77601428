package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newAdmissionService(t *testing.T) (
	*mocks.MockEventRepo,
	*mocks.MockOccurrenceRepo,
	*mocks.MockAttendeeRepo,
	*mocks.MockRegistrationRepo,
	*mocks.MockNotifier,
	*AdmissionService,
) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	occRepo := mocks.NewMockOccurrenceRepo(t)
	attendeeRepo := mocks.NewMockAttendeeRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewAdmissionService(eventRepo, occRepo, attendeeRepo, regRepo, notifier, newTestLogger(t))
	return eventRepo, occRepo, attendeeRepo, regRepo, notifier, svc
}

func admitInput() domain.AdmitInput {
	return domain.AdmitInput{
		EventID: "e1",
		Attendee: domain.AttendeeInput{
			Email:    "Alice@Example.COM",
			FullName: "Alice Liddell",
			Company:  "Wonderland Ltd",
		},
		OccurrenceIDs: []string{"o1", "o2", "o1"},
	}
}

func TestAdmissionService_Admit_Success(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, notifier, svc := newAdmissionService(t)

	event := &domain.Event{ID: "e1", Name: "GopherCon"}
	attendee := &domain.Attendee{ID: "a1", Email: "alice@example.com", FullName: "Alice Liddell"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1", EventID: "e1"},
		{ID: "o2", EventID: "e1"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.MatchedBy(func(in domain.AttendeeInput) bool {
		return in.Email == "alice@example.com" // lower-cased before the upsert
	})).Return(attendee, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reg *domain.Registration) {
			reg.PassID = domain.FormatPassID(42)
			reg.PassSeq = 42
			reg.Status = domain.StatusRegistered
			reg.CreatedAt = time.Now()
		}).Return(nil)
	notifier.EXPECT().NotifyRegistrationAdmitted(mock.Anything, attendee, event, mock.Anything).Return()

	reg, created, err := svc.Admit(context.Background(), admitInput())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "EP-000042", reg.PassID)
	assert.Equal(t, []string{"o1", "o2"}, reg.OccurrenceIDs) // deduplicated
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAdmissionService_Admit_IdempotentResubmit(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, _, svc := newAdmissionService(t)

	existing := &domain.Registration{ID: "r1", EventID: "e1", AttendeeID: "a1", PassID: "EP-000007"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"}, {ID: "o2"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.Anything).
		Return(&domain.Attendee{ID: "a1"}, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").Return(existing, nil)

	reg, created, err := svc.Admit(context.Background(), admitInput())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "EP-000007", reg.PassID)
}

func TestAdmissionService_Admit_InvalidEmail(t *testing.T) {
	_, _, _, _, _, svc := newAdmissionService(t)

	input := admitInput()
	input.Attendee.Email = "not-an-email"

	_, _, err := svc.Admit(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdmissionService_Admit_NoOccurrencesSelected(t *testing.T) {
	_, _, _, _, _, svc := newAdmissionService(t)

	input := admitInput()
	input.OccurrenceIDs = nil

	_, _, err := svc.Admit(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdmissionService_Admit_ForeignOccurrence(t *testing.T) {
	eventRepo, occRepo, _, _, _, svc := newAdmissionService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"},
	}, nil)

	input := admitInput() // selects o2 which the event does not own

	_, _, err := svc.Admit(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdmissionService_Admit_EventNotFound(t *testing.T) {
	eventRepo, _, _, _, _, svc := newAdmissionService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, _, err := svc.Admit(context.Background(), admitInput())

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAdmissionService_Admit_CapacityExceeded(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, _, svc := newAdmissionService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"}, {ID: "o2"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.Anything).
		Return(&domain.Attendee{ID: "a1"}, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, _, err := svc.Admit(context.Background(), admitInput())

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestAdmissionService_Admit_RetriesOnConflict(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, notifier, svc := newAdmissionService(t)

	event := &domain.Event{ID: "e1"}
	attendee := &domain.Attendee{ID: "a1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"}, {ID: "o2"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.Anything).Return(attendee, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).Return(domain.ErrAdmissionConflict).Twice()
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reg *domain.Registration) {
			reg.PassID = domain.FormatPassID(43)
			reg.PassSeq = 43
		}).Return(nil).Once()
	notifier.EXPECT().NotifyRegistrationAdmitted(mock.Anything, attendee, event, mock.Anything).Return()

	reg, created, err := svc.Admit(context.Background(), admitInput())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "EP-000043", reg.PassID)

	time.Sleep(50 * time.Millisecond)
}

func TestAdmissionService_Admit_ConflictExhaustsRetries(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, _, svc := newAdmissionService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"}, {ID: "o2"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.Anything).
		Return(&domain.Attendee{ID: "a1"}, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Return(domain.ErrAdmissionConflict).Times(maxAdmitAttempts)

	_, _, err := svc.Admit(context.Background(), admitInput())

	assert.ErrorIs(t, err, domain.ErrAdmissionConflict)
}

func TestAdmissionService_Admit_AbsorbsConcurrentDuplicate(t *testing.T) {
	eventRepo, occRepo, attendeeRepo, regRepo, _, svc := newAdmissionService(t)

	existing := &domain.Registration{ID: "r1", PassID: "EP-000005"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	occRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.Occurrence{
		{ID: "o1"}, {ID: "o2"},
	}, nil)
	attendeeRepo.EXPECT().UpsertByEmail(mock.Anything, mock.Anything).
		Return(&domain.Attendee{ID: "a1"}, nil)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").
		Return(nil, domain.ErrRegistrationNotFound).Once()
	regRepo.EXPECT().Admit(mock.Anything, mock.Anything).Return(domain.ErrDuplicateRegistration)
	regRepo.EXPECT().GetByEventAndAttendee(mock.Anything, "e1", "a1").Return(existing, nil).Once()

	reg, created, err := svc.Admit(context.Background(), admitInput())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "EP-000005", reg.PassID)
}
