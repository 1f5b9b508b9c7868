package handle_message

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/sessionstore"
	profileRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/profile"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

// Тестовые фейки - только для этого пакета

type fakeProfileRepo struct {
	byPhone map[string]*domain.Profile
	nextID  int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byPhone: make(map[string]*domain.Profile), nextID: 1}
}

func (r *fakeProfileRepo) GetByPhone(_ context.Context, phone string) (*domain.Profile, error) {
	p, ok := r.byPhone[phone]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if _, ok := r.byPhone[p.PhoneNumber]; ok {
		return nil, profileRepo.ErrPhoneExists
	}
	created := *p
	created.ID = r.nextID
	r.nextID++
	r.byPhone[p.PhoneNumber] = &created
	return &created, nil
}

type fakeBookingRepo struct {
	confirmed []*domain.Booking
	err       error
}

func (r *fakeBookingRepo) GetConfirmedByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return r.confirmed, r.err
}

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	err      error
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.BookingSettings, error) {
	return r.settings, r.err
}

type fakeCreator struct {
	err      error
	nextID   int64
	requests []*createBooking.Request
}

func (c *fakeCreator) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	c.nextID++
	return &createBooking.Response{
		ID:           c.nextID,
		ProfileID:    req.ProfileID,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ChargeAmount: 1500,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	uc       *UseCase
	profiles *fakeProfileRepo
	bookings *fakeBookingRepo
	creator  *fakeCreator
	sessions *sessionstore.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	profiles := newFakeProfileRepo()
	bookings := &fakeBookingRepo{}
	creator := &fakeCreator{}
	sessions := sessionstore.NewMemoryStore(time.Hour)

	uc := NewUseCase(
		profiles,
		bookings,
		&fakeSettingsRepo{settings: testSettings("09:00", "17:00", 60)},
		sessions,
		creator,
		nopLogger{},
	)
	// 1 июня 2025, задолго до тестовой даты бронирования
	uc.timeProvider = fixedTime{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, profiles: profiles, bookings: bookings, creator: creator, sessions: sessions}
}

func (f *fixture) send(t *testing.T, phone, body string) string {
	t.Helper()
	resp, err := f.uc.Execute(context.Background(), &Request{
		PhoneNumber: phone,
		Body:        body,
		DisplayName: "Anna",
	})
	require.NoError(t, err)
	return resp.Reply
}

func TestExecute_EmptyPhoneRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{Body: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NonDateInputGetsUsageHint(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "+79990000001", "hello there")
	assert.Equal(t, msgUsage, reply)

	// Профиль создан первым же сообщением
	p, err := f.profiles.GetByPhone(context.Background(), "+79990000001")
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.Name)
}

func TestExecute_BackResetsFromAnyState(t *testing.T) {
	f := newFixture(t)
	phone := "+79990000001"

	f.send(t, phone, "25-12-2025")
	reply := f.send(t, phone, "BACK")
	assert.Equal(t, msgStartOver, reply)

	// После сброса номер слота больше не распознается
	reply = f.send(t, phone, "3")
	assert.Equal(t, msgUsage, reply)
}

func TestExecute_InvalidAndPastDates(t *testing.T) {
	f := newFixture(t)
	phone := "+79990000001"

	assert.Equal(t, msgInvalidDate, f.send(t, phone, "31-02-2025"))
	assert.Equal(t, msgPastDate, f.send(t, phone, "01-01-2020"))
}

func TestExecute_NonWorkingDayRejected(t *testing.T) {
	f := newFixture(t)
	// Только будни: 1=Пн .. 5=Пт
	f.uc.settingsRepo = &fakeSettingsRepo{settings: &domain.BookingSettings{
		StartTime:           testSettings("09:00", "17:00", 60).StartTime,
		EndTime:             testSettings("09:00", "17:00", 60).EndTime,
		SlotDurationMinutes: 60,
		WorkingDays:         []int{1, 2, 3, 4, 5},
	}}

	// 28-12-2025 - воскресенье
	reply := f.send(t, "+79990000001", "28-12-2025")
	assert.Equal(t, msgNonWorkingDay, reply)
}

func TestExecute_FullBookingFlow(t *testing.T) {
	f := newFixture(t)
	phone := "+79990000001"

	reply := f.send(t, phone, "25-12-2025")
	assert.Contains(t, reply, "Available slots for 25-12-2025")
	assert.Contains(t, reply, "1. 09:00 - 10:00")
	assert.Contains(t, reply, "8. 16:00 - 17:00")

	reply = f.send(t, phone, "3")
	assert.Contains(t, reply, "Your booking is confirmed!")
	assert.Contains(t, reply, "Date: 25-12-2025")
	assert.Contains(t, reply, "Time: 11:00 - 12:00")
	assert.Contains(t, reply, "Name: Anna")
	assert.Contains(t, reply, "Phone: "+phone)

	require.Len(t, f.creator.requests, 1)
	req := f.creator.requests[0]
	assert.Equal(t, "11:00", req.StartTime.String())
	assert.Equal(t, "12:00", req.EndTime.String())

	// Сессия завершена - следующий ход начинается с даты
	state, err := f.sessions.Get(context.Background(), phone)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestExecute_BookedSlotHiddenFromList(t *testing.T) {
	f := newFixture(t)
	f.bookings.confirmed = []*domain.Booking{confirmedBooking("09:00", "10:00")}

	reply := f.send(t, "+79990000001", "25-12-2025")
	assert.NotContains(t, reply, "09:00 - 10:00")
	assert.Contains(t, reply, "1. 10:00 - 11:00")
	assert.Contains(t, reply, "7. 16:00 - 17:00")
}

func TestExecute_InvalidSlotNumberKeepsState(t *testing.T) {
	f := newFixture(t)
	phone := "+79990000001"

	f.send(t, phone, "25-12-2025")

	reply := f.send(t, phone, "99")
	assert.Equal(t, fmt.Sprintf(msgInvalidSlot, 8), reply)

	// Состояние сохранено: корректный номер все еще бронирует
	reply = f.send(t, phone, "1")
	assert.Contains(t, reply, "Time: 09:00 - 10:00")
}

func TestExecute_SlotConflictKeepsSnapshot(t *testing.T) {
	f := newFixture(t)
	phone := "+79990000001"

	f.send(t, phone, "25-12-2025")

	f.creator.err = createBooking.ErrSlotTaken
	reply := f.send(t, phone, "2")
	assert.Equal(t, msgSlotConflict, reply)

	// Прежний снимок действует: другой номер из того же списка проходит
	f.creator.err = nil
	reply = f.send(t, phone, "4")
	assert.Contains(t, reply, "Time: 12:00 - 13:00")
}

func TestExecute_StorageErrorNeverPropagates(t *testing.T) {
	f := newFixture(t)
	f.bookings.err = errors.New("db down")

	reply := f.send(t, "+79990000001", "25-12-2025")
	assert.Equal(t, msgTryAgain, reply)
}

func TestExecute_NoSlotsLeft(t *testing.T) {
	f := newFixture(t)
	hours := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	for i := 0; i+1 < len(hours); i++ {
		f.bookings.confirmed = append(f.bookings.confirmed, confirmedBooking(hours[i], hours[i+1]))
	}

	reply := f.send(t, "+79990000001", "25-12-2025")
	assert.Equal(t, fmt.Sprintf(msgNoSlots, "25-12-2025"), reply)
}
