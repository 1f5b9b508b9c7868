package handle_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	profileRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/profile"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

const controlWordBack = "back"

// UseCase use case обработки входящего сообщения.
// Машина состояний диалога на один номер телефона:
// Idle -> AwaitingDate -> AwaitingSlot -> Idle, без терминального состояния.
// Каждое входящее сообщение порождает ровно один ответ в том же ходе.
type UseCase struct {
	profileRepo    ProfileRepository
	bookingRepo    BookingRepository
	settingsRepo   SettingsRepository
	sessions       SessionStore
	bookingCreator BookingCreator
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileRepo ProfileRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	sessions SessionStore,
	bookingCreator BookingCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		profileRepo:    profileRepo,
		bookingRepo:    bookingRepo,
		settingsRepo:   settingsRepo,
		sessions:       sessions,
		bookingCreator: bookingCreator,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute обрабатывает одно входящее сообщение и возвращает текст ответа.
// Ошибки хранилища не прерывают ход: житель получает просьбу повторить,
// детали уходят в лог.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	body := strings.TrimSpace(req.Body)
	uc.logger.Info("HandleMessage: phone=%s, body=%q", req.PhoneNumber, body)

	profile, err := uc.getOrCreateProfile(ctx, req.PhoneNumber, req.DisplayName)
	if err != nil {
		uc.logger.Error("HandleMessage: failed to resolve profile for %s: %v", req.PhoneNumber, err)
		return &Response{Reply: msgTryAgain}, nil
	}

	state, err := uc.sessions.Get(ctx, req.PhoneNumber)
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load session for %s: %v", req.PhoneNumber, err)
		return &Response{Reply: msgTryAgain}, nil
	}
	if state == nil {
		state = domain.NewIdleState()
	}

	// Контрольное слово работает из любого состояния
	if strings.EqualFold(body, controlWordBack) {
		return uc.reply(ctx, req.PhoneNumber, domain.NewAwaitingDateState(), msgStartOver)
	}

	switch state.Step {
	case domain.StepIdle, domain.StepAwaitingDate:
		return uc.handleDateStep(ctx, req.PhoneNumber, body, state)
	case domain.StepAwaitingSlot:
		return uc.handleSlotStep(ctx, req.PhoneNumber, body, state, profile)
	default:
		uc.logger.Warn("HandleMessage: unknown session step %q for %s, resetting", state.Step, req.PhoneNumber)
		return uc.reply(ctx, req.PhoneNumber, domain.NewAwaitingDateState(), msgStartOver)
	}
}

// handleDateStep обрабатывает ввод в состояниях Idle и AwaitingDate
func (uc *UseCase) handleDateStep(ctx context.Context, phone, body string, state *domain.ConversationState) (*Response, error) {
	if !looksLikeDate(body) {
		// Подсказка не меняет состояние
		return uc.reply(ctx, phone, state, msgUsage)
	}

	date, err := parseDate(body)
	if err != nil {
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgInvalidDate)
	}

	now := uc.timeProvider.Now()
	if isDateInPast(date, now) {
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgPastDate)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load settings: %v", err)
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgTryAgain)
	}

	// Нерабочий день отклоняется до генерации слотов
	if !settings.IsWorkingDay(date.Weekday()) {
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgNonWorkingDay)
	}

	confirmed, err := uc.bookingRepo.GetConfirmedByDate(ctx, date)
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load bookings for %s: %v",
			date.Format(domain.DateFormat), err)
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgTryAgain)
	}

	slots, err := generateSlots(settings, confirmed)
	if err != nil {
		// Некорректная конфигурация рабочих часов - ошибка оператора
		uc.logger.Error("HandleMessage: slot generation failed: %v", err)
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(), msgTryAgain)
	}

	free := availableSlots(slots)
	if len(free) == 0 {
		return uc.reply(ctx, phone, domain.NewAwaitingDateState(),
			fmt.Sprintf(msgNoSlots, date.Format(domain.DateFormat)))
	}

	// Снимок показанного списка фиксируется в сессии: ответ "N" жителя
	// всегда разрешается против именно этого списка
	return uc.reply(ctx, phone, domain.NewAwaitingSlotState(date, free), formatSlotList(date, free))
}

// handleSlotStep обрабатывает выбор слота в состоянии AwaitingSlot
func (uc *UseCase) handleSlotStep(ctx context.Context, phone, body string, state *domain.ConversationState, profile *domain.Profile) (*Response, error) {
	n, ok := parseSlotNumber(body)
	if !ok || n < 1 || n > len(state.Slots) {
		return uc.reply(ctx, phone, state, fmt.Sprintf(msgInvalidSlot, len(state.Slots)))
	}

	slot := state.Slots[n-1]

	result, err := uc.bookingCreator.Execute(ctx, &createBooking.Request{
		ProfileID: profile.ID,
		Date:      state.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	})
	if err != nil {
		if errors.Is(err, createBooking.ErrSlotTaken) {
			// Снимок намеренно не обновляется: житель выбирает другой
			// номер из прежнего списка или вводит 'back' за новой датой
			return uc.reply(ctx, phone, state, msgSlotConflict)
		}
		uc.logger.Error("HandleMessage: booking failed for %s: %v", phone, err)
		return uc.reply(ctx, phone, state, msgTryAgain)
	}

	if err := uc.sessions.Delete(ctx, phone); err != nil {
		uc.logger.Error("HandleMessage: failed to clear session for %s: %v", phone, err)
	}

	uc.logger.Info("HandleMessage: booking id=%d created for %s on %s %s",
		result.ID, phone, state.Date.Format(domain.DateFormat), slot.Label)

	return &Response{Reply: formatConfirmation(profile, state.Date, slot, result.ChargeAmount)}, nil
}

// getOrCreateProfile находит профиль по номеру или создает его при первом
// входящем сообщении. Гонка двух первых сообщений разрешается повторным
// чтением после нарушения уникальности номера.
func (uc *UseCase) getOrCreateProfile(ctx context.Context, phone, displayName string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByPhone(ctx, phone)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, profileRepo.ErrProfileNotFound) {
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	name := strings.TrimSpace(displayName)
	if name == "" {
		name = phone
	}

	created, err := uc.profileRepo.Create(ctx, &domain.Profile{
		PhoneNumber: phone,
		Name:        name,
	})
	if err == nil {
		uc.logger.Info("HandleMessage: created profile id=%d for %s", created.ID, phone)
		return created, nil
	}
	if errors.Is(err, profileRepo.ErrPhoneExists) {
		return uc.profileRepo.GetByPhone(ctx, phone)
	}

	return nil, fmt.Errorf("%w: failed to create profile: %v", ErrInternal, err)
}

// reply сохраняет новое состояние сессии и возвращает ответ.
// Ошибка сохранения не теряет ход - житель получает просьбу повторить.
func (uc *UseCase) reply(ctx context.Context, phone string, state *domain.ConversationState, text string) (*Response, error) {
	if err := uc.sessions.Put(ctx, phone, state); err != nil {
		uc.logger.Error("HandleMessage: failed to save session for %s: %v", phone, err)
		return &Response{Reply: msgTryAgain}, nil
	}
	return &Response{Reply: text}, nil
}
