package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-HallBookingService/internal/service/settings/models"
)

// Service операции над настройками бронирования (singleton-конфигурация)
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки бронирования
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: booking settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update заменяет настройки бронирования целиком.
// Настройки валидируются до записи; уже созданные брони не пересматриваются.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating booking settings: %s-%s, slot=%dm, days=%v",
		req.StartTime, req.EndTime, req.SlotDurationMinutes, req.WorkingDays)

	settings, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := settings.Validate(); err != nil {
		s.logger.Warn("Update: invalid settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.settingsRepo.Update(ctx, settings)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Update: booking settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking settings updated")
	return models.FromDomainSettings(updated), nil
}
