package models

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек бронирования
type UpdateSettingsRequest struct {
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "21:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	WorkingDays         []int  `json:"workingDays"` // ISO: 1=Пн .. 7=Вс
}

// ToDomain конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomain() (*domain.BookingSettings, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.BookingSettings{
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: r.SlotDurationMinutes,
		WorkingDays:         r.WorkingDays,
	}, nil
}

// Response модели

// SettingsResponse ответ с настройками бронирования
type SettingsResponse struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	WorkingDays         []int  `json:"workingDays"`
	UpdatedAt           string `json:"updatedAt"` // RFC3339
}

// FromDomainSettings конвертирует domain модель в response
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	return &SettingsResponse{
		StartTime:           s.StartTime.String(),
		EndTime:             s.EndTime.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkingDays:         s.WorkingDays,
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}
