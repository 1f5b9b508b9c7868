package get_bookings

import (
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
)

// ToServiceRequest собирает модель сервиса из query параметров
func ToServiceRequest(dateStr, statusStr string) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if dateStr != "" {
		req.Date = ptr.Ptr(dateStr)
	}
	if statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}
	return req
}
