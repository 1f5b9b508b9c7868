package run_payment_sweep

import (
	"github.com/m04kA/SMC-HallBookingService/internal/usecase/payment_sweep"
)

// SweepResponse итог прохода по оплатам бронирований
type SweepResponse struct {
	Scanned   int `json:"scanned"`
	Reminded  int `json:"reminded"`
	Cancelled int `json:"cancelled"`
	Confirmed int `json:"confirmed"`
	Failures  int `json:"failures"`
}

// FromReport конвертирует отчет usecase в HTTP response
func FromReport(r *payment_sweep.Report) SweepResponse {
	return SweepResponse{
		Scanned:   r.Scanned,
		Reminded:  r.Reminded,
		Cancelled: r.Cancelled,
		Confirmed: r.Confirmed,
		Failures:  r.Failures,
	}
}
