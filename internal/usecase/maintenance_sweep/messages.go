package maintenance_sweep

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

func invoiceText(payment *domain.MaintenancePayment) string {
	return fmt.Sprintf(
		"Your maintenance invoice for %s is ready: %.2f. Please arrange payment at your convenience.",
		payment.MonthLabel(), payment.Amount,
	)
}

// consolidatedReminderText одно напоминание на жителя со всеми
// неоплаченными месяцами и общей суммой
func consolidatedReminderText(unpaid []*domain.MaintenancePayment) string {
	var total float64
	months := make([]string, 0, len(unpaid))
	for _, payment := range unpaid {
		total += payment.Amount
		months = append(months, payment.MonthLabel())
	}

	return fmt.Sprintf(
		"Maintenance dues reminder: %.2f outstanding for %s. Please arrange payment.",
		total, strings.Join(months, ", "),
	)
}
