package consumer

import (
	"context"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/events"

	"go.uber.org/zap"
)

type Notifier interface {
	NotifyPayslipReady(ctx context.Context, event events.PayRunCreatedEvent, slip events.PayslipSummary) error
}

// LogNotifier writes the notification to the structured log. It stands
// in for an email or SMS gateway in environments that have none.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notifier")}
}

func (n *LogNotifier) NotifyPayslipReady(
	_ context.Context,
	event events.PayRunCreatedEvent,
	slip events.PayslipSummary,
) error {
	n.logger.Info("payslip ready",
		zap.String("employee_id", slip.EmployeeID),
		zap.String("payslip_id", slip.PayslipID),
		zap.String("pay_run", event.Name),
		zap.String("period_start", event.PeriodStart),
		zap.String("period_end", event.PeriodEnd),
		zap.Int64("net", slip.Net),
	)
	return nil
}
