package consumer

import (
	"context"
	"encoding/json"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayRunCreated delivers payslip notifications for freshly
// generated pay runs. Delivery is best effort: a failed notification is
// logged and the message is still committed, it never blocks the run.
func ConsumePayRunCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payrun_created")
	log.Info("pay run notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("pay run notification consumer stopped")
				return
			}
			log.Error("fetch pay run created message failed", zap.Error(err))
			continue
		}

		var event events.PayRunCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payrun_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		for _, slip := range event.Payslips {
			if err := notifier.NotifyPayslipReady(ctx, event, slip); err != nil {
				log.Warn("payslip notification failed",
					zap.String("pay_run_id", event.PayRunID),
					zap.String("payslip_id", slip.PayslipID),
					zap.String("employee_id", slip.EmployeeID),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit pay run created message failed", zap.Error(err))
			continue
		}

		log.Info("pay run notifications dispatched",
			zap.String("pay_run_id", event.PayRunID),
			zap.String("company_id", event.CompanyID),
			zap.Int("payslips", len(event.Payslips)),
		)
	}
}
