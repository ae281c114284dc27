package worker

import (
	"context"
	"encoding/json"

	"bodegapos/internal/infra"

	"github.com/rs/zerolog/log"
)

// ReceiptEmailPayload is the job envelope sent to QueueReceiptEmail.
type ReceiptEmailPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ReceiptEmailWorker sends plain-text receipts to the invoice email
// captured at checkout.
type ReceiptEmailWorker struct {
	mailer *infra.Mailer
}

func NewReceiptEmailWorker(mailer *infra.Mailer) *ReceiptEmailWorker {
	return &ReceiptEmailWorker{mailer: mailer}
}

func (w *ReceiptEmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload ReceiptEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("receipt_email_worker: empty to_email, skipping")
		return
	}

	if err := w.mailer.SendReceipt(payload.ToEmail, payload.Subject, payload.Body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("receipt_email_worker: failed to send")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("receipt_email_worker: receipt sent")
}
