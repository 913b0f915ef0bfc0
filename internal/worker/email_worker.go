package worker

// email_worker.go
// Processes import-report mail jobs from QueueReportEmail: after a CSV import
// commits, the operator gets a summary of imported vs skipped rows.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Retrend821/inventory-saas-sub000/internal/infra"
)

// ReportEmailPayload is the job envelope sent to QueueReportEmail.
type ReportEmailPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the report mail, with an optional PDF attachment.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload ReportEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return
	}

	if err := w.mailer.SendReport(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: report sent")
}
