package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/config"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailSender is the part of email.Client the handlers depend on.
type emailSender interface {
	SendWelcomeEmail(to, name string) error
}

// InitHandlers builds the dependencies the task handlers need.
// It must run before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	return processWelcomeEmail(j.logger, j.emailClient, t)
}

// processWelcomeEmail decodes the task payload and sends the email.
// A returned error makes Asynq retry the task.
func processWelcomeEmail(logger *zerolog.Logger, sender emailSender, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := sender.SendWelcomeEmail(p.To, p.Name); err != nil {
		logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}
