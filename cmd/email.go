package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/shivamGupta-25/Webster.Shivaji/api"
	"github.com/shivamGupta-25/Webster.Shivaji/email"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev.
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) (email.Result, error) {
	el.logger.Info("email that would be sent", slog.Any("email", e))

	return email.Result{MessageID: "local-dev"}, nil
}

func createEmailSender(awsCfg aws.Config, logger *slog.Logger, environment api.Environment) (email.Sender, error) {
	if environment == api.LOCAL {
		return &EmailLogger{logger: logger}, nil
	}

	return email.NewSESSender(sesv2.NewFromConfig(awsCfg)), nil
}
