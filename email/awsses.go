package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type SESSender struct {
	client *sesv2.Client
}

var _ Sender = (*SESSender)(nil)

func NewSESSender(client *sesv2.Client) *SESSender {
	return &SESSender{client: client}
}

func (s *SESSender) SendEmail(ctx context.Context, e Email) (Result, error) {
	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(e.FromAddress),
		Destination: &types.Destination{
			ToAddresses: e.ToAddresses,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data: aws.String(e.Subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data: aws.String(e.HTMLBody),
					},
					Text: &types.Content{
						Data: aws.String(e.TextBody),
					},
				},
			},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to send email via SES: %w", err)
	}

	return Result{MessageID: aws.ToString(out.MessageId)}, nil
}
