package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/de-tools/cloud-sentry/pkg/services/notify"
)

// API is the part of the SES client the sender uses.
type API interface {
	SendEmail(
		ctx context.Context,
		input *sesv2.SendEmailInput,
		opts ...func(*sesv2.Options),
	) (*sesv2.SendEmailOutput, error)
}

type sender struct {
	client    API
	sender    string
	recipient string
}

// NewSender creates an email sender backed by AWS SES.
func NewSender(cfg aws.Config, from, to string) notify.EmailSender {
	return &sender{client: sesv2.NewFromConfig(cfg), sender: from, recipient: to}
}

// NewSenderWithClient creates a sender around an existing client.
func NewSenderWithClient(client API, from, to string) notify.EmailSender {
	return &sender{client: client, sender: from, recipient: to}
}

func (s *sender) Send(ctx context.Context, subject, htmlBody string) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{s.recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
