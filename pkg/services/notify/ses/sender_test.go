package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	err   error
	input *sesv2.SendEmailInput
}

func (f *fakeSES) SendEmail(
	_ context.Context,
	input *sesv2.SendEmailInput,
	_ ...func(*sesv2.Options),
) (*sesv2.SendEmailOutput, error) {
	f.input = input
	return &sesv2.SendEmailOutput{}, f.err
}

func TestSend(t *testing.T) {
	fake := &fakeSES{}
	sender := NewSenderWithClient(fake, "ops@example.com", "team@example.com")

	err := sender.Send(context.Background(), "AWS Cost & Security Alert", "<html></html>")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "ops@example.com", aws.ToString(fake.input.FromEmailAddress))
	assert.Equal(t, []string{"team@example.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "AWS Cost & Security Alert", aws.ToString(fake.input.Content.Simple.Subject.Data))
	assert.Equal(t, "<html></html>", aws.ToString(fake.input.Content.Simple.Body.Html.Data))
}

func TestSend_WrapsProviderError(t *testing.T) {
	fake := &fakeSES{err: errors.New("address not verified")}
	sender := NewSenderWithClient(fake, "ops@example.com", "team@example.com")

	err := sender.Send(context.Background(), "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
