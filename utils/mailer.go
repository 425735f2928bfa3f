package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/BiniyamTG/Injera-Beyond/config"
)

// Mailer sends transactional email through SES. Registration uses it for a
// best-effort welcome message; failures are logged, never surfaced.
type Mailer struct {
	client *ses.Client
	from   string
}

// NewMailer returns nil when SES_EMAIL is unset, which disables mailing.
func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SESEmail == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Mailer{client: ses.NewFromConfig(awsCfg), from: cfg.SESEmail}, nil
}

func (m *Mailer) sendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered account.
func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, username string) error {
	subject := "Welcome to Injera & Beyond"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Start exploring Ethiopian foods and drinks, save favorites and mark what you have tried.", username)
	return m.sendEmail(ctx, to, subject, body)
}
