package mail

import (
	"context"
	"fmt"
	"log"
	"os"

	"servineta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer sends transactional mail through Amazon SES.
//
// Supported env vars:
//   - MAIL_FROM (default: no-reply@servineta.local)
//   - AWS_REGION (default: us-east-1)
//   - SES_ENDPOINT (optional; e.g. http://localstack:4566)
type SESMailer struct {
	client *sesv2.Client
	from   string
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func ConnectSES() *SESMailer {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
	)
	if err != nil {
		log.Fatalf("failed to create ses config: %v", err)
	}

	endpoint := os.Getenv("SES_ENDPOINT")
	client := sesv2.NewFromConfig(cfg, func(o *sesv2.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &SESMailer{
		client: client,
		from:   getenvDefault("MAIL_FROM", "no-reply@servineta.local"),
	}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
