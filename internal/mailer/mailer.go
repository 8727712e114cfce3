package mailer

import (
	"context"

	"github.com/mailersend/mailersend-go"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type MailerSendService struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
}

func NewMailerSendService(apiKey, fromName, fromEmail string) *MailerSendService {
	return &MailerSendService{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *MailerSendService) Send(ctx context.Context, to, subject, body string) error {
	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Email: to}})
	message.SetSubject(subject)
	message.SetText(body)

	_, err := m.client.Email.Send(ctx, message)
	return err
}
