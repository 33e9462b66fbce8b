// Package mailer envia os e-mails de compartilhamento de comparações
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/internal/config"
)

const (
	ProviderMailgun = "mailgun"
	ProviderLog     = "log"
)

type Message struct {
	To      string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer escolhe o provedor configurado. Sem as credenciais do Mailgun os e-mails só são registrados no log.
func NewMailer(cfg config.Mail) Mailer {
	switch strings.ToLower(cfg.Provider) {
	case ProviderMailgun:
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.SenderEmail == "" {
			logrus.Warn("Configuração do Mailgun incompleta, usando envio apenas em log")
			return &logMailer{}
		}

		logrus.Infof("Cliente Mailgun inicializado para o domínio %s", cfg.MailgunDomain)
		timeout := time.Duration(cfg.RequestTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return &mailgunMailer{
			mg:      mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
			from:    formatSender(cfg.SenderName, cfg.SenderEmail),
			timeout: timeout,
		}
	default:
		return &logMailer{}
	}
}

func formatSender(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

type mailgunMailer struct {
	mg      *mailgun.MailgunImpl
	from    string
	timeout time.Duration
}

func (m *mailgunMailer) Send(ctx context.Context, msg Message) error {
	message := m.mg.NewMessage(m.from, msg.Subject, msg.Text, msg.To)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, id, err := m.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("erro ao enviar e-mail via Mailgun: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"to":       msg.To,
		"id":       id,
		"response": resp,
	}).Info("E-mail enviado via Mailgun")

	return nil
}

type logMailer struct{}

func (m *logMailer) Send(_ context.Context, msg Message) error {
	logrus.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Infof("E-mail não enviado (provedor de log):\n%s", msg.Text)
	return nil
}
