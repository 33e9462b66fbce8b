package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/cet-calculator-api/internal/config"
)

func TestNewMailer_Provedor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Mail
		want any
	}{
		{name: "log por padrão", cfg: config.Mail{}, want: &logMailer{}},
		{name: "mailgun sem credenciais cai para log", cfg: config.Mail{Provider: "mailgun"}, want: &logMailer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, NewMailer(tt.cfg))
		})
	}

	m := NewMailer(config.Mail{
		Provider:      "Mailgun",
		MailgunDomain: "mg.exemplo.com",
		MailgunAPIKey: "key",
		SenderEmail:   "nao-responda@exemplo.com",
		SenderName:    "CET Calculator",
	})
	mg, ok := m.(*mailgunMailer)
	if assert.True(t, ok) {
		assert.Equal(t, "CET Calculator <nao-responda@exemplo.com>", mg.from)
	}
}

func TestLogMailer_Send(t *testing.T) {
	err := (&logMailer{}).Send(context.Background(), Message{To: "a@b.com", Subject: "Teste", Text: "corpo"})
	assert.NoError(t, err)
}
