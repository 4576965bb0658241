// Package notify sends the account-creation mail. Dispatch is synchronous
// and best effort; the store reports a failure and moves on.
package notify

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"github.com/bankctl/bankctl/internal/config"
)

const accountCreatedBody = `
<html>
    <body style="font-family: Arial, sans-serif; color: #333;">
        <h2>Hello %s,</h2>
        <p>Your bank account has been successfully created with the following details:</p>
        <ul>
            <li><strong>Account Number:</strong> %s</li>
            <li><strong>Initial Balance:</strong> $%s</li>
        </ul>
    </body>
</html>
`

// Mailer delivers account notices over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether the SMTP settings are complete enough to send.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.Sender != ""
}

// AccountCreated mails the new holder their account number and opening
// balance.
func (m *Mailer) AccountCreated(email, name, number string, balance decimal.Decimal) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("Your New Bank Account Details")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(accountCreatedBody, name, number, balance.StringFixed(2)))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send account details to %s: %w", email, err)
	}
	return nil
}
