// Package mailer delivers confirmation codes and reset-password links
// over SMTP. It is the only component that talks to the outbound mail
// channel; everything else sees it through the service.Mailer
// interface.
package mailer

import (
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/dalanakids/shop-api/internal/config"
)

// Mailer sends transactional mail through the configured SMTP relay.
type Mailer struct {
	cfg      config.SMTPConfig
	resetURL string
}

// New validates the SMTP settings and returns a Mailer. The reset URL
// is the public endpoint the reset token is appended to.
func New(cfg config.SMTPConfig, resetURL string) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	return &Mailer{cfg: cfg, resetURL: strings.TrimSuffix(resetURL, "/")}, nil
}

// SendConfirmationCode mails the 4-digit registration code.
func (m *Mailer) SendConfirmationCode(to string, code int) error {
	body := fmt.Sprintf(`<html><body><div style="text-align:center">
<p>Ingresa este c&oacute;digo para completar tu registro:</p>
<p style="font-size:24px;letter-spacing:3px"><b>%d</b></p>
</div></body></html>`, code)
	return m.send(to, "Código de verificación www.dalanakids.com", body)
}

// SendResetLink mails the reset-password link with the opaque token
// appended as the final path segment.
func (m *Mailer) SendResetLink(to, token string) error {
	link := m.resetURL + "/" + token
	body := fmt.Sprintf(`<html><body><div>
<h1>Cambio de contrase&ntilde;a www.dalanakids.com</h1>
<p>Presiona el enlace para renovar tu contrase&ntilde;a. No compartas este enlace con nadie.</p>
<p><a href="%s">Reset Password</a></p>
<p>Si no has solicitado renovar tu contrase&ntilde;a ignora este mensaje.</p>
</div></body></html>`, link)
	return m.send(to, "Cambio de contraseña www.dalanakids.com", body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	// Port 465 speaks implicit TLS, everything else STARTTLS.
	if m.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	if m.cfg.User != "" && m.cfg.Pass != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Pass),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}
