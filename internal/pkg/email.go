package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func ApprovalHTML(name, community string) string {
	return fmt.Sprintf(`<p>Hello %s,</p><p>Your registration for <b>%s</b> has been approved. You can now sign in and use the resident portal.</p>`, name, community)
}

func RejectionHTML(name string) string {
	return fmt.Sprintf(`<p>Hello %s,</p><p>Your registration request was not approved. Please contact your community administration for details.</p>`, name)
}
