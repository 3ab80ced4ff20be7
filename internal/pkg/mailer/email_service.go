// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// ContactNotice is the subset of a contact submission sent to the inbox owner.
type ContactNotice struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

type IEmailService interface {
	SendContactNotification(toEmail string, notice ContactNotice) error
}

// Sender abstracts the SMTP dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return NewEmailServiceWithSender(gomail.NewDialer(host, port, username, password), username, senderName)
}

func NewEmailServiceWithSender(sender Sender, senderEmail, senderName string) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
	<h2>New contact message</h2>
	<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}} &middot; {{.Phone}}{{end}}{{if .Company}} &middot; {{.Company}}{{end}}</p>
	<h3>{{.Subject}}</h3>
	<p style="white-space: pre-wrap;">{{.Message}}</p>
</div>
`))

func (s *emailService) SendContactNotification(toEmail string, notice ContactNotice) error {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, notice); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	if notice.Email != "" {
		m.SetAddressHeader("Reply-To", notice.Email, notice.Name)
	}
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", notice.Subject))
	m.SetBody("text/html", body.String())

	if err := s.sender.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send contact notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Contact notification sent to %s\n", toEmail)
	return nil
}
