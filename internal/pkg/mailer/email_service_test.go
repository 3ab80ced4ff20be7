package mailer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.sent = append(c.sent, m...)
	return c.err
}

func TestSendContactNotification(t *testing.T) {
	sender := &captureSender{}
	svc := NewEmailServiceWithSender(sender, "noreply@example.com", "Company")

	err := svc.SendContactNotification("inbox@example.com", ContactNotice{
		Name:    "Ana <script>",
		Email:   "ana@example.com",
		Subject: "Quote",
		Message: "Hello",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"inbox@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"[Contact] Quote"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ana &lt;script&gt;")
}

func TestSendContactNotificationError(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	svc := NewEmailServiceWithSender(sender, "noreply@example.com", "Company")

	err := svc.SendContactNotification("inbox@example.com", ContactNotice{Subject: "x"})
	assert.EqualError(t, err, "smtp down")
}
