package smtp

import (
	"context"
	"io"

	"github.com/vetstore-io/vetstore/internal/notifications/app"
	"gopkg.in/gomail.v2"
)

// Mailer delivers messages over SMTP with the sender's application
// credential (e.g. a Gmail app password).
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, sender, appPassword string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, sender, appPassword),
		from:   sender,
	}
}

// Send dials and delivers synchronously. gomail does not take a context;
// the SMTP dial carries its own timeout.
func (m *Mailer) Send(_ context.Context, msg app.Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if len(msg.Attachment) > 0 {
		data := msg.Attachment
		gm.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	return m.dialer.DialAndSend(gm)
}
