package app

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type recordingMailer struct {
	err  error
	sent []Message
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestService(m Mailer) *Service {
	return NewService(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubjectFor(t *testing.T) {
	cases := []struct {
		kind string
		want string
	}{
		{"pago", "Payment successful"},
		{"cita", "Appointment confirmed"},
		{"otros", "Notification"},
		{"recordatorio", "recordatorio"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SubjectFor(tc.kind); got != tc.want {
			t.Errorf("SubjectFor(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}

	// Resolving the same kind twice yields the same subject.
	if SubjectFor("pago") != SubjectFor("pago") {
		t.Error("SubjectFor is not stable for repeated kinds")
	}
}

func TestNotifyValidation(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(mailer)

	t.Run("blank recipient -> invalid", func(t *testing.T) {
		err := svc.Notify(context.Background(), "pago", "hola", "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blank message -> invalid", func(t *testing.T) {
		err := svc.Notify(context.Background(), "pago", "", "ana@example.com")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	if len(mailer.sent) != 0 {
		t.Fatalf("mailer reached on invalid input: %d messages", len(mailer.sent))
	}
}

func TestNotify(t *testing.T) {
	t.Run("sends with mapped subject", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestService(mailer)

		if err := svc.Notify(context.Background(), "cita", "mañana a las 10", "ana@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mailer.sent) != 1 {
			t.Fatalf("expected 1 message, got %d", len(mailer.sent))
		}
		msg := mailer.sent[0]
		if msg.Subject != "Appointment confirmed" || msg.To != "ana@example.com" {
			t.Fatalf("unexpected message: %+v", msg)
		}
	})

	t.Run("transport failure -> DeliveryError", func(t *testing.T) {
		mailer := &recordingMailer{err: errors.New("smtp: auth failed")}
		svc := newTestService(mailer)

		err := svc.Notify(context.Background(), "pago", "hola", "ana@example.com")
		var dErr *DeliveryError
		if !errors.As(err, &dErr) {
			t.Fatalf("expected DeliveryError, got %v", err)
		}
	})
}

func TestNotifyWithAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes and names the attachment", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestService(mailer)

		payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
		err := svc.NotifyWithAttachment(ctx, "otros", "tu historia clínica", "ana@example.com", payload, "luna.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msg := mailer.sent[0]
		if string(msg.Attachment) != "%PDF-1.4" || msg.AttachmentName != "luna.pdf" {
			t.Fatalf("unexpected attachment: name=%q data=%q", msg.AttachmentName, msg.Attachment)
		}
	})

	t.Run("missing name falls back to the default", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestService(mailer)

		payload := base64.StdEncoding.EncodeToString([]byte("x"))
		if err := svc.NotifyWithAttachment(ctx, "otros", "adjunto", "ana@example.com", payload, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mailer.sent[0].AttachmentName != DefaultAttachmentName {
			t.Fatalf("expected %q, got %q", DefaultAttachmentName, mailer.sent[0].AttachmentName)
		}
	})

	t.Run("undecodable attachment still sends the message", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestService(mailer)

		err := svc.NotifyWithAttachment(ctx, "otros", "adjunto", "ana@example.com", "!!!not-base64!!!", "x.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mailer.sent) != 1 {
			t.Fatalf("expected 1 message, got %d", len(mailer.sent))
		}
		if mailer.sent[0].Attachment != nil {
			t.Fatal("expected no attachment on decode failure")
		}
	})

	t.Run("no attachment payload sends a plain message", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestService(mailer)

		if err := svc.NotifyWithAttachment(ctx, "pago", "hola", "ana@example.com", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mailer.sent[0].Attachment != nil {
			t.Fatal("expected no attachment")
		}
	})
}
