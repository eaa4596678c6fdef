package service

import (
	"fmt"

	"airmen-backend/config"
	"airmen-backend/internal/model"

	gomail "gopkg.in/gomail.v2"
)

// Notifier tells the reviewing administrator that a new public submission is
// waiting. Implementations must be safe to call from a goroutine.
type Notifier interface {
	NotifySubmission(a *model.Airman) error
}

type mailNotifier struct{}

// NewMailNotifier builds the SMTP-backed Notifier. Mail settings come from
// MAIL_HOST, MAIL_PORT, MAIL_USER, MAIL_PASS and ADMIN_NOTIFY_EMAIL.
func NewMailNotifier() Notifier {
	return &mailNotifier{}
}

func (n *mailNotifier) NotifySubmission(a *model.Airman) error {
	to := config.GetEnv("ADMIN_NOTIFY_EMAIL", "")
	if to == "" {
		// Notification mail is optional; without a recipient there is
		// nothing to do.
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("MAIL_USER", "noreply@localhost"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New personnel submission: %s BD/%s", a.Rank, a.BDNo))
	m.SetBody("text/plain", fmt.Sprintf(
		"A new record was submitted through the public form and is waiting for review.\n\n"+
			"Name: %s (%s)\nRank: %s\nTrade: %s\nFlight: %s\nReference: %s\n",
		a.NameEn, a.NameBn, a.Rank, a.Trade, a.Flight, a.SubmissionRef))

	d := gomail.NewDialer(
		config.GetEnv("MAIL_HOST", "localhost"),
		config.GetEnvAsInt("MAIL_PORT", 587),
		config.GetEnv("MAIL_USER", ""),
		config.GetEnv("MAIL_PASS", ""),
	)
	return d.DialAndSend(m)
}
