package utils

import (
	"log"
	"os"
	"strconv"

	mail "gopkg.in/mail.v2"
)

// SendEmail dispatches a plain-text notification on a background goroutine.
// Delivery is best-effort: when SMTP is not configured the send is skipped,
// and a failed send is logged but never reaches the caller.
func SendEmail(to, subject, body string) {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	if host == "" || user == "" {
		log.Println("sendEmail: SMTP not configured, skipping send to", to)
		return
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	m := mail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := mail.NewDialer(host, port, user, pass)

	go func() {
		if err := d.DialAndSend(m); err != nil {
			log.Println("sendEmail error:", err)
		}
	}()
}
