package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	Host     string
	Port     int
	From     string
	Password string
	AdminTo  string
}

// Mailer sends operational notifications over SMTP. Sending is best effort:
// a failed notification is logged and never fails the request that
// triggered it.
type Mailer struct {
	cfg MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// NotifyAdminNewDeposit tells the admin inbox that a proof is waiting for review.
func (m *Mailer) NotifyAdminNewDeposit(userEmail string, amount float64, network string) {
	subject := "New deposit proof pending review"
	body := fmt.Sprintf(
		"<p>A new deposit proof was submitted.</p>"+
			"<p>User: %s<br>Amount: %.2f USDT<br>Network: %s</p>"+
			"<p>Review it in the admin panel.</p>",
		userEmail, amount, network)
	m.send(m.cfg.AdminTo, subject, body)
}

// NotifyDepositVerified tells the user their balance has been credited.
func (m *Mailer) NotifyDepositVerified(userEmail string, amount float64) {
	subject := "Your deposit has been verified"
	body := fmt.Sprintf(
		"<p>Your deposit of %.2f USDT has been verified and credited to your account balance.</p>",
		amount)
	m.send(userEmail, subject, body)
}

func (m *Mailer) send(to, subject, body string) {
	if m.cfg.Host == "" || to == "" {
		logrus.Debug("mail not configured, skipping notification")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.From, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		logrus.Errorf("failed to send mail to %s: %s", to, err)
		return
	}
	logrus.Infof("notification mail sent to %s", to)
}
