// Package service contains outbound integrations used by the handlers
package service

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the login OTP to a customer. The handlers only ever
// talk to this interface so tests can swap in a stub.
type Mailer interface {
	SendLoginOTP(to, code string) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (s *SMTPMailer) SendLoginOTP(to, code string) error {
	from := viper.GetString("mail.sender")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Request For Login OTP")
	m.SetBody("text/html", fmt.Sprintf(
		"Your login OTP is <b>%s</b>.<br><br>The code is valid for 5 minutes.", code))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
