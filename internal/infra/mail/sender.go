package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const welcomeTemplate = `<html>
<body>
  <p>Olá, {{.Name}}!</p>
  <p>Seu cadastro foi concluído com sucesso. Bem-vindo!</p>
</body>
</html>`

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendWelcome(to, name string) error {
	t, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return fmt.Errorf("parse welcome template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, struct{ Name string }{Name: name}); err != nil {
		return fmt.Errorf("render welcome template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Bem-vindo, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}

	return nil
}
