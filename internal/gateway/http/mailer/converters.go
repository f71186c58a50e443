package mailer

import "freight/internal/entities"

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From     address   `json:"from"`
	To       []address `json:"to"`
	Subject  string    `json:"subject"`
	Text     string    `json:"text"`
	Category string    `json:"category,omitempty"`
}

func toRequest(sender string, mail entities.Mail) sendRequest {
	return sendRequest{
		From:     address{Email: sender},
		To:       []address{{Email: mail.To, Name: mail.ToName}},
		Subject:  mail.Subject,
		Text:     mail.Text,
		Category: mail.Tag,
	}
}
