package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/zero-defect-summit/event-registration/events"
)

//go:embed templates
var templates embed.FS

type emailTemplateData struct {
	Workshop     events.Workshop
	Registration Registration
	AmountPaid   string
}

func SendRegistrationConfirmationEmail(ctx context.Context, emailSender email.Sender, fromAddress string, reg Registration, workshop events.Workshop) error {
	data := emailTemplateData{
		Workshop:     workshop,
		Registration: reg,
	}
	if reg.Amount != nil {
		data.AmountPaid = reg.Amount.Display()
	}

	htmlBody, err := makeHtmlBody(data)
	if err != nil {
		return err
	}

	textOnlyBody, err := makeTextOnlyBody(data)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.Email},
		Subject:     fmt.Sprintf("Registration confirmed - %s", workshop.Name),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func makeHtmlBody(data emailTemplateData) (string, error) {
	tmpl, err := htmltemplate.ParseFS(templates, "templates/registration-confirmation.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}

func makeTextOnlyBody(data emailTemplateData) (string, error) {
	tmpl, err := texttemplate.ParseFS(templates, "templates/registration-confirmation-textonly.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
