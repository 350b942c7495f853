package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/shivamGupta-25/Webster.Shivaji/email"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
)

//go:embed templates
var templates embed.FS

// SendConfirmationEmail renders and sends the post-registration email. A
// failure here must not roll back the registration; callers surface it as a
// downgraded success.
func SendConfirmationEmail(ctx context.Context, emailSender email.Sender, fromAddress string, reg Registration, event events.Event) (email.Result, error) {
	htmlBody, err := makeHTMLBody(event, reg)
	if err != nil {
		return email.Result{}, err
	}

	textOnlyBody, err := makeTextOnlyBody(event, reg)
	if err != nil {
		return email.Result{}, err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.Registrant.Email},
		Subject:     fmt.Sprintf("Registration confirmed - %s", event.Name),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func makeHTMLBody(event events.Event, reg Registration) (string, error) {
	return renderTemplate("registration-confirmation.tmpl", event, reg)
}

func makeTextOnlyBody(event events.Event, reg Registration) (string, error) {
	return renderTemplate("registration-confirmation-textonly.tmpl", event, reg)
}

func renderTemplate(name string, event events.Event, reg Registration) (string, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Event":        event,
		"Registration": reg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
