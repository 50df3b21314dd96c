package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	"estimatepro/internal/usecase/interfaces"
)

const signature = `<p>Thanks,<br/>The EstiMate Pro team</p>`

var (
	newLeadTmpl = template.Must(template.New("new_lead").Parse(
		`<p>Hi {{or .BuilderName "there"}},</p>
<p>You have a new client survey submission from <strong>{{.ClientName}}</strong>.</p>
<p><a href="{{.DashboardURL}}" target="_blank">View the lead in your dashboard</a></p>
` + signature))

	trialReminderTmpl = template.Must(template.New("trial_reminder").Parse(
		`<p>Hi {{or .BusinessName "there"}},</p>
<p>Your EstiMate Pro trial ends on <strong>{{.TrialEndsAt.Format "Mon, 2 Jan 2006"}}</strong>.</p>
<p>Please add your card to keep uninterrupted access to your dashboard.</p>
<p><a href="{{.FrontendURL}}" target="_blank">Go to EstiMate Pro</a></p>
` + signature))

	trialExpiredTmpl = template.Must(template.New("trial_expired").Parse(
		`<p>Hi {{or .BusinessName "there"}},</p>
<p>Your EstiMate Pro trial has expired and dashboard access is paused.</p>
<p>Add a payment method to continue using the quoting assistant.</p>
<p><a href="{{.FrontendURL}}" target="_blank">Go to EstiMate Pro</a></p>
` + signature))

	passwordResetTmpl = template.Must(template.New("password_reset").Parse(
		`<p>Use the link below to reset your password:</p>
<p><a href="{{.ResetURL}}" target="_blank">{{.ResetURL}}</a></p>
<p>This link expires in {{.Expiry}}.</p>`))
)

type message struct {
	Subject string
	HTML    string
}

func render(tmpl *template.Template, subject string, data any) (message, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return message{}, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return message{Subject: subject, HTML: buf.String()}, nil
}

func newLeadMessage(d interfaces.NewLeadEmail) (message, error) {
	return render(newLeadTmpl, fmt.Sprintf("New client submission from %s", d.ClientName), d)
}

func trialReminderMessage(d interfaces.TrialReminderEmail) (message, error) {
	return render(trialReminderTmpl, "Trial ending soon - Add your card to keep EstiMate Pro access", d)
}

func trialExpiredMessage(d interfaces.TrialExpiredEmail) (message, error) {
	return render(trialExpiredTmpl, "Trial expired - Add payment method to re-enable access", d)
}

func passwordResetMessage(d interfaces.PasswordResetEmail) (message, error) {
	data := struct {
		ResetURL string
		Expiry   string
	}{ResetURL: d.ResetURL, Expiry: humanizeTTL(d.TTL.Minutes())}
	return render(passwordResetTmpl, "Reset your EstiMate Pro password", data)
}

func humanizeTTL(minutes float64) string {
	m := int(math.Round(minutes))
	switch {
	case m <= 0:
		return "1 hour"
	case m%60 == 0 && m/60 == 1:
		return "1 hour"
	case m%60 == 0:
		return fmt.Sprintf("%d hours", m/60)
	case m == 1:
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}
