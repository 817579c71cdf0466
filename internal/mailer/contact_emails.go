package mailer

import (
	"html/template"
	"strings"

	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
)

var managerTmpl = template.Must(template.New("manager").Parse(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <table width="600" cellpadding="0" cellspacing="0" style="margin: 0 auto; background-color: #ffffff; border-radius: 8px;">
    <tr>
      <td style="padding: 30px;">
        <h2 style="margin: 0 0 20px 0; color: #333;">New contact form message</h2>
        <table width="100%" cellpadding="0" cellspacing="0">
          <tr><td style="padding: 6px 0;"><strong>Name:</strong></td><td style="padding: 6px 0;">{{.FullName}}</td></tr>
          <tr><td style="padding: 6px 0;"><strong>Email:</strong></td><td style="padding: 6px 0;">{{.Email}}</td></tr>
          {{if .Phone}}<tr><td style="padding: 6px 0;"><strong>Phone:</strong></td><td style="padding: 6px 0;">{{.Phone}}</td></tr>{{end}}
          <tr><td style="padding: 6px 0;"><strong>Subject:</strong></td><td style="padding: 6px 0;">{{.Subject}}</td></tr>
        </table>
        <div style="margin-top: 20px; padding: 15px; background-color: #f8f9fa; border-left: 4px solid #667eea; white-space: pre-line;">{{.Message}}</div>
        <p style="margin-top: 20px; color: #999; font-size: 12px;">Sent from {{.IP}}</p>
      </td>
    </tr>
  </table>
</body>
</html>`))

var ackTmpl = template.Must(template.New("ack").Parse(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <table width="600" cellpadding="0" cellspacing="0" style="margin: 0 auto; background-color: #ffffff; border-radius: 8px;">
    <tr>
      <td style="padding: 30px;">
        <h2 style="margin: 0 0 20px 0; color: #333;">Thank you, {{.FirstName}}!</h2>
        <p style="color: #555;">We received your message and will get back to you as soon as possible.</p>
        <div style="margin-top: 20px; padding: 15px; background-color: #f8f9fa; border-left: 4px solid #667eea;">
          <p style="margin: 0 0 10px 0;"><strong>{{.Subject}}</strong></p>
          <div style="white-space: pre-line; color: #555;">{{.Message}}</div>
        </div>
        <p style="margin-top: 20px; color: #999; font-size: 12px;">This is an automatic reply from {{.OrgName}}, please do not respond directly.</p>
      </td>
    </tr>
  </table>
</body>
</html>`))

type managerData struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
	IP       string
}

type ackData struct {
	FirstName string
	Subject   string
	Message   string
	OrgName   string
}

func renderManagerBody(msg *models.ContactMessage) (string, error) {
	var b strings.Builder
	err := managerTmpl.Execute(&b, managerData{
		FullName: strings.TrimSpace(msg.FirstName + " " + msg.LastName),
		Email:    msg.Email,
		Phone:    msg.Phone,
		Subject:  msg.Subject,
		Message:  msg.Message,
		IP:       msg.IP,
	})
	return b.String(), err
}

func renderAcknowledgmentBody(msg *models.ContactMessage, orgName string) (string, error) {
	var b strings.Builder
	err := ackTmpl.Execute(&b, ackData{
		FirstName: msg.FirstName,
		Subject:   msg.Subject,
		Message:   msg.Message,
		OrgName:   orgName,
	})
	return b.String(), err
}
