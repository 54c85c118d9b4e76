package mailing

import (
	"bytes"
	"html/template"
	"strings"
)

const verificationSubject = "Verify your BulkBlitz account"

var verificationTemplate = template.Must(template.New("verify").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Welcome to BulkBlitz, {{.Name}}!</h2>
  <p>Confirm your email address to start tracking your meals.</p>
  <p><a href="{{.Link}}" style="background:#16a34a;color:#fff;padding:10px 16px;border-radius:6px;text-decoration:none;">Verify email</a></p>
  <p>The link expires in 24 hours.</p>
</body>
</html>`))

// VerificationLink points at the verify endpoint served under appURL.
func VerificationLink(appURL string, token string) string {
	return strings.TrimRight(appURL, "/") + "/api/v1/users/verify?token=" + token
}

func VerificationMail(name string, link string) (string, string, error) {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, struct {
		Name string
		Link string
	}{name, link})
	if err != nil {
		return "", "", err
	}
	return verificationSubject, body.String(), nil
}
