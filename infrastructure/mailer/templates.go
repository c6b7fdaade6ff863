package mailer

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	templateVerification  = "verification"
	templateResetPassword = "reset_password"
)

type linkEmailData struct {
	AppName   string
	Name      string
	URL       string
	Token     string
	ExpiresIn string
}

func render(name string, data linkEmailData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
