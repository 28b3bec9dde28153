package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/profile"
)

//go:embed page.html.tmpl
var pageTemplate string

// pageData is passed to the page template. Body is already escaped markup;
// Title is escaped before execution.
type pageData struct {
	Title string
	Body  string
	Style profile.HTMLStyle
	ATS   bool
}

func parsePage() (*template.Template, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse page template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// assemblePage embeds body in the page shell with the profile's stylesheet
func assemblePage(body, title string, p profile.Profile) (string, error) {
	tmpl, err := parsePage()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	err = tmpl.Execute(&result, pageData{
		Title: EscapeHTML(title),
		Body:  body,
		Style: p.HTML,
		ATS:   p.Mode.IsATS(),
	})
	if err != nil {
		return "", &TemplateError{
			Message: "failed to execute page template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
