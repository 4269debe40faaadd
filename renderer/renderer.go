// Package renderer renders balance sheet reports as plain text and markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	bs "github.com/etnz/balancesheet"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// RenderBalanceSheet renders the sectioned balance sheet report as plain text.
func RenderBalanceSheet(b *BalanceSheet) string {
	partials := map[string]string{
		"section": "section.tmpl",
	}
	return renderTemplate("balanceSheet", "balance_sheet.tmpl", partials, b.funcs(), b)
}

// RenderRatios renders the financial ratio report as plain text.
func RenderRatios(b *BalanceSheet) string {
	return renderTemplate("ratios", "ratios.tmpl", nil, b.funcs(), b)
}

// funcs returns the template functions that format rows in columns.
func (b *BalanceSheet) funcs() template.FuncMap {
	return template.FuncMap{
		"row": func(name string, m bs.Money) string {
			return fmt.Sprintf("%-45s %s", name, b.amount(m))
		},
		"ratio": func(label string, r bs.Ratio) string {
			return fmt.Sprintf("%-30s %s", label, r)
		},
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
