// Package renderer turns the derived views of the record keeper into
// markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates
var templates embed.FS

// DashboardMarkdown renders a period summary to a markdown string.
func DashboardMarkdown(s *Dashboard) string {
	partials := map[string]string{
		"dashboard_categories": "dashboard_categories.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, s)
}

// PortfolioMarkdown renders a portfolio valuation to a markdown string.
func PortfolioMarkdown(p *Portfolio) string {
	partials := map[string]string{
		"portfolio_holdings":   "portfolio_holdings.md",
		"portfolio_allocation": "portfolio_allocation.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, p)
}

// GoalsMarkdown renders the goal progress list to a markdown string.
func GoalsMarkdown(g *Goals) string {
	return renderTemplate("goals", "goals.md", nil, g)
}

// TransactionsMarkdown renders a transaction listing to a markdown string.
func TransactionsMarkdown(t *Transactions) string {
	return renderTemplate("transactions", "transactions.md", nil, t)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, "templates/"+file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
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
