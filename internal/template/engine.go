// Package template renders the HTML pages of the application.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/http/route"
	"lightswitch.app/internal/ui/static"
)

//go:embed templates/common/*.html
var commonTemplateFiles embed.FS

//go:embed templates/views/*.html
var viewTemplateFiles embed.FS

// Engine handles the templating system.
type Engine struct {
	templates map[string]*template.Template
	funcMap   *funcMap
}

// NewEngine returns a new template engine.
func NewEngine(router *mux.ServeMux) *Engine {
	return &Engine{
		templates: make(map[string]*template.Template),
		funcMap:   &funcMap{router},
	}
}

// ParseTemplates parses template files embed into the application.
func (e *Engine) ParseTemplates() error {
	var commonTemplateContents strings.Builder

	dirEntries, err := commonTemplateFiles.ReadDir("templates/common")
	if err != nil {
		return fmt.Errorf("template: failed read templates/common/: %w", err)
	}

	for _, dirEntry := range dirEntries {
		fullName := "templates/common/" + dirEntry.Name()
		fileData, err := commonTemplateFiles.ReadFile(fullName)
		if err != nil {
			return fmt.Errorf("template: failed read %q: %w", fullName, err)
		}
		commonTemplateContents.Write(fileData)
	}

	dirEntries, err = viewTemplateFiles.ReadDir("templates/views")
	if err != nil {
		return fmt.Errorf("template: failed read templates/views/: %w", err)
	}

	for _, dirEntry := range dirEntries {
		templateName := dirEntry.Name()
		fullName := "templates/views/" + templateName
		fileData, err := viewTemplateFiles.ReadFile(fullName)
		if err != nil {
			return fmt.Errorf("template: failed read %q: %w", fullName, err)
		}

		var templateContents strings.Builder
		templateContents.WriteString(commonTemplateContents.String())
		templateContents.Write(fileData)

		slog.Debug("Parsing template",
			slog.String("template_name", templateName))

		e.templates[templateName] = template.Must(template.New("base").
			Funcs(e.funcMap.Map()).Parse(templateContents.String()))
	}
	return nil
}

// Render process a template.
func (e *Engine) Render(name string, data map[string]any) []byte {
	tpl, ok := e.templates[name]
	if !ok {
		panic("This template does not exists: " + name)
	}

	var b bytes.Buffer
	if err := tpl.ExecuteTemplate(&b, "base", data); err != nil {
		panic(err)
	}
	return b.Bytes()
}

type funcMap struct {
	router *mux.ServeMux
}

func (f *funcMap) Map() template.FuncMap {
	return template.FuncMap{
		"route": func(name string, args ...any) string {
			return route.Path(f.router, name, args...)
		},
		"cssChecksum": func(name string) string {
			return static.StylesheetBundleChecksums[name]
		},
		"jsChecksum": func(name string) string {
			return static.JavascriptBundleChecksums[name]
		},
	}
}
