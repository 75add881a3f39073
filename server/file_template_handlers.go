package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

var templateFuncs = template.FuncMap{
	// money renders a cent amount as a decimal string
	"money": func(cents int64) string {
		return fmt.Sprintf("%.2f", float64(cents)/100)
	},
}

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a standalone template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Funcs(templateFuncs).Parse(string(content))
}

// ParsePageTemplate parses a page template inside the shared shell layout.
// The page file defines a "content" block the shell pulls in.
func ParsePageTemplate(name string) (*template.Template, error) {
	shell, err := fs.ReadFile(TemplateFilesFS(), "shell.html")
	if err != nil {
		return nil, err
	}
	page, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("shell.html").Funcs(templateFuncs).Parse(string(shell))
	if err != nil {
		return nil, err
	}
	return tmpl.Parse(string(page))
}

func mustParsePage(name string) *template.Template {
	tmpl, err := ParsePageTemplate(name)
	if err != nil {
		panic("Failed to parse page template " + name + ": " + err.Error())
	}
	return tmpl
}

func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse template " + name + ": " + err.Error())
	}
	return tmpl
}
