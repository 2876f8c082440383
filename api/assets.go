package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed public
var publicFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.tmpl")
}

func publicFileSystem() http.FileSystem {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
