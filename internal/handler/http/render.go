// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/ncm-lead/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names, one template file each.
const (
	pageIndex      = "index"
	pageLead       = "lead"
	pageLogin      = "login"
	pageProfile    = "perfil"
	pageResult     = "resultado"
	pageSimulation = "simulacao"
)

var pageTitles = map[string]string{
	pageIndex:      "Consulta NCM",
	pageLead:       "Cadastro",
	pageLogin:      "Entrar",
	pageProfile:    "Meu perfil",
	pageResult:     "Resultado",
	pageSimulation: "Simulação",
}

// pageData is what every page template receives.
type pageData struct {
	Title         string
	Authenticated bool
	UserName      string
	Ncm           *models.NcmData
	User          *models.LeadData
}

// renderer holds one parsed template set per page, each sharing the layout.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	layout, err := template.ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing layout template: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageTitles))
	for name := range pageTitles {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("error cloning layout template: %w", err)
		}
		if pages[name], err = clone.ParseFS(templatesFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("error parsing %s template: %w", name, err)
		}
	}

	return &renderer{pages: pages}, nil
}

// render executes page into a buffer first so that a template error still
// produces a clean 500.
func (rd *renderer) render(w http.ResponseWriter, page string, data pageData, status int) error {
	tmpl, ok := rd.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	data.Title = pageTitles[page]

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("error rendering %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
