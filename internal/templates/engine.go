// Package templates generates the starter file set for a freshly created
// repository. Generation is pure: the same inputs always produce the same
// ordered list of (path, content) entries, so the lifecycle manager can
// retry or inspect a run without surprises.
package templates

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/thisisrober/provisioner/internal/domain"
)

// File is one generated entry. Path is relative to the repository root.
type File struct {
	Path    string
	Content string
}

// Info describes a catalog entry for display.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Engine holds the static catalog. Owner and year are fixed at
// construction so generated output stays byte-stable for the lifetime of
// the process.
type Engine struct {
	owner string
	year  int
	order []string
	gens  map[string]func(e *Engine, name, description string) []File
	infos map[string]Info
}

// New builds the engine for the given provider account login.
func New(owner string) *Engine {
	e := &Engine{
		owner: owner,
		year:  time.Now().Year(),
		gens:  map[string]func(*Engine, string, string) []File{},
		infos: map[string]Info{},
	}

	register := func(info Info, gen func(*Engine, string, string) []File) {
		e.order = append(e.order, info.ID)
		e.infos[info.ID] = info
		e.gens[info.ID] = gen
	}

	register(Info{ID: "basic", Name: "Básico", Description: "Repositorio básico con licencia MIT, README estructurado y .gitignore", Icon: "📄"}, (*Engine).basic)
	register(Info{ID: "data-analysis", Name: "Análisis de Datos", Description: "Jupyter notebook vacío, requirements.txt, estructura data/raw y data/processed", Icon: "📊"}, (*Engine).dataAnalysis)
	register(Info{ID: "node-api", Name: "Node.js API", Description: "Express API backend con rutas, middleware y tests", Icon: "⚡"}, (*Engine).nodeAPI)
	register(Info{ID: "react-vite", Name: "React + Vite", Description: "SPA con React 18, Vite 6 y React Router", Icon: "⚛️"}, (*Engine).reactVite)
	register(Info{ID: "static-site", Name: "Sitio Estático", Description: "HTML/CSS/JS estático listo para desplegar", Icon: "🌐"}, (*Engine).staticSite)
	register(Info{ID: "python-project", Name: "Proyecto Python", Description: "Estructura Python con módulos, tests y setup", Icon: "🐍"}, (*Engine).pythonProject)

	return e
}

// List returns the catalog in registration order.
func (e *Engine) List() []Info {
	out := make([]Info, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.infos[id])
	}
	return out
}

// Generate produces the file set for a template. Unknown ids fail with
// domain.ErrNotFound and produce no partial output.
func (e *Engine) Generate(templateID, repoName, description string) ([]File, error) {
	gen, ok := e.gens[templateID]
	if !ok {
		return nil, fmt.Errorf("templates.Generate: template %q: %w", templateID, domain.ErrNotFound)
	}
	return gen(e, repoName, description), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slug lowercases a repository name for use in URLs and package names.
func slug(name, sep string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), sep), sep)
}

// readmeHeader is the badge block shared across all templates.
func (e *Engine) readmeHeader(name, description string) string {
	return fmt.Sprintf(`<div align="center">

# %s

%s

[![Preview](https://img.shields.io/badge/🌐_Preview-Visit_Site-6366f1?style=for-the-badge)](https://thisisrober.es/projects/%s)
[![GitHub](https://img.shields.io/badge/GitHub-Follow-181717?style=for-the-badge&logo=github)](https://github.com/%s)
[![Stars](https://img.shields.io/github/stars/%s/%s?style=for-the-badge&color=f59e0b)](https://github.com/%s/%s/stargazers)

</div>

---

`, name, description, slug(name, "-"), e.owner, e.owner, name, e.owner, name)
}

func (e *Engine) readmeFooter() string {
	return `
---

<div align="center">
  Made with ❤️ by <a href="https://thisisrober.es">thisisrober</a>
</div>
`
}

func (e *Engine) mitLicense() string {
	return fmt.Sprintf(`MIT License

Copyright (c) %d thisisrober (Robert Lita Jeler)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`, e.year)
}
