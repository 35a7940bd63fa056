package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Content sections known to the site.
const (
	SectionHome    = "home"
	SectionHistory = "historia"
	SectionInfo    = "informacoes"
)

// Content is an editable text section. The "informacoes" section carries a JSON
// document (InfoFields); older rows may still hold the legacy free-text format
// and are migrated on first read.
type Content struct {
	ID        int64
	Section   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InfoFields is the structured form of the "informacoes" section.
type InfoFields struct {
	Cerimonia  string `json:"cerimonia"`
	Recepcao   string `json:"recepcao"`
	DressCode  string `json:"dressCode"`
	Hospedagem string `json:"hospedagem"`
	Transporte string `json:"transporte"`
}

// MigrateInfoBody upgrades a legacy free-text "informacoes" body to the
// structured JSON form. It returns the body unchanged when it is already valid
// JSON. The second return value reports whether a migration happened, so the
// caller can persist and log the upgrade exactly once.
func MigrateInfoBody(body string) (string, bool) {
	var probe map[string]any
	if err := json.Unmarshal([]byte(body), &probe); err == nil {
		return body, false
	}

	fields := InfoFields{
		Cerimonia:  extractBlock(body, "📍 Cerimônia", "Cerimônia"),
		Recepcao:   extractBlock(body, "📍 Recepção", "Recepção"),
		DressCode:  extractBlock(body, "👗 Dress Code", "Dress Code"),
		Hospedagem: extractBlock(body, "🏨 Hospedagem", "Hospedagem"),
		Transporte: extractBlock(body, "🚖 Transporte", "Transporte"),
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return body, false
	}
	return string(out), true
}

// extractBlock finds the paragraph whose first line starts with one of the
// given markers and returns its remaining lines.
func extractBlock(body string, markers ...string) string {
	for _, block := range strings.Split(body, "\n\n") {
		lines := strings.SplitN(strings.TrimSpace(block), "\n", 2)
		if len(lines) < 2 {
			continue
		}
		head := strings.TrimSpace(lines[0])
		for _, marker := range markers {
			if strings.HasPrefix(head, marker) {
				return strings.TrimSpace(lines[1])
			}
		}
	}
	return ""
}

// DefaultContent returns the seed body for a section, empty string when the
// section has no default.
func DefaultContent(section string) string {
	switch section {
	case SectionHome:
		return "Estamos muito felizes em ter você aqui!"
	case SectionHistory:
		return "Era uma vez uma amizade que virou encontro, um encontro que virou história, e uma história que virou vida."
	case SectionInfo:
		out, _ := json.Marshal(InfoFields{
			Cerimonia:  "Concatedral de São Pedro dos Clérigos – às 19h\nAv. Dantas Barreto, 677 – São José",
			Recepcao:   "Espaço Dom – R. das Oficinas, 15 – Pina",
			DressCode:  "Formal",
			Hospedagem: "Hotel Luzeiros Recife\nIbis Boa Viagem",
			Transporte: "Parceria com TeleTáxi na saída da igreja!",
		})
		return string(out)
	}
	return ""
}
