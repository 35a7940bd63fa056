package domain

import (
	"encoding/json"
	"testing"
)

func TestMigrateInfoBodyKeepsJSON(t *testing.T) {
	body := `{"cerimonia":"Igreja Matriz","recepcao":"","dressCode":"Formal","hospedagem":"","transporte":""}`
	out, changed := MigrateInfoBody(body)
	if changed {
		t.Fatal("valid JSON should not be migrated")
	}
	if out != body {
		t.Fatalf("body altered: %q", out)
	}
}

func TestMigrateInfoBodyUpgradesLegacyText(t *testing.T) {
	legacy := "📍 Cerimônia\nConcatedral de São Pedro – às 19h\nAv. Dantas Barreto, 677\n\n" +
		"📍 Recepção\nEspaço Dom – R. das Oficinas, 15\n\n" +
		"👗 Dress Code\nFormal\n\n" +
		"🏨 Hospedagem\nHotel Luzeiros Recife\n\n" +
		"🚖 Transporte\nParceria com TeleTáxi!"

	out, changed := MigrateInfoBody(legacy)
	if !changed {
		t.Fatal("legacy body should be migrated")
	}
	var fields InfoFields
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("migrated body is not JSON: %v", err)
	}
	if fields.Cerimonia != "Concatedral de São Pedro – às 19h\nAv. Dantas Barreto, 677" {
		t.Fatalf("cerimonia: %q", fields.Cerimonia)
	}
	if fields.Recepcao != "Espaço Dom – R. das Oficinas, 15" {
		t.Fatalf("recepcao: %q", fields.Recepcao)
	}
	if fields.DressCode != "Formal" {
		t.Fatalf("dressCode: %q", fields.DressCode)
	}
	if fields.Transporte != "Parceria com TeleTáxi!" {
		t.Fatalf("transporte: %q", fields.Transporte)
	}
}

func TestMigrateInfoBodyWithoutEmojiMarkers(t *testing.T) {
	legacy := "Cerimônia\nIgreja Matriz às 18h\n\nDress Code\nEsporte fino"
	out, changed := MigrateInfoBody(legacy)
	if !changed {
		t.Fatal("expected migration")
	}
	var fields InfoFields
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields.Cerimonia != "Igreja Matriz às 18h" {
		t.Fatalf("cerimonia: %q", fields.Cerimonia)
	}
	if fields.DressCode != "Esporte fino" {
		t.Fatalf("dressCode: %q", fields.DressCode)
	}
	if fields.Hospedagem != "" {
		t.Fatalf("hospedagem should be empty, got %q", fields.Hospedagem)
	}
}

func TestMigrateInfoBodyIdempotent(t *testing.T) {
	legacy := "Cerimônia\nIgreja Matriz"
	once, changed := MigrateInfoBody(legacy)
	if !changed {
		t.Fatal("first pass should migrate")
	}
	twice, changed := MigrateInfoBody(once)
	if changed {
		t.Fatal("second pass must be a no-op")
	}
	if once != twice {
		t.Fatalf("output drifted: %q vs %q", once, twice)
	}
}

func TestDefaultContentInfoIsStructured(t *testing.T) {
	var fields InfoFields
	if err := json.Unmarshal([]byte(DefaultContent(SectionInfo)), &fields); err != nil {
		t.Fatalf("default informacoes is not JSON: %v", err)
	}
	if fields.Cerimonia == "" {
		t.Fatal("default cerimonia is empty")
	}
	if DefaultContent("unknown") != "" {
		t.Fatal("unknown section should have no default")
	}
}
