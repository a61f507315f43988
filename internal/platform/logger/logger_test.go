package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		" error ": Error,
		"verbose": Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "vet-recetas", Output: &buf})

	log.With(map[string]any{"request_id": "abc"}).Info("receta creada", map[string]any{"receta_id": 7})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "receta creada" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["app"] != "vet-recetas" || entry["request_id"] != "abc" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["receta_id"] != float64(7) {
		t.Fatalf("missing receta_id: %v", entry)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Output: &buf})

	log.Info("no debería salir", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.Error("sí sale", map[string]any{"err": "boom"})
	if !strings.Contains(buf.String(), "err=boom") {
		t.Fatalf("expected text output with field, got %q", buf.String())
	}
}
