package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func newLoader(t *testing.T) *Loader {
	t.Helper()
	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	return loader
}

func TestLoadFileJSONArray(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "events.json", `[
		{"id": "evt-1", "event_type": "incident"},
		{"id": "evt-2", "rawFields": {"severity": {"raw": "Severe"}}}
	]`)

	events, err := newLoader(t).LoadFile(filepath.Join(dir, "events.json"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	track, ok := events[1].RawFields["severity"]
	if !ok {
		t.Fatal("rawFields not decoded")
	}
	if raw, _ := track.RawValue(); raw != "Severe" {
		t.Errorf("RawValue() = %v, want Severe", raw)
	}
}

func TestLoadFileEnvelope(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feed.json", `{"events": [{"id": "evt-1"}], "feed_info": {"publisher": "dot"}}`)

	events, err := newLoader(t).LoadFile(filepath.Join(dir, "feed.json"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(events) != 1 || events[0].ID() != "evt-1" {
		t.Errorf("events = %+v, want one evt-1", events)
	}
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feed.yaml", `
events:
  - id: evt-1
    event_type: work-zone
    rawFields:
      startTime:
        raw: 03/01/2024
        normalized: "2024-03-01T08:00:00Z"
`)

	events, err := newLoader(t).LoadFile(filepath.Join(dir, "feed.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if raw, _ := events[0].RawFields["startTime"].RawValue(); raw != "03/01/2024" {
		t.Errorf("RawValue() = %v, want 03/01/2024", raw)
	}
}

func TestLoadFileRejectsNonEventDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `[1, 2, 3]`)

	if _, err := newLoader(t).LoadFile(filepath.Join(dir, "bad.json")); err == nil {
		t.Error("LoadFile() should reject a document whose events are not objects")
	}
}

func TestLoadFileRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"events": [`)

	if _, err := newLoader(t).LoadFile(filepath.Join(dir, "broken.json")); err == nil {
		t.Error("LoadFile() should fail on malformed JSON")
	}
}

func TestLoadGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds/iowa.json", `[{"id": "ia-1"}]`)
	writeFile(t, dir, "feeds/ohio.json", `[{"id": "oh-1"}, {"id": "oh-2"}]`)
	writeFile(t, dir, "feeds/notes.txt", `not events`)

	events, err := newLoader(t).LoadGlobs(dir, []string{"feeds/**/*.json"})
	if err != nil {
		t.Fatalf("LoadGlobs() error = %v", err)
	}
	if len(events) != 3 {
		t.Errorf("len(events) = %d, want 3", len(events))
	}
	// Sorted path order: iowa before ohio.
	if events[0].ID() != "ia-1" {
		t.Errorf("first event = %s, want ia-1", events[0].ID())
	}
}

func TestLoadGlobsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feed.json", `[{"id": "evt-1"}]`)

	events, err := newLoader(t).LoadGlobs(dir, []string{"*.json", "feed.json"})
	if err != nil {
		t.Fatalf("LoadGlobs() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("len(events) = %d, want 1 after dedupe", len(events))
	}
}
