package typing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseRosterSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"# roster",
		"Bug,images/bug.png,50",
		"",
		"only,two",
		"Crash,images/crash.png,abc",
		"Zero,images/zero.png,0",
		"  Leak , images/leak.png , 70 ",
		"too,many,fields,here",
	}, "\n")

	var buf bytes.Buffer
	records, err := ParseRoster(strings.NewReader(input), log.New(&buf))
	if err != nil {
		t.Fatalf("ParseRoster() failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Name != "Bug" || records[0].Health != 50 || records[0].ImageRef != "images/bug.png" {
		t.Errorf("Unexpected first record %+v", records[0])
	}
	if records[1].Name != "Leak" || records[1].Health != 70 {
		t.Errorf("Fields should be trimmed, got %+v", records[1])
	}

	if got := strings.Count(buf.String(), "skipping malformed roster record"); got != 4 {
		t.Errorf("Expected 4 warnings, got %d:\n%s", got, buf.String())
	}
}

func TestParseRosterNilLogger(t *testing.T) {
	records, err := ParseRoster(strings.NewReader("bad\nBug,b.png,5"), nil)
	if err != nil {
		t.Fatalf("ParseRoster() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
}

func TestParseRosterYAML(t *testing.T) {
	data := []byte(`
enemies:
  - name: Bug
    image: bug.png
    health: 50
    damage: 15
  - name: ""
    health: 10
  - name: Leak
    health: 0
  - name: Crash
    image: crash.png
    health: 80
`)

	records, err := ParseRosterYAML(data, nil)
	if err != nil {
		t.Fatalf("ParseRosterYAML() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Damage != 15 {
		t.Errorf("Expected damage 15, got %d", records[0].Damage)
	}
	if records[1].Name != "Crash" || records[1].Health != 80 {
		t.Errorf("Unexpected second record %+v", records[1])
	}
}

func TestParseRosterYAMLSkipsUndecodableRecord(t *testing.T) {
	data := []byte(`
enemies:
  - name: Bug
    image: bug.png
    health: 50
  - name: Glitch
    image: glitch.png
    health: lots
`)

	var buf bytes.Buffer
	records, err := ParseRosterYAML(data, log.New(&buf))
	if err != nil {
		t.Fatalf("ParseRosterYAML() failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Bug" || records[0].Health != 50 {
		t.Fatalf("Expected only Bug to survive, got %+v", records)
	}
	if got := strings.Count(buf.String(), "skipping malformed roster record"); got != 1 {
		t.Errorf("Expected 1 warning, got %d:\n%s", got, buf.String())
	}

	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadRoster(path, nil)
	if err != nil {
		t.Fatalf("LoadRoster() should keep the valid record, got %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected 1 record, got %d", len(loaded))
	}
}

func TestLoadRosterBadYAMLMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte("enemies: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRoster(path, nil)
	if !IsDataError(err) {
		t.Fatalf("Expected data error, got %v", err)
	}
	if got := strings.Count(err.Error(), "typing:"); got != 1 {
		t.Errorf("Expected a single typing: prefix, got %q", err.Error())
	}
}

func TestLoadRosterByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "roster.yaml")
	if err := os.WriteFile(yamlPath, []byte("enemies:\n  - name: Bug\n    health: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := LoadRoster(yamlPath, nil)
	if err != nil {
		t.Fatalf("LoadRoster(yaml) failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Bug" {
		t.Errorf("Unexpected records %+v", records)
	}

	txtPath := filepath.Join(dir, "roster.txt")
	if err := os.WriteFile(txtPath, []byte("Bug,b.png,5\nLeak,l.png,6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err = LoadRoster(txtPath, nil)
	if err != nil {
		t.Fatalf("LoadRoster(txt) failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
}

func TestLoadRosterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	if err := os.WriteFile(path, []byte("# nothing\n\nbroken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRoster(path, nil)
	if !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("Expected ErrEmptyRoster, got %v", err)
	}
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("Expected *DataError, got %T", err)
	}
	if de.Source != path {
		t.Errorf("Expected source %q, got %q", path, de.Source)
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !IsDataError(err) {
		t.Errorf("Expected data error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	records, err := LoadRoster("", nil)
	if err != nil {
		t.Fatalf("LoadRoster(\"\") failed: %v", err)
	}
	if len(records) == 0 {
		t.Error("Embedded roster should not be empty")
	}

	words, err := LoadWords("")
	if err != nil {
		t.Fatalf("LoadWords(\"\") failed: %v", err)
	}
	if len(words) == 0 {
		t.Error("Embedded word list should not be empty")
	}
	for _, w := range words {
		if strings.TrimSpace(w) != w || w == "" {
			t.Errorf("Word %q should be trimmed and non-empty", w)
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("\n   \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWords(path)
	if !errors.Is(err, ErrEmptyWordList) {
		t.Errorf("Expected ErrEmptyWordList, got %v", err)
	}
}

func TestBuildEnemies(t *testing.T) {
	records := []EnemyRecord{
		{Name: "Bug", Health: 50},
		{Name: "Crash", Health: 80, Damage: 20},
	}
	enemies := BuildEnemies(records, 7, ScalingPolicy{Modifier: 0.5})

	if len(enemies) != 2 {
		t.Fatalf("Expected 2 enemies, got %d", len(enemies))
	}
	if enemies[0].Damage() != 7 {
		t.Errorf("Expected default damage 7, got %d", enemies[0].Damage())
	}
	if enemies[1].Damage() != 20 {
		t.Errorf("Expected record damage 20, got %d", enemies[1].Damage())
	}

	enemies[0].OnLevelChanged(2)
	if enemies[0].MaxHealth() != 100 {
		t.Errorf("Expected scaling policy to apply, got %d", enemies[0].MaxHealth())
	}
}
