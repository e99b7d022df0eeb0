package typing

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed assets/enemies.txt
var defaultRoster []byte

//go:embed assets/words.txt
var defaultWords []byte

var (
	// ErrEmptyRoster means no usable enemy was loaded.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrEmptyWordList means no usable word was loaded.
	ErrEmptyWordList = errors.New("word list is empty")
)

// DataError reports a roster or word source that cannot feed a session.
type DataError struct {
	Source string
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("typing: %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// EnemyRecord is one roster entry as read from a data source.
type EnemyRecord struct {
	Name     string `yaml:"name"`
	ImageRef string `yaml:"image"`
	Health   int    `yaml:"health"`
	Damage   int    `yaml:"damage,omitempty"`
}

// yamlRoster is the YAML roster file layout. Entries stay raw nodes so one
// bad record cannot fail the whole file.
type yamlRoster struct {
	Enemies []yaml.Node `yaml:"enemies"`
}

const rosterFieldCount = 3

// ParseRoster reads "name,imageRef,baseHealth" records, one per line.
// Blank lines and lines starting with '#' are skipped silently; malformed
// records are skipped with a warning.
func ParseRoster(r io.Reader, logger *log.Logger) ([]EnemyRecord, error) {
	logger = orDiscard(logger)

	var records []EnemyRecord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseRosterLine(line)
		if err != nil {
			logger.Warn("skipping malformed roster record", "line", lineNo, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return records, nil
}

func parseRosterLine(line string) (EnemyRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != rosterFieldCount {
		return EnemyRecord{}, fmt.Errorf("expected %d fields, got %d", rosterFieldCount, len(parts))
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return EnemyRecord{}, errors.New("empty name")
	}
	health, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return EnemyRecord{}, fmt.Errorf("health: %w", err)
	}
	if health <= 0 {
		return EnemyRecord{}, fmt.Errorf("health must be positive, got %d", health)
	}

	return EnemyRecord{
		Name:     name,
		ImageRef: strings.TrimSpace(parts[1]),
		Health:   health,
	}, nil
}

// ParseRosterYAML reads a YAML roster. Entries that do not decode, lack a
// name, or have non-positive health are skipped with a warning.
func ParseRosterYAML(data []byte, logger *log.Logger) ([]EnemyRecord, error) {
	logger = orDiscard(logger)

	var yr yamlRoster
	if err := yaml.Unmarshal(data, &yr); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	records := make([]EnemyRecord, 0, len(yr.Enemies))
	for i := range yr.Enemies {
		node := &yr.Enemies[i]
		var rec EnemyRecord
		if err := node.Decode(&rec); err != nil {
			logger.Warn("skipping malformed roster record", "index", i, "line", node.Line, "error", err)
			continue
		}
		rec.Name = strings.TrimSpace(rec.Name)
		if rec.Name == "" || rec.Health <= 0 {
			logger.Warn("skipping malformed roster record", "index", i, "line", node.Line, "name", rec.Name, "health", rec.Health)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadRoster loads enemy records from path, picking the parser by extension.
// An empty path loads the embedded default roster. Zero usable records is a
// DataError.
func LoadRoster(path string, logger *log.Logger) ([]EnemyRecord, error) {
	var (
		records []EnemyRecord
		err     error
	)

	source := path
	switch {
	case path == "":
		source = "embedded roster"
		records, err = ParseRoster(bytes.NewReader(defaultRoster), logger)
	default:
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, &DataError{Source: path, Err: readErr}
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			records, err = ParseRosterYAML(data, logger)
		default:
			records, err = ParseRoster(bytes.NewReader(data), logger)
		}
	}
	if err != nil {
		return nil, &DataError{Source: source, Err: err}
	}
	if len(records) == 0 {
		return nil, &DataError{Source: source, Err: ErrEmptyRoster}
	}
	return records, nil
}

// ParseWords reads one challenge word per line, skipping blank lines.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// LoadWords loads the word list from path, or the embedded list when path is
// empty. Zero words is a DataError.
func LoadWords(path string) ([]string, error) {
	source := path
	var data []byte
	if path == "" {
		source = "embedded words"
		data = defaultWords
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &DataError{Source: path, Err: err}
		}
	}

	words, err := ParseWords(bytes.NewReader(data))
	if err != nil {
		return nil, &DataError{Source: source, Err: err}
	}
	if len(words) == 0 {
		return nil, &DataError{Source: source, Err: ErrEmptyWordList}
	}
	return words, nil
}

// BuildEnemies turns records into enemies sharing one scaling policy.
func BuildEnemies(records []EnemyRecord, defaultDamage int, scaling ScalingPolicy) []*Enemy {
	enemies := make([]*Enemy, 0, len(records))
	for _, rec := range records {
		damage := rec.Damage
		if damage <= 0 {
			damage = defaultDamage
		}
		e := NewEnemy(rec.Name, rec.Health, rec.ImageRef).
			WithDamage(damage).
			WithScaling(scaling)
		enemies = append(enemies, e)
	}
	return enemies
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
