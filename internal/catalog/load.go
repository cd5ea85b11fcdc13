package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"gitguide/internal/domain"
)

//go:embed default.toml
var defaultCatalog []byte

// EmbeddedSource names the built-in catalog in events and logs
const EmbeddedSource = "embedded"

// document is the on-disk shape of a catalog file
type document struct {
	Steps []domain.Step `toml:"steps"`
}

// rawStep keeps highlight optional so a missing key is not read as the
// zero target
type rawStep struct {
	Emoji        string                  `toml:"emoji"`
	Title        string                  `toml:"title"`
	Description  string                  `toml:"description"`
	Example      string                  `toml:"example"`
	CommandLabel string                  `toml:"command_label"`
	Command      string                  `toml:"command"`
	Highlight    *domain.HighlightTarget `toml:"highlight"`
}

type rawDocument struct {
	Steps []rawStep `toml:"steps"`
}

// Load parses a TOML catalog
func Load(r io.Reader) (*Catalog, error) {
	var doc rawDocument
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	steps := make([]domain.Step, 0, len(doc.Steps))
	for i, rs := range doc.Steps {
		if rs.Highlight == nil {
			return nil, fmt.Errorf("failed to parse catalog: step %d: missing highlight", i)
		}
		steps = append(steps, domain.Step{
			Emoji:        rs.Emoji,
			Title:        rs.Title,
			Description:  rs.Description,
			Example:      rs.Example,
			CommandLabel: rs.CommandLabel,
			Command:      rs.Command,
			Highlight:    *rs.Highlight,
		})
	}
	return New(steps)
}

// LoadFile parses the TOML catalog at path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Resolve loads path, or the embedded catalog when path is empty.
// The returned source is suitable for logging.
func Resolve(path string) (*Catalog, string, error) {
	if path == "" {
		c, err := Default()
		return c, EmbeddedSource, err
	}
	c, err := LoadFile(path)
	return c, path, err
}

// Encode writes c in the same TOML format Load reads
func Encode(w io.Writer, c *Catalog) error {
	enc := toml.NewEncoder(w)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(document{Steps: c.Steps()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}
