// Package fs exports notes as Markdown files with YAML front matter.
package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/notefetch"
	"gopkg.in/yaml.v3"
)

// Ensure FileArchive implements notefetch.NoteArchive at compile time.
var _ notefetch.NoteArchive = (*FileArchive)(nil)

// FrontMatter is the YAML header written at the top of each exported note.
type FrontMatter struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Source   string    `yaml:"source,omitempty"`
	Created  time.Time `yaml:"created"`
	Modified time.Time `yaml:"modified"`
	Hash     string    `yaml:"hash,omitempty"`
}

// FileArchive writes notes to baseDir/name with atomic update semantics.
// Notes are saved to baseDir/name.tmp and moved into place on Commit.
type FileArchive struct {
	baseDir   string
	name      string
	converter notefetch.Converter
}

// NewFileArchive creates a new FileArchive that renders note bodies with
// converter.
func NewFileArchive(baseDir, name string, converter notefetch.Converter) *FileArchive {
	return &FileArchive{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
	}
}

func (a *FileArchive) tempDir() string {
	return filepath.Join(a.baseDir, a.name+".tmp")
}

func (a *FileArchive) finalDir() string {
	return filepath.Join(a.baseDir, a.name)
}

// NotePath returns the file name a note is exported to.
// Returns EINVALID for IDs that would escape the archive directory.
func NotePath(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", notefetch.Errorf(notefetch.EINVALID, "invalid note ID %q: path traversal", id)
	}
	return id + ".md", nil
}

// Save renders note and writes it to the temporary directory.
func (a *FileArchive) Save(ctx context.Context, note *notefetch.Note) error {
	relPath, err := NotePath(note.ID)
	if err != nil {
		return err
	}

	content, err := a.FormatNote(note)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(a.tempDir(), relPath), content, 0644)
}

// FormatNote renders note as YAML front matter followed by its title and
// Markdown body.
func (a *FileArchive) FormatNote(note *notefetch.Note) ([]byte, error) {
	header, err := yaml.Marshal(FrontMatter{
		ID:       note.ID,
		Title:    note.Title,
		Source:   note.SourceURL,
		Created:  note.CreatedAt.UTC(),
		Modified: note.ModifiedAt().UTC(),
		Hash:     note.ContentHash,
	})
	if err != nil {
		return nil, err
	}

	body, err := notefetch.NoteMarkdown(a.converter, note)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n# ")
	b.WriteString(note.Title)
	b.WriteString("\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	return b.Bytes(), nil
}

// Commit replaces the final directory with the temporary one.
func (a *FileArchive) Commit() error {
	if err := os.MkdirAll(a.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(a.finalDir()); err != nil {
		return err
	}
	return os.Rename(a.tempDir(), a.finalDir())
}

// Abort discards the temporary directory.
func (a *FileArchive) Abort() error {
	return os.RemoveAll(a.tempDir())
}

// ReadFrontMatter parses the front matter at the start of an exported note.
func ReadFrontMatter(content []byte) (*FrontMatter, error) {
	rest, ok := bytes.CutPrefix(content, []byte("---\n"))
	if !ok {
		return nil, notefetch.Errorf(notefetch.EPARSE, "missing front matter")
	}
	header, _, ok := bytes.Cut(rest, []byte("\n---\n"))
	if !ok {
		return nil, notefetch.Errorf(notefetch.EPARSE, "unterminated front matter")
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, notefetch.Errorf(notefetch.EPARSE, "invalid front matter: %v", err)
	}
	return &fm, nil
}
