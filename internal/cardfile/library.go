package cardfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a card name resolves to no document.
var ErrNotFound = errors.New("card not found")

const ext = ".toml"

// Library is a directory of card documents, one per file
type Library struct {
	Dir string
}

// NewLibrary returns a library rooted at dir
func NewLibrary(dir string) *Library {
	return &Library{Dir: dir}
}

// Init creates the library directory if it doesn't exist
func (l *Library) Init() error {
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return fmt.Errorf("error creating card library: %w", err)
	}
	return nil
}

// List returns the names of all card documents, sorted
func (l *Library) List() ([]string, error) {
	dir, err := filepath.EvalSymlinks(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving card library: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading card library: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// Resolve returns the path of a card, looked up in the library first and
// then as a path relative to the working directory
func (l *Library) Resolve(name string) (string, error) {
	candidates := []string{
		filepath.Join(l.Dir, name+ext),
		filepath.Join(l.Dir, name),
		name,
	}
	if strings.ContainsAny(name, `/\`) || name == ".." {
		// paths are taken as given
		candidates = candidates[2:]
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			log.WithFields(log.Fields{"name": name, "path": path}).Debug("resolved card")
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ResolveName returns the path of a card in the library. Unlike Resolve it
// never falls back to the working directory.
func (l *Library) ResolveName(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	path := filepath.Join(l.Dir, name+ext)
	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// OpenName loads a card document from the library by name only
func (l *Library) OpenName(name string) (*Document, error) {
	path, err := l.ResolveName(name)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Open resolves and loads a card document by name or path
func (l *Library) Open(name string) (*Document, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
