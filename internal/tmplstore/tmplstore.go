// Package tmplstore manages prompt templates stored as Markdown files.
package tmplstore

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

//go:embed defaults/*.md
var defaultsFS embed.FS

// templateExt is the file extension every template carries on disk.
const templateExt = ".md"

// nameRe restricts template names to safe path-free identifiers.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// placeholderRe matches {variable} markers inside template bodies.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Store reads and writes prompt templates under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("templates directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create templates directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// validateName rejects names that could escape the store directory.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("invalid template name %q (must match pattern ^[a-zA-Z0-9_-]+$)", name)
	}
	return nil
}

// path returns the on-disk location for a template name.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+templateExt)
}

// Create writes a new template. It refuses to overwrite an existing one
// unless overwrite is set.
func (s *Store) Create(name, content string, overwrite bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("template content cannot be empty")
	}

	path := s.path(name)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("template %q already exists. Use --force to overwrite", name)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write template %q: %w", name, err)
	}
	return nil
}

// List returns the names of all templates in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory %q: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), templateExt))
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the raw content of a template.
func (s *Store) Load(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("template %q not found in %s", name, s.dir)
		}
		return "", fmt.Errorf("failed to read template %q: %w", name, err)
	}
	return string(data), nil
}

// Delete removes a template from the store.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template %q not found in %s", name, s.dir)
		}
		return fmt.Errorf("failed to delete template %q: %w", name, err)
	}
	return nil
}

// Variables returns the distinct placeholder names a template references,
// in first-appearance order.
func Variables(content string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, match := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}
	return names
}

// Fill loads a template and substitutes every {variable} marker. Every
// placeholder must be covered; unfilled markers are an error so that
// half-rendered prompts never reach the model.
func (s *Store) Fill(name string, variables map[string]string) (string, error) {
	content, err := s.Load(name)
	if err != nil {
		return "", err
	}

	filled := placeholderRe.ReplaceAllStringFunc(content, func(marker string) string {
		key := marker[1 : len(marker)-1]
		if value, ok := variables[key]; ok {
			return value
		}
		return marker
	})

	if unfilled := Variables(filled); len(unfilled) > 0 {
		return "", fmt.Errorf("template %q has unfilled variables: %s. Provide them via --variables", name, strings.Join(unfilled, ", "))
	}
	return filled, nil
}

// EnsureDefaults installs the built-in templates that do not already
// exist in the store. Existing files are never touched.
func (s *Store) EnsureDefaults() ([]string, error) {
	var installed []string

	err := fs.WalkDir(defaultsFS, "defaults", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), templateExt)
		target := s.path(name)
		if _, statErr := os.Stat(target); statErr == nil {
			return nil
		}

		data, readErr := defaultsFS.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read built-in template %q: %w", name, readErr)
		}
		if writeErr := os.WriteFile(target, data, 0o644); writeErr != nil {
			return fmt.Errorf("failed to install template %q: %w", name, writeErr)
		}
		installed = append(installed, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(installed)
	return installed, nil
}
