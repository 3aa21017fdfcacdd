// Package config loads optional user settings for sheetcards from a YAML file.
//
// Settings are looked up in this order:
//  1. the path given with --config
//  2. .sheetcards.yaml in the current directory
//  3. sheetcards/config.yaml in the XDG config home
//
// Command-line flags override values from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the per-directory configuration file name.
	DefaultConfigFile = ".sheetcards.yaml"
	// xdgConfigFile is the configuration file relative to the XDG config home.
	xdgConfigFile = "sheetcards/config.yaml"
)

// ErrConfigNotFound is returned when an explicitly given configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrInvalidDelimiter is returned when the delimiter is not a single character.
var ErrInvalidDelimiter = errors.New("invalid delimiter: must be a single character")

// File is the content of a configuration file.
type File struct {
	// Title is the page heading of generated documents.
	Title string `yaml:"title"`
	// Encoding is the text encoding of CSV files and the charset of xls files.
	Encoding string `yaml:"encoding"`
	// Delimiter is the CSV field delimiter.
	Delimiter string `yaml:"delimiter"`
}

// Validate checks the configuration values.
func (f *File) Validate() error {
	if f.Delimiter != "" && utf8.RuneCountInString(f.Delimiter) != 1 {
		return ErrInvalidDelimiter
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune, or 0 when unset.
func (f *File) DelimiterRune() rune {
	if f.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(f.Delimiter)
	return r
}

// Load parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cf, nil
}

// Find returns the configuration file to use, or "" if there is none.
// An explicit path is returned as is so that Load can report it missing.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}
	return ""
}

// Resolve finds and loads the configuration. Without any configuration
// file it returns an empty File.
func Resolve(explicit string) (*File, error) {
	path := Find(explicit)
	if path == "" {
		return &File{}, nil
	}
	return Load(path)
}
