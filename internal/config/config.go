package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "bbsdocs"

	// DefaultConcurrency renders every document at once; there are only three.
	DefaultConcurrency = 3

	// DefaultLockTimeout is how long to wait for another bbsdocs process
	// writing to the same output directory.
	DefaultLockTimeout = 5 * time.Second
)

// Config holds all configuration options for bbsdocs.
// This struct is populated from the config file and CLI flags and passed
// through the application rather than kept in global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small.
type Config struct {
	// OutputDir is the directory the documents are written to.
	// When empty, the directory containing the executable is used so that
	// a double-clicked binary drops its PDF next to itself.
	OutputDir string

	// Documents lists the document kinds to generate by name
	// ("banking", "sponsors", "links").
	Documents []string

	// Markdown writes a .md companion next to each PDF.
	Markdown bool

	// JSON writes a .json companion next to each PDF.
	JSON bool

	// Verify reads each PDF back after writing and checks its structure.
	Verify bool

	// Concurrency is the number of documents rendered at the same time.
	Concurrency int

	// Author overrides the author recorded in the PDF metadata.
	// When empty, the report package default is used.
	Author string

	// FileNames overrides output file names by document name.
	FileNames map[string]string

	// LockTimeout is how long to wait for the output directory lock.
	LockTimeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the locations listed in FindConfigFile.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Verify:      true,
		Concurrency: DefaultConcurrency,
		LockTimeout: DefaultLockTimeout,
		FileNames:   make(map[string]string),
	}
}

// XDGConfigDir returns the XDG config directory for bbsdocs.
// On Linux: ~/.config/bbsdocs
// On macOS: ~/Library/Application Support/bbsdocs
// On Windows: %APPDATA%\bbsdocs
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGRuntimeDir returns the directory used for output directory lock files.
// On Linux this is $XDG_RUNTIME_DIR/bbsdocs, falling back to a temporary
// directory on systems without a runtime directory.
func XDGRuntimeDir() string {
	return filepath.Join(xdg.RuntimeDir, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Documents) == 0 {
		return ErrNoDocuments
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.LockTimeout < 0 {
		return ErrInvalidLockTimeout
	}

	for name, file := range c.FileNames {
		if _, err := model.ParseKind(name); err != nil {
			return fmt.Errorf("%w: %q in fileNames", ErrUnknownDocument, name)
		}
		if !validFileName(file) {
			return fmt.Errorf("%w: %q", ErrInvalidFileName, file)
		}
	}

	return nil
}

// Kinds parses Documents into document kinds, dropping duplicates and
// keeping the order given.
func (c *Config) Kinds() ([]model.Kind, error) {
	kinds := make([]model.Kind, 0, len(c.Documents))
	seen := make(map[model.Kind]bool)
	for _, name := range c.Documents {
		kind, err := model.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// FileName returns the output file name for a document kind.
func (c *Config) FileName(kind model.Kind) string {
	if name, ok := c.FileNames[kind.String()]; ok && name != "" {
		return name
	}
	return kind.FileName()
}

// ResolveOutputDir returns the directory documents are written to.
// An explicit OutputDir wins; otherwise the executable's directory is used,
// falling back to the working directory when it cannot be determined.
func (c *Config) ResolveOutputDir() (string, error) {
	if c.OutputDir != "" {
		return filepath.Abs(c.OutputDir)
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe), nil
	}

	return os.Getwd()
}

// ApplyFile copies the values set in a configuration file onto c.
// Values absent from the file leave c unchanged.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if len(f.Documents) > 0 {
		c.Documents = f.Documents
	}
	if f.Markdown != nil {
		c.Markdown = *f.Markdown
	}
	if f.JSON != nil {
		c.JSON = *f.JSON
	}
	if f.Verify != nil {
		c.Verify = *f.Verify
	}
	if f.Concurrency != 0 {
		c.Concurrency = f.Concurrency
	}
	if f.Author != "" {
		c.Author = f.Author
	}
	if f.LockTimeout != 0 {
		c.LockTimeout = f.LockTimeout
	}
	if len(f.FileNames) > 0 {
		if c.FileNames == nil {
			c.FileNames = make(map[string]string)
		}
		for name, file := range f.FileNames {
			if kind, err := model.ParseKind(name); err == nil {
				name = kind.String()
			}
			c.FileNames[name] = file
		}
	}
}

// validFileName reports whether name is a bare PDF file name.
func validFileName(name string) bool {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
