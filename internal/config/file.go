package config

import "time"

// File represents the structure of the bbsdocs configuration file.
//
// Boolean options are pointers so that an option left out of the file can
// be told apart from one explicitly set to false.
type File struct {
	// OutputDir is the directory the documents are written to.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Documents lists the documents `bbsdocs all` generates.
	Documents []string `yaml:"documents,omitempty"`

	Markdown *bool `yaml:"markdown,omitempty"`
	JSON     *bool `yaml:"json,omitempty"`
	Verify   *bool `yaml:"verify,omitempty"`

	Concurrency int    `yaml:"concurrency,omitempty"`
	Author      string `yaml:"author,omitempty"`

	// LockTimeout is written as a Go duration, e.g. "5s".
	LockTimeout time.Duration `yaml:"lockTimeout,omitempty"`

	// FileNames maps document names to output file names.
	FileNames map[string]string `yaml:"fileNames,omitempty"`
}
