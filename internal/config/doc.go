// Package config provides configuration structures and utilities for bbsdocs.
// It defines which documents to generate, where to write them, and which
// companion formats to produce alongside each PDF.
package config
