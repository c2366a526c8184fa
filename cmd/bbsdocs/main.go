// Package main provides the entry point for the bbsdocs CLI.
//
// bbsdocs renders the BIPOC Business Society's static planning documents
// as printable PDF files: the bank account options report, the delegated
// sponsorship research task sheet, and the verified sponsorship links
// report.
//
// Usage:
//
//	bbsdocs banking
//	bbsdocs all -o ./pdf --markdown
//
// See --help for all available options.
package main

// main is the entry point for bbsdocs.
func main() {
	Execute()
}
