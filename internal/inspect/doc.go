// Package inspect reads PDF files back and reports their structure and
// metadata.
//
// The inspector checks the properties every generated document must have:
// a %PDF- header, a %%EOF trailer, a page tree that agrees with the page
// objects in the file, and the document information written at render
// time. It backs `bbsdocs inspect` and the verification step that runs
// after each document is generated.
package inspect
