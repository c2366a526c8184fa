package layout

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/action"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/type1"
	"seehuhn.de/go/pdf/metadata"
	"seehuhn.de/go/xmp"
)

// Metadata is the document-level information written to the Info
// dictionary and the XMP packet.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// Created is used for both the creation and modification dates.
	// Callers pass a fixed time to keep output reproducible.
	Created time.Time
}

// fileIDNamespace scopes the name-based UUIDs used as PDF file identifiers.
var fileIDNamespace = uuid.MustParse("6f1b7c1e-2f55-4a47-9a62-7f0d3c1b8e42")

// FileID returns the identifier written to the trailer. It is derived from
// the metadata, so the same document always gets the same ID.
func (m Metadata) FileID() []byte {
	name := m.Title + "\x00" + m.Author + "\x00" + m.Created.UTC().Format(time.RFC3339)
	id := uuid.NewSHA1(fileIDNamespace, []byte(name))
	return id[:]
}

// PDFNamespace is the XMP schema for PDF properties.
type PDFNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// Render writes pages as a PDF file to w.
//
// Text uses the standard Helvetica fonts, so no font data is embedded.
// Content streams are written without compression.
func Render(w io.Writer, pages []*Page, meta Metadata) error {
	if len(pages) == 0 {
		return fmt.Errorf("render: no pages")
	}

	id := meta.FileID()
	opt := &pdf.WriterOptions{
		ID:            [][]byte{id, id},
		HumanReadable: true,
	}
	first := &pdf.Rectangle{URx: pages[0].Width, URy: pages[0].Height}
	doc, err := document.WriteMultiPage(w, first, pdf.V1_7, opt)
	if err != nil {
		return fmt.Errorf("failed to start PDF: %w", err)
	}

	// Encoding text records the glyphs in use on the instance, so every
	// file gets its own.
	fonts := [2]*type1.Instance{
		Regular: Regular.standardFont().New(),
		Bold:    Bold.standardFont().New(),
	}

	for i, p := range pages {
		if err := writePage(doc, p, fonts); err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	xmpRef, err := writeXMP(doc.RM, meta)
	if err != nil {
		return err
	}

	m := doc.Out.GetMeta()
	m.Catalog.Metadata = xmpRef
	m.Info = &pdf.Info{
		Title:        pdf.TextString(meta.Title),
		Author:       pdf.TextString(meta.Author),
		Subject:      pdf.TextString(meta.Subject),
		Keywords:     pdf.TextString(meta.Keywords),
		Creator:      pdf.TextString(meta.Creator),
		Producer:     pdf.TextString(meta.Producer),
		CreationDate: pdf.Date(meta.Created),
		ModDate:      pdf.Date(meta.Created),
	}

	if err := doc.Close(); err != nil {
		return fmt.Errorf("failed to finish PDF: %w", err)
	}
	return nil
}

func writePage(doc *document.MultiPage, p *Page, fonts [2]*type1.Instance) error {
	page := doc.AddPage()
	page.SetPageSize(&pdf.Rectangle{URx: p.Width, URy: p.Height})
	p.draw(page.Builder, fonts)

	for _, l := range p.links {
		page.Page.Annots = append(page.Page.Annots, &annotation.Link{
			Common: annotation.Common{
				Rect: pdf.Rectangle{LLx: l.X, LLy: l.Y, URx: l.X + l.W, URy: l.Y + l.H},
			},
			Action: &action.URI{URI: l.URI},
		})
	}

	return page.Close()
}

func writeXMP(rm *pdf.ResourceManager, meta Metadata) (pdf.Reference, error) {
	dc := &xmp.DublinCore{}
	dc.Title.Default = xmp.NewText(meta.Title)
	dc.Description.Default = xmp.NewText(meta.Subject)
	dc.Creator.Append(xmp.NewProperName(meta.Author))

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(meta.Created)
	basic.ModifyDate = xmp.NewDate(meta.Created)

	pdfInfo := &PDFNamespace{}
	pdfInfo.Keywords = xmp.NewText(meta.Keywords)
	pdfInfo.Producer = xmp.NewAgentName(meta.Producer)

	packet := xmp.NewPacket()
	if err := packet.Set(dc, basic, pdfInfo); err != nil {
		return 0, fmt.Errorf("failed to build XMP packet: %w", err)
	}

	obj, err := rm.Embed(&metadata.Stream{Data: packet})
	if err != nil {
		return 0, fmt.Errorf("failed to write XMP packet: %w", err)
	}
	ref, ok := obj.(pdf.Reference)
	if !ok {
		return 0, fmt.Errorf("unexpected XMP stream object %T", obj)
	}
	return ref, nil
}
