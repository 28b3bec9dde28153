// Package docx builds word-processor (.docx) resumes directly from resume data.
// The layout is fixed and independent of the on-screen template.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/types"
)

// ContentType is the media type of the produced document
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// epoch is the modification time stamped on every archive entry
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii=%[1]q w:hAnsi=%[1]q w:cs=%[1]q/><w:color w:val=%[2]q/><w:sz w:val="%[3]d"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="%[4]d" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
</w:styles>`

// Export builds the .docx document for resume under profile p. Output depends
// only on its inputs: identical calls produce byte-identical archives.
func Export(resume *types.ResumeData, p profile.Profile) ([]byte, error) {
	if resume == nil {
		return nil, &PackagingError{Message: "resume is nil"}
	}

	doc := newBuilder(p).build(resume)
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, &PackagingError{Message: "failed to encode document body", Cause: err}
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", append([]byte(xml.Header), body...)},
		{"word/styles.xml", []byte(styles(p.Word))},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: epoch,
		})
		if err != nil {
			return nil, &PackagingError{Message: "failed to add " + part.name, Cause: err}
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, &PackagingError{Message: "failed to write " + part.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &PackagingError{Message: "failed to finalize archive", Cause: err}
	}
	return buf.Bytes(), nil
}

func styles(w profile.WordStyle) string {
	return fmt.Sprintf(stylesXML, w.BodyFont, w.Palette.Body, w.BodySize, w.LineSpacing)
}
