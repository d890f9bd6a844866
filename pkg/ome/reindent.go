package ome

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Reindent pretty-prints arbitrary XML with two-space indentation without
// going through the model, so elements and attributes the model does not
// know about survive untouched. Used by the plain inspection mode.
//
// Namespace handling follows the decoder's expansion: the default xmlns
// declaration and the conventional xsi prefix are restored; other prefixes
// are not reconstructed.
func Reindent(src []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			// Whitespace-only text is old indentation; drop it so the
			// encoder can regenerate it.
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		case xml.StartElement:
			tok = flattenStart(t)
		case xml.EndElement:
			t.Name.Space = ""
			tok = t
		}
		if err := enc.EncodeToken(tok); err != nil {
			return nil, fmt.Errorf("writing XML: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("writing XML: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// flattenStart undoes the decoder's namespace expansion so the encoder does
// not emit duplicate xmlns attributes.
func flattenStart(t xml.StartElement) xml.StartElement {
	t.Name.Space = ""
	attrs := make([]xml.Attr, 0, len(t.Attr))
	for _, a := range t.Attr {
		switch a.Name.Space {
		case "":
			// Includes the default xmlns declaration.
		case "xmlns":
			a.Name = xml.Name{Local: "xmlns:" + a.Name.Local}
		case xsiNamespace:
			a.Name = xml.Name{Local: "xsi:" + a.Name.Local}
		default:
			a.Name = xml.Name{Local: a.Name.Local}
		}
		attrs = append(attrs, a)
	}
	t.Attr = attrs
	return t
}
