// Package ome models the subset of the OME-XML metadata schema needed to
// rewrite the description of a multi-page OME-TIFF as a companion document
// for a stack of single-slice files. It covers the Image/Pixels/Channel/
// TiffData hierarchy with its attributes; everything else in the schema is
// out of scope and handled only by the token-level Reindent helper.
package ome

import (
	"encoding/xml"
	"fmt"
)

// OME is the document root. It holds the images in declaration order; the
// companion transform always operates on the first one.
type OME struct {
	// Namespace round-trips the default xmlns attribute of the root element.
	Namespace string `xml:"xmlns,attr,omitempty"`

	Images []Image `xml:"Image"`
}

// Image is one image entry: a unique ID, a display name, and exactly one
// Pixels element describing the volume.
type Image struct {
	ID     string `xml:"ID,attr"`
	Name   string `xml:"Name,attr"`
	Pixels Pixels `xml:"Pixels"`
}

// Pixels describes the shape and physical calibration of the volume.
//
// The five Size attributes are required and must all be at least 1. The
// physical sizes are optional in the schema; they are kept as pointers so
// that an absent attribute stays distinguishable from a measured zero.
type Pixels struct {
	ID   string `xml:"ID,attr"`
	Type string `xml:"Type,attr"`

	SizeX int `xml:"SizeX,attr"`
	SizeY int `xml:"SizeY,attr"`
	SizeZ int `xml:"SizeZ,attr"`
	SizeC int `xml:"SizeC,attr"`
	SizeT int `xml:"SizeT,attr"`

	PhysicalSizeX     *float64 `xml:"PhysicalSizeX,attr,omitempty"`
	PhysicalSizeXUnit *string  `xml:"PhysicalSizeXUnit,attr,omitempty"`
	PhysicalSizeY     *float64 `xml:"PhysicalSizeY,attr,omitempty"`
	PhysicalSizeYUnit *string  `xml:"PhysicalSizeYUnit,attr,omitempty"`
	PhysicalSizeZ     *float64 `xml:"PhysicalSizeZ,attr,omitempty"`
	PhysicalSizeZUnit *string  `xml:"PhysicalSizeZUnit,attr,omitempty"`

	DimensionOrder DimensionOrder `xml:"DimensionOrder,attr"`

	Channels []Channel  `xml:"Channel"`
	TiffData []TiffData `xml:"TiffData"`
}

// Channel describes one acquisition channel. The LightPath child is required
// by the schema but currently contentless; it is carried through untouched.
type Channel struct {
	ID              string    `xml:"ID,attr"`
	SamplesPerPixel int       `xml:"SamplesPerPixel,attr"`
	Name            string    `xml:"Name,attr"`
	LightPath       LightPath `xml:"LightPath"`
}

// LightPath is an empty placeholder element preserved for round-tripping.
type LightPath struct{}

// TiffData locates one run of planes inside a TIFF file. Every attribute is
// optional in the schema (sparse records are legal in the single-file case);
// the companion transform always emits fully populated records.
type TiffData struct {
	IFD        *int `xml:"IFD,attr,omitempty"`
	PlaneCount *int `xml:"PlaneCount,attr,omitempty"`
	FirstC     *int `xml:"FirstC,attr,omitempty"`
	FirstZ     *int `xml:"FirstZ,attr,omitempty"`
	FirstT     *int `xml:"FirstT,attr,omitempty"`

	UUID *FileRef `xml:"UUID,omitempty"`
}

// FileRef is the UUID child of a TiffData record; it names the file the
// planes live in.
type FileRef struct {
	FileName string `xml:"FileName,attr"`
}

// Parse decodes OME-XML text into the model and validates the structural
// invariants the companion transform relies on. Fields outside the model are
// dropped; an absent TiffData sequence decodes to an empty slice.
func Parse(data []byte) (*OME, error) {
	var doc OME
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding OME-XML: %w", err)
	}
	for i := range doc.Images {
		if err := validateImage(&doc.Images[i]); err != nil {
			return nil, fmt.Errorf("Image %d: %w", i, err)
		}
	}
	return &doc, nil
}

func validateImage(img *Image) error {
	if img.ID == "" {
		return fmt.Errorf("missing ID attribute")
	}
	px := &img.Pixels
	if px.ID == "" {
		return fmt.Errorf("Pixels: missing ID attribute")
	}
	if px.Type == "" {
		return fmt.Errorf("Pixels: missing Type attribute")
	}
	for _, d := range []struct {
		name string
		size int
	}{
		{"SizeX", px.SizeX},
		{"SizeY", px.SizeY},
		{"SizeZ", px.SizeZ},
		{"SizeC", px.SizeC},
		{"SizeT", px.SizeT},
	} {
		if d.size < 1 {
			return fmt.Errorf("Pixels: %s must be at least 1, got %d", d.name, d.size)
		}
	}
	if !px.DimensionOrder.Valid() {
		return fmt.Errorf("Pixels: invalid DimensionOrder %q", px.DimensionOrder)
	}
	if len(px.Channels) != px.SizeC {
		return fmt.Errorf("Pixels: %d Channel elements do not match SizeC=%d",
			len(px.Channels), px.SizeC)
	}
	return nil
}

// Marshal serializes the document as pretty-printed OME-XML with an XML
// declaration, ready to be written out as a companion file.
func Marshal(doc *OME) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding OME-XML: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
