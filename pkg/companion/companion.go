// Package companion rewrites the metadata of a multi-page volumetric
// OME-TIFF into a companion document describing the same volume stored as
// one single-slice file per depth index. The rewrite is destructive: the
// original TiffData records are discarded outright and regenerated for the
// target depth x channel grid.
package companion

import (
	"fmt"

	"omecompanion/pkg/ome"
)

// StackConfig describes the target multi-file layout.
type StackConfig struct {
	// SizeZ is the number of slice files the volume is split into. It
	// becomes the new SizeZ of the document and drives filename numbering.
	// Supported range is 1 to 999.
	SizeZ int

	// PhysicalSizeZ and PhysicalSizeZUnit set the slice step calibration on
	// the output document, overwriting any prior value.
	PhysicalSizeZ     float64
	PhysicalSizeZUnit string

	// FilenameTemplate is the per-slice file reference with a literal "{z}"
	// placeholder for the slice number (see SliceFilename).
	FilenameTemplate string
}

// Transform mutates doc in place into the companion layout: it sets the
// physical Z calibration from cfg, replaces the TiffData list with one fully
// populated record per (depth, channel) pair in depth-outer channel-inner
// order, and finally updates SizeZ to cfg.SizeZ.
//
// Plane indices are computed against the document's original axis sizes:
// they answer where each plane lived in the single-file layout, which is a
// fixed reference frame regardless of how many companion files now exist.
//
// Documents without an Image, or with SizeT other than 1, are rejected
// before anything is emitted. Multi-timepoint splitting is not supported.
func Transform(doc *ome.OME, cfg StackConfig) error {
	if len(doc.Images) == 0 {
		return fmt.Errorf("document contains no Image")
	}
	px := &doc.Images[0].Pixels
	if px.SizeT != 1 {
		return fmt.Errorf("SizeT=%d: only single-timepoint volumes can be split", px.SizeT)
	}

	px.PhysicalSizeZ = &cfg.PhysicalSizeZ
	px.PhysicalSizeZUnit = &cfg.PhysicalSizeZUnit

	px.TiffData = nil
	for z := 0; z < cfg.SizeZ; z++ {
		name, err := SliceFilename(cfg.FilenameTemplate, z, cfg.SizeZ)
		if err != nil {
			return err
		}
		for c := range px.Channels {
			ifd, err := px.PlaneIndex(ome.Selection{T: 0, Z: z, C: c})
			if err != nil {
				return err
			}
			px.TiffData = append(px.TiffData, ome.TiffData{
				IFD:        intPtr(ifd),
				PlaneCount: intPtr(1),
				FirstC:     intPtr(c),
				FirstZ:     intPtr(z),
				FirstT:     intPtr(0),
				UUID:       &ome.FileRef{FileName: name},
			})
		}
	}

	px.SizeZ = cfg.SizeZ
	return nil
}

func intPtr(v int) *int { return &v }
