package companion

import (
	"fmt"
	"strings"
)

// SliceFilename builds the file reference for the slice at 0-based depth z
// out of a total of sizeZ slices, by substituting the slice number for every
// "{z}" in the template.
//
// Numbering convention: the embedded token is 1-based (z=0 yields "01"), and
// is zero-padded to 2 digits for totals up to 99 and 3 digits for totals up
// to 999. Totals outside 1..999 are an error.
func SliceFilename(template string, z, sizeZ int) (string, error) {
	var width int
	switch {
	case sizeZ >= 1 && sizeZ <= 99:
		width = 2
	case sizeZ >= 100 && sizeZ <= 999:
		width = 3
	default:
		return "", fmt.Errorf("unsupported slice count %d: must be 1 to 999", sizeZ)
	}
	token := fmt.Sprintf("%0*d", width, z+1)
	return strings.ReplaceAll(template, "{z}", token), nil
}
