package exif

import (
	"io"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// ProbeTime reads the capture time straight from a JPEG or TIFF stream,
// without going through the external extractor.
func ProbeTime(r io.Reader) (time.Time, error) {
	x, err := goexif.Decode(r)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}
