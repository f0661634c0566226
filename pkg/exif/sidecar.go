// Package exif parses the JSON sidecar files written by the external
// extractor and probes EXIF fields directly from image files.
package exif

import (
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TimeLayout is exiftool's timestamp layout.
const TimeLayout = "2006:01:02 15:04:05"

// Record is one per-file entry of an extractor sidecar. Fields the extractor
// did not emit stay at their zero values.
type Record struct {
	SourceFile       string      `json:"SourceFile"`
	FileName         string      `json:"FileName"`
	MIMEType         string      `json:"MIMEType"`
	DateTimeOriginal string      `json:"DateTimeOriginal"`
	GPSLatitude      interface{} `json:"GPSLatitude"`
	GPSLongitude     interface{} `json:"GPSLongitude"`
}

// CaptureTime parses the record's DateTimeOriginal field.
func (r Record) CaptureTime() (time.Time, bool) {
	if r.DateTimeOriginal == "" {
		return time.Time{}, false
	}
	// exiftool may append a timezone offset
	for _, layout := range []string{TimeLayout, TimeLayout + "-07:00", TimeLayout + "Z07:00"} {
		if ts, err := time.Parse(layout, r.DateTimeOriginal); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Coordinates returns the record's GPS position in decimal degrees. The
// extractor emits numbers in -n mode and formatted strings otherwise; only
// numeric values are usable here.
func (r Record) Coordinates() (lat, lon float64, ok bool) {
	lat, ok = toFloat(r.GPSLatitude)
	if !ok {
		return 0, 0, false
	}
	lon, ok = toFloat(r.GPSLongitude)
	if !ok {
		return 0, 0, false
	}
	return lat, lon, true
}

func toFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	}
	return 0, false
}

// ParseSidecar decodes an extractor sidecar: a JSON array with one record
// per catalogued file.
func ParseSidecar(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadSidecar reads and parses a sidecar file from fs.
func LoadSidecar(fs afero.Fs, path string) ([]Record, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSidecar(f)
}
