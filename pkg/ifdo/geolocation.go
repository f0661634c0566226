package ifdo

import (
	"github.com/oceanbound/marlin/pkg/metadata"
)

// LatLng is one geolocation in decimal degrees.
type LatLng struct {
	Lat float64
	Lon float64
}

// Geolocations collects the geolocations found in an iFDO document: the
// image-set-header position, if any, plus one per image-set-items entry.
// Entries without both latitude and longitude are skipped.
func Geolocations(doc metadata.Document) []LatLng {
	var out []LatLng
	if header, ok := asMapping(doc["image-set-header"]); ok {
		if ll, ok := itemLatLng(header); ok {
			out = append(out, ll)
		}
	}
	items, ok := asMapping(doc["image-set-items"])
	if !ok {
		return out
	}
	for _, item := range items {
		switch value := item.(type) {
		case []interface{}:
			// timestamped image entries: the first element carries the defaults
			if len(value) > 0 {
				if m, ok := asMapping(value[0]); ok {
					if ll, ok := itemLatLng(m); ok {
						out = append(out, ll)
					}
				}
			}
		default:
			if m, ok := asMapping(value); ok {
				if ll, ok := itemLatLng(m); ok {
					out = append(out, ll)
				}
			}
		}
	}
	return out
}

func itemLatLng(m map[string]interface{}) (LatLng, bool) {
	lat, ok := toFloat(m["image-latitude"])
	if !ok {
		return LatLng{}, false
	}
	lon, ok := toFloat(m["image-longitude"])
	if !ok {
		return LatLng{}, false
	}
	return LatLng{Lat: lat, Lon: lon}, true
}

func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch value := v.(type) {
	case metadata.Document:
		return value, true
	case map[string]interface{}:
		return value, true
	}
	return nil, false
}

func toFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	}
	return 0, false
}
