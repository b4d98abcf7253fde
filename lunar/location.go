package lunar

import (
	"strconv"
	"strings"
)

// Location is an observer position. It only nudges descriptive output; the
// approximation formulas are location-independent.
type Location struct {
	Latitude  float64
	Longitude float64
}

// cityCoords maps recognized city names to coordinates. Lookup is
// case-insensitive and ignores surrounding whitespace.
var cityCoords = map[string]Location{
	"beijing":     {39.9042, 116.4074},
	"shanghai":    {31.2304, 121.4737},
	"hong kong":   {22.3193, 114.1694},
	"taipei":      {25.0330, 121.5654},
	"singapore":   {1.3521, 103.8198},
	"tokyo":       {35.6762, 139.6503},
	"seoul":       {37.5665, 126.9780},
	"delhi":       {28.7041, 77.1025},
	"mumbai":      {19.0760, 72.8777},
	"mecca":       {21.3891, 39.8579},
	"istanbul":    {41.0082, 28.9784},
	"cairo":       {30.0444, 31.2357},
	"london":      {51.5074, -0.1278},
	"paris":       {48.8566, 2.3522},
	"new york":    {40.7128, -74.0060},
	"los angeles": {34.0522, -118.2437},
	"sydney":      {-33.8688, 151.2093},
}

// ParseLocation interprets a location argument: a "lat,lon" decimal pair, a
// recognized city name, or anything else (including empty) as the 0,0
// default. Unrecognized input is not an error; location never gates a query.
func ParseLocation(s string) Location {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}
	}
	if loc, ok := cityCoords[strings.ToLower(s)]; ok {
		return loc
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) == 2 {
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLat == nil && errLon == nil && lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
			return Location{Latitude: lat, Longitude: lon}
		}
	}
	return Location{}
}
