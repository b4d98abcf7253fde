// Package festival resolves static per-culture festival definitions against
// solar years. Catalogs are embedded YAML loaded once at startup and
// immutable afterwards, so a single Catalog is safe to share across
// concurrent callers.
package festival

import (
	"embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
)

//go:embed data/*.yaml
var catalogFS embed.FS

// Festival is a single recurrence rule plus its reference data. For lunar
// cultures LunarMonth/LunarDay are lunar calendar coordinates; for western
// they are plain Gregorian month/day.
type Festival struct {
	Name            string   `yaml:"name" json:"name"`
	LunarMonth      int      `yaml:"lunar_month" json:"lunar_month"`
	LunarDay        int      `yaml:"lunar_day" json:"lunar_day"`
	Significance    string   `yaml:"significance" json:"significance"`
	Traditions      []string `yaml:"traditions" json:"traditions"`
	Foods           []string `yaml:"foods" json:"foods"`
	LuckyActivities []string `yaml:"lucky_activities" json:"lucky_activities,omitempty"`
	Major           bool     `yaml:"major" json:"is_major"`
}

// Occurrence is a festival resolved to a concrete solar date.
type Occurrence struct {
	Festival
	Culture lunar.Culture `json:"culture"`
	Date    lunar.Date    `json:"-"`
	order   int
}

// Catalog holds every culture's festival list, fixed after Load.
type Catalog struct {
	cultures map[lunar.Culture][]Festival
}

// Load parses the embedded catalogs. Called once at process start.
func Load() (*Catalog, error) {
	c := &Catalog{cultures: make(map[lunar.Culture][]Festival, len(lunar.Cultures))}
	for _, culture := range lunar.Cultures {
		raw, err := catalogFS.ReadFile(fmt.Sprintf("data/%s.yaml", culture))
		if err != nil {
			return nil, fmt.Errorf("festival catalog for %s missing: %w", culture, err)
		}
		var festivals []Festival
		if err := yaml.Unmarshal(raw, &festivals); err != nil {
			return nil, fmt.Errorf("festival catalog for %s malformed: %w", culture, err)
		}
		c.cultures[culture] = festivals
	}
	return c, nil
}

// Festivals returns the raw catalog for a culture, in declaration order.
func (c *Catalog) Festivals(culture lunar.Culture) ([]Festival, error) {
	fs, ok := c.cultures[culture]
	if !ok {
		return nil, fmt.Errorf("%w: %q", lunar.ErrUnsupportedCulture, culture)
	}
	return fs, nil
}

// resolve maps one festival rule into the solar calendar near the given
// solar year. Lunar years spill across solar-year boundaries, so candidate
// lunar years on both sides are tried and every resolution kept.
func (c *Catalog) resolve(f Festival, order int, culture lunar.Culture, year int) []Occurrence {
	if culture == lunar.Western {
		d := lunar.Date{Year: year, Month: time.Month(f.LunarMonth), Day: f.LunarDay}
		return []Occurrence{{Festival: f, Culture: culture, Date: d, order: order}}
	}
	var out []Occurrence
	for _, lunarYear := range candidateLunarYears(culture, year) {
		d, err := convert.LunarToSolar(convert.LunarDate{
			Culture: culture,
			Year:    lunarYear,
			Month:   f.LunarMonth,
			Day:     f.LunarDay,
		})
		if err != nil {
			continue // non-convergence skips this candidate, not the query
		}
		if d.Year == year {
			out = append(out, Occurrence{Festival: f, Culture: culture, Date: d, order: order})
		}
	}
	return out
}

// candidateLunarYears lists the lunar year numbers that can overlap a solar
// year for a culture.
func candidateLunarYears(culture lunar.Culture, solarYear int) []int {
	switch culture {
	case lunar.Islamic:
		// The Hijri year runs ~3% faster; two or three civil years touch
		// any solar year.
		base := int(float64(solarYear-622) * 33.0 / 32.0)
		return []int{base - 1, base, base + 1, base + 2}
	case lunar.Hindu:
		base := solarYear + 57
		return []int{base - 1, base}
	default: // chinese
		return []int{solarYear - 1, solarYear}
	}
}

// Annual resolves every catalog festival falling inside the given solar
// year, sorted by date with catalog order breaking ties.
func (c *Catalog) Annual(year int, culture lunar.Culture) ([]Occurrence, error) {
	festivals, err := c.Festivals(culture)
	if err != nil {
		return nil, err
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d", lunar.ErrInvalidDate, year)
	}
	var out []Occurrence
	for i, f := range festivals {
		out = append(out, c.resolve(f, i, culture, year)...)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Date != out[b].Date {
			return out[a].Date.Before(out[b].Date)
		}
		return out[a].order < out[b].order
	})
	return out, nil
}

// On returns the festivals whose resolved date equals the given date.
func (c *Catalog) On(d lunar.Date, culture lunar.Culture) ([]Occurrence, error) {
	annual, err := c.Annual(d.Year, culture)
	if err != nil {
		return nil, err
	}
	var out []Occurrence
	for _, occ := range annual {
		if occ.Date == d {
			out = append(out, occ)
		}
	}
	return out, nil
}

// Next returns the first festival strictly after the given date, looking
// into the following year when the current one is exhausted. Ties resolve
// by catalog declaration order via the Annual sort.
func (c *Catalog) Next(d lunar.Date, culture lunar.Culture) (Occurrence, error) {
	for _, year := range []int{d.Year, d.Year + 1} {
		annual, err := c.Annual(year, culture)
		if err != nil {
			return Occurrence{}, err
		}
		for _, occ := range annual {
			if occ.Date.After(d) {
				return occ, nil
			}
		}
	}
	return Occurrence{}, fmt.Errorf("%w: no festival found after %s", lunar.ErrConversion, d)
}

// Major filters an occurrence list down to major festivals.
func Major(occs []Occurrence) []Occurrence {
	var out []Occurrence
	for _, occ := range occs {
		if occ.Major {
			out = append(out, occ)
		}
	}
	return out
}
