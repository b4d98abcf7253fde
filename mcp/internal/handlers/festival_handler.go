package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/AngusHsu/lunar-mcp-server/lunar/festival"
)

// FestivalHandler exposes festival lookup and search tools over the static
// catalog.
type FestivalHandler struct {
	catalog *festival.Catalog
}

func NewFestivalHandler(c *festival.Catalog) *FestivalHandler {
	return &FestivalHandler{catalog: c}
}

// RegisterTools registers the festival tools.
func (fh *FestivalHandler) RegisterTools(s *server.MCPServer) error {
	onDate := mcp.NewTool("get_lunar_festivals",
		mcp.WithDescription("List the festivals falling on a date for a culture."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
	)
	s.AddTool(onDate, fh.handleFestivalsOnDate)

	next := mcp.NewTool("get_next_festival",
		mcp.WithDescription("Find the next festival strictly after a date for a culture."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
	)
	s.AddTool(next, fh.handleNextFestival)

	annual := mcp.NewTool("get_annual_festivals",
		mcp.WithDescription("List every festival of a culture resolved against a solar year, with the major subset."),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Solar year, e.g. 2024")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
	)
	s.AddTool(annual, fh.handleAnnualFestivals)

	return nil
}

func occurrencePayload(occ festival.Occurrence) map[string]interface{} {
	return map[string]interface{}{
		"name":             occ.Name,
		"culture":          string(occ.Culture),
		"lunar_month":      occ.LunarMonth,
		"lunar_day":        occ.LunarDay,
		"significance":     occ.Significance,
		"traditions":       occ.Traditions,
		"foods":            occ.Foods,
		"lucky_activities": occ.LuckyActivities,
		"is_major":         occ.Major,
		"estimated_date": map[string]int{
			"year":  occ.Date.Year,
			"month": int(occ.Date.Month),
			"day":   occ.Date.Day,
		},
		"date": occ.Date.String(),
	}
}

func (fh *FestivalHandler) handleFestivalsOnDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	occs, err := fh.catalog.On(d, culture)
	if err != nil {
		return errResult(err), nil
	}
	festivals := make([]map[string]interface{}, 0, len(occs))
	isMajor := false
	for _, occ := range occs {
		festivals = append(festivals, occurrencePayload(occ))
		if occ.Major {
			isMajor = true
		}
	}
	log.Debug().Str("date", d.String()).Str("culture", string(culture)).
		Int("count", len(festivals)).Msg("get_lunar_festivals completed")

	return jsonResult(map[string]interface{}{
		"date":              d.String(),
		"culture":           string(culture),
		"festivals":         festivals,
		"festival_count":    len(festivals),
		"is_major_festival": isMajor,
	}), nil
}

func (fh *FestivalHandler) handleNextFestival(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	occ, err := fh.catalog.Next(d, culture)
	if err != nil {
		return errResult(err), nil
	}
	daysUntil := d.DaysUntil(occ.Date)
	return jsonResult(map[string]interface{}{
		"date":               d.String(),
		"culture":            string(culture),
		"festival":           occurrencePayload(occ),
		"next_festival_date": occ.Date.String(),
		"days_until":         daysUntil,
		"preparation_time":   preparationTime(daysUntil),
	}), nil
}

func preparationTime(daysUntil int) string {
	switch {
	case daysUntil <= 3:
		return fmt.Sprintf("Only %d day(s) left; prepare immediately.", daysUntil)
	case daysUntil <= 14:
		return fmt.Sprintf("%d days away; time to plan gatherings and shopping.", daysUntil)
	default:
		return fmt.Sprintf("%d days away; no preparation needed yet.", daysUntil)
	}
}

func (fh *FestivalHandler) handleAnnualFestivals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year := cast.ToInt(req.GetArguments()["year"])
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	occs, err := fh.catalog.Annual(year, culture)
	if err != nil {
		return errResult(err), nil
	}
	festivals := make([]map[string]interface{}, 0, len(occs))
	for _, occ := range occs {
		festivals = append(festivals, occurrencePayload(occ))
	}
	major := make([]map[string]interface{}, 0)
	for _, occ := range festival.Major(occs) {
		major = append(major, occurrencePayload(occ))
	}
	return jsonResult(map[string]interface{}{
		"year":            year,
		"culture":         string(culture),
		"festivals":       festivals,
		"total_festivals": len(festivals),
		"major_festivals": major,
	}), nil
}
