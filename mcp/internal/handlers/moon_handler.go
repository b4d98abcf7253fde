package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/astro"
)

// MoonHandler exposes the moon phase, calendar, influence, and prediction
// tools.
type MoonHandler struct{}

func NewMoonHandler() *MoonHandler { return &MoonHandler{} }

// RegisterTools registers the moon tools.
func (mh *MoonHandler) RegisterTools(s *server.MCPServer) error {
	moonPhase := mcp.NewTool("get_moon_phase",
		mcp.WithDescription("Get the moon phase, illumination, lunar day, zodiac sign, and traditional influence for a date."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("location", mcp.Description("Observer location: 'lat,lon', a known city name, or empty for 0,0")),
	)
	s.AddTool(moonPhase, mh.handleMoonPhase)

	moonCalendar := mcp.NewTool("get_moon_calendar",
		mcp.WithDescription("Get a per-day moon phase calendar for a month."),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month 1-12")),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year, e.g. 2024")),
		mcp.WithString("location", mcp.Description("Observer location: 'lat,lon', a known city name, or empty for 0,0")),
	)
	s.AddTool(moonCalendar, mh.handleMoonCalendar)

	moonInfluence := mcp.NewTool("get_moon_influence",
		mcp.WithDescription("Rate how suitable a date's moon phase is for an activity (wedding, travel, surgery, ...)."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("activity", mcp.Required(), mcp.Description("Activity name, e.g. wedding, business_opening")),
	)
	s.AddTool(moonInfluence, mh.handleMoonInfluence)

	predictPhases := mcp.NewTool("predict_moon_phases",
		mcp.WithDescription("List the major phase transitions (New, quarters, Full) within a date range."),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Range start, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("Range end, YYYY-MM-DD, inclusive")),
	)
	s.AddTool(predictPhases, mh.handlePredictPhases)

	return nil
}

func (mh *MoonHandler) handleMoonPhase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	loc := lunar.ParseLocation(req.GetString("location", ""))

	start := time.Now()
	phase := astro.MoonPhaseAt(d, loc)
	log.Debug().Str("date", d.String()).Str("phase", phase.PhaseName).
		Dur("elapsed", time.Since(start)).Msg("get_moon_phase completed")

	return jsonResult(map[string]interface{}{
		"date":               d.String(),
		"phase_name":         phase.PhaseName,
		"illumination":       phase.Illumination,
		"moon_age":           phase.MoonAge,
		"lunar_day":          phase.LunarDay,
		"ecliptic_longitude": phase.EclipticLongitude,
		"zodiac_sign":        phase.ZodiacSign,
		"rise_time":          phase.RiseTime,
		"set_time":           phase.SetTime,
		"influence":          phase.Influence,
		"latitude":           loc.Latitude,
		"longitude":          loc.Longitude,
	}), nil
}

func (mh *MoonHandler) handleMoonCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	month := cast.ToInt(req.GetArguments()["month"])
	year := cast.ToInt(req.GetArguments()["year"])
	loc := lunar.ParseLocation(req.GetString("location", ""))

	days, err := astro.MoonCalendar(month, year, loc)
	if err != nil {
		return errResult(err), nil
	}

	calendar := make([]map[string]interface{}, 0, len(days))
	for _, day := range days {
		calendar = append(calendar, map[string]interface{}{
			"date":         day.Date.String(),
			"phase_name":   day.PhaseName,
			"illumination": day.Illumination,
			"lunar_day":    day.LunarDay,
			"zodiac_sign":  day.ZodiacSign,
		})
	}
	log.Debug().Int("month", month).Int("year", year).Int("days", len(calendar)).
		Msg("get_moon_calendar completed")

	return jsonResult(map[string]interface{}{
		"month":    month,
		"year":     year,
		"calendar": calendar,
	}), nil
}

func (mh *MoonHandler) handleMoonInfluence(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	activity, err := req.RequireString("activity")
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(astro.MoonInfluence(d, activity)), nil
}

func (mh *MoonHandler) handlePredictPhases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := dateArg(req, "start_date")
	if err != nil {
		return errResult(err), nil
	}
	end, err := dateArg(req, "end_date")
	if err != nil {
		return errResult(err), nil
	}
	events, err := astro.PredictPhases(start, end)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"start_date":   start.String(),
		"end_date":     end.String(),
		"major_phases": events,
		"total_phases": len(events),
	}), nil
}
