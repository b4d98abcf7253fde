package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
)

// CalendarHandler exposes the date conversion and zodiac tools.
type CalendarHandler struct{}

func NewCalendarHandler() *CalendarHandler { return &CalendarHandler{} }

// RegisterTools registers the conversion tools.
func (ch *CalendarHandler) RegisterTools(s *server.MCPServer) error {
	solarToLunar := mcp.NewTool("solar_to_lunar",
		mcp.WithDescription("Convert a solar (Gregorian) date into a culture's lunar calendar (chinese, islamic, hindu)."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Solar date in YYYY-MM-DD format")),
		mcp.WithString("culture", mcp.Description("Calendar culture: chinese (default), islamic, hindu")),
	)
	s.AddTool(solarToLunar, ch.handleSolarToLunar)

	lunarToSolar := mcp.NewTool("lunar_to_solar",
		mcp.WithDescription("Convert a lunar date back to a solar date. Conversions are approximate; results may differ from observational calendars by a day or two."),
		mcp.WithNumber("lunar_year", mcp.Required(), mcp.Description("Lunar year number (Hijri year for islamic, Vikram Samvat for hindu)")),
		mcp.WithNumber("lunar_month", mcp.Required(), mcp.Description("Lunar month 1-12")),
		mcp.WithNumber("lunar_day", mcp.Required(), mcp.Description("Lunar day 1-30")),
		mcp.WithString("culture", mcp.Description("Calendar culture: chinese (default), islamic, hindu")),
	)
	s.AddTool(lunarToSolar, ch.handleLunarToSolar)

	zodiacInfo := mcp.NewTool("get_zodiac_info",
		mcp.WithDescription("Get zodiac information for a date: Chinese year/day/hour animals with compatibility, or the western sun sign with traits."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("culture", mcp.Description("chinese (default) or western")),
	)
	s.AddTool(zodiacInfo, ch.handleZodiacInfo)

	return nil
}

func (ch *CalendarHandler) handleSolarToLunar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	ld, err := convert.SolarToLunar(d, culture)
	if err != nil {
		return errResult(err), nil
	}
	log.Debug().Str("date", d.String()).Str("culture", string(culture)).
		Int("lunar_month", ld.Month).Int("lunar_day", ld.Day).Msg("solar_to_lunar completed")

	payload := map[string]interface{}{
		"solar_date": d.String(),
		"culture":    string(culture),
	}
	switch culture {
	case lunar.Islamic:
		payload["hijri_year"] = ld.Year
		payload["hijri_month"] = ld.Month
		payload["hijri_day"] = ld.Day
		payload["month_name"] = ld.MonthName
	default:
		payload["lunar_year"] = ld.Year
		payload["lunar_month"] = ld.Month
		payload["lunar_day"] = ld.Day
		if ld.IsLeapMonth {
			payload["is_leap_month"] = true
		}
		if ld.MonthName != "" {
			payload["month_name"] = ld.MonthName
		}
		if culture == lunar.Chinese {
			zi := convert.ChineseZodiacInfo(d)
			payload["zodiac_info"] = zi.YearZodiac
		}
	}
	return jsonResult(payload), nil
}

func (ch *CalendarHandler) handleLunarToSolar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	args := req.GetArguments()
	ld := convert.LunarDate{
		Culture: culture,
		Year:    cast.ToInt(args["lunar_year"]),
		Month:   cast.ToInt(args["lunar_month"]),
		Day:     cast.ToInt(args["lunar_day"]),
	}
	d, err := convert.LunarToSolar(ld)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"culture":     string(culture),
		"lunar_year":  ld.Year,
		"lunar_month": ld.Month,
		"lunar_day":   ld.Day,
		"solar_date":  d.String(),
	}), nil
}

func (ch *CalendarHandler) handleZodiacInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	switch culture {
	case lunar.Chinese:
		return jsonResult(convert.ChineseZodiacInfo(d)), nil
	case lunar.Western:
		return jsonResult(convert.WesternZodiacInfo(d)), nil
	default:
		return errResult(fmt.Errorf("%w: zodiac info supports chinese and western, got %q",
			lunar.ErrUnsupportedCulture, culture)), nil
	}
}
