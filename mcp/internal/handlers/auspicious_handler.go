package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/AngusHsu/lunar-mcp-server/lunar/auspicious"
)

// AuspiciousHandler exposes date scoring, good-date search, fortune, and
// compatibility tools.
type AuspiciousHandler struct {
	engine *auspicious.Engine
}

func NewAuspiciousHandler(e *auspicious.Engine) *AuspiciousHandler {
	return &AuspiciousHandler{engine: e}
}

// RegisterTools registers the auspiciousness tools.
func (ah *AuspiciousHandler) RegisterTools(s *server.MCPServer) error {
	checkDate := mcp.NewTool("check_auspicious_date",
		mcp.WithDescription("Score a date's auspiciousness for an activity, with lucky hours, directions, and a recommendation."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("activity", mcp.Required(), mcp.Description("Activity name, e.g. wedding, business_opening, travel")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
	)
	s.AddTool(checkDate, ah.handleCheckDate)

	findDates := mcp.NewTool("find_good_dates",
		mcp.WithDescription("Search a date range (up to 366 days) for the best dates for an activity, ranked by score."),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Range start, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("Range end, YYYY-MM-DD, inclusive")),
		mcp.WithString("activity", mcp.Required(), mcp.Description("Activity name")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
		mcp.WithNumber("limit", mcp.Description("Maximum results (default 10)")),
	)
	s.AddTool(findDates, ah.handleFindGoodDates)

	fortune := mcp.NewTool("get_daily_fortune",
		mcp.WithDescription("Get the general fortune reading for a date: score, lucky colors, numbers, directions, and advice."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("culture", mcp.Description("chinese (default), islamic, hindu, or western")),
	)
	s.AddTool(fortune, ah.handleDailyFortune)

	compat := mcp.NewTool("check_zodiac_compatibility",
		mcp.WithDescription("Check zodiac compatibility between the year animals of two dates, including the five-element relationship."),
		mcp.WithString("date1", mcp.Required(), mcp.Description("First date, YYYY-MM-DD")),
		mcp.WithString("date2", mcp.Required(), mcp.Description("Second date, YYYY-MM-DD")),
		mcp.WithString("culture", mcp.Description("chinese (default)")),
	)
	s.AddTool(compat, ah.handleCompatibility)

	return nil
}

func (ah *AuspiciousHandler) handleCheckDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	activity, err := req.RequireString("activity")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}

	start := time.Now()
	check, err := ah.engine.CheckDate(d, activity, culture)
	if err != nil {
		return errResult(err), nil
	}
	log.Debug().Str("date", d.String()).Str("activity", activity).
		Str("level", check.Level).Dur("elapsed", time.Since(start)).
		Msg("check_auspicious_date completed")

	return jsonResult(check), nil
}

func (ah *AuspiciousHandler) handleFindGoodDates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := dateArg(req, "start_date")
	if err != nil {
		return errResult(err), nil
	}
	end, err := dateArg(req, "end_date")
	if err != nil {
		return errResult(err), nil
	}
	activity, err := req.RequireString("activity")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	limit := cast.ToInt(req.GetArguments()["limit"])

	began := time.Now()
	result, err := ah.engine.FindGoodDates(start, end, activity, culture, limit)
	if err != nil {
		return errResult(err), nil
	}
	log.Debug().Str("start", start.String()).Str("end", end.String()).
		Str("activity", activity).Int("found", result.FoundDates).
		Dur("elapsed", time.Since(began)).Msg("find_good_dates completed")

	return jsonResult(result), nil
}

func (ah *AuspiciousHandler) handleDailyFortune(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := dateArg(req, "date")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	fortune, err := ah.engine.DailyFortune(d, culture)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(fortune), nil
}

func (ah *AuspiciousHandler) handleCompatibility(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d1, err := dateArg(req, "date1")
	if err != nil {
		return errResult(err), nil
	}
	d2, err := dateArg(req, "date2")
	if err != nil {
		return errResult(err), nil
	}
	culture, err := cultureArg(req)
	if err != nil {
		return errResult(err), nil
	}
	result, err := ah.engine.CheckCompatibility(d1, d2, culture)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(result), nil
}
