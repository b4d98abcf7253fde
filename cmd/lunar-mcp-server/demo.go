package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/astro"
	"github.com/AngusHsu/lunar-mcp-server/lunar/auspicious"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
	"github.com/AngusHsu/lunar-mcp-server/lunar/festival"
)

// newDemoCmd returns a subcommand that walks the whole tool surface against
// the in-process engines, as a smoke check and showcase.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a walkthrough of every engine against sample dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	section := func(title string) {
		fmt.Fprintf(out, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	engine := auspicious.NewEngine()
	catalog, err := festival.Load()
	if err != nil {
		return err
	}

	section("Auspicious date analysis")
	check, err := engine.CheckDate(lunar.MustDate("2024-03-15"), "wedding", lunar.Chinese)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s (score %.1f/10), zodiac day %s, lucky hours %s\n",
		check.Date, check.Level, check.Score, check.ZodiacDay, strings.Join(check.LuckyHours, " "))
	fmt.Fprintln(out, check.Recommendations)

	section("Good dates for a business opening, April 2024")
	good, err := engine.FindGoodDates(lunar.MustDate("2024-04-01"), lunar.MustDate("2024-04-30"),
		"business_opening", lunar.Chinese, 5)
	if err != nil {
		return err
	}
	for i, g := range good.GoodDates {
		fmt.Fprintf(out, "%d. %s - %s (score %.1f), %s under a %s\n",
			i+1, g.Date, g.Level, g.Score, g.ZodiacDay, g.MoonPhase)
	}

	section("Daily fortune")
	fortune, err := engine.DailyFortune(lunar.MustDate("2024-02-14"), lunar.Chinese)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s (%.1f/10), colors %v, numbers %v, directions %v\n",
		fortune.Date, fortune.FortuneLevel, fortune.FortuneScore,
		fortune.LuckyColors, fortune.LuckyNumbers, fortune.LuckyDirections)
	fmt.Fprintln(out, fortune.Advice)

	section("Zodiac compatibility")
	compat, err := engine.CheckCompatibility(lunar.MustDate("2024-01-15"), lunar.MustDate("2024-02-15"), lunar.Chinese)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s) x %s (%s): %s\n", compat.Date1, compat.Zodiac1,
		compat.Date2, compat.Zodiac2, compat.Level)
	fmt.Fprintln(out, compat.Description)

	section("Festivals")
	annual, err := catalog.Annual(2024, lunar.Chinese)
	if err != nil {
		return err
	}
	for _, occ := range festival.Major(annual) {
		fmt.Fprintf(out, "%s - %s\n", occ.Date, occ.Name)
	}
	next, err := catalog.Next(lunar.MustDate("2024-03-01"), lunar.Chinese)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "next after 2024-03-01: %s on %s\n", next.Name, next.Date)

	section("Moon phases")
	phase := astro.MoonPhaseAt(lunar.MustDate("2024-02-14"), lunar.ParseLocation("new york"))
	fmt.Fprintf(out, "2024-02-14: %s, %.0f%% illuminated, lunar day %d, moon in %s\n",
		phase.PhaseName, phase.Illumination*100, phase.LunarDay, phase.ZodiacSign)
	events, err := astro.PredictPhases(lunar.MustDate("2024-02-01"), lunar.MustDate("2024-02-29"))
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s: %s (day %d)\n", e.Date, e.Phase, e.LunarDay)
	}

	section("Calendar conversions")
	for _, culture := range []lunar.Culture{lunar.Chinese, lunar.Islamic, lunar.Hindu} {
		ld, err := convert.SolarToLunar(lunar.MustDate("2024-02-14"), culture)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s year %d, month %d, day %d %s\n",
			culture, ld.Year, ld.Month, ld.Day, ld.MonthName)
	}
	zi := convert.ChineseZodiacInfo(lunar.MustDate("2024-02-14"))
	fmt.Fprintf(out, "chinese year zodiac: %s (%s)\n", zi.YearZodiac.FullName, zi.YearZodiac.YinYang)
	wz := convert.WesternZodiacInfo(lunar.MustDate("2024-02-14"))
	fmt.Fprintf(out, "western sign: %s (%s, ruled by %s)\n", wz.ZodiacSign, wz.Element, wz.RulingPlanet)

	return nil
}
