package commands

import (
	"fmt"
	"log/slog"
	"time"

	"hyroxstats-backend/lib/configutil"
	"hyroxstats-backend/lib/restyutil"
	"hyroxstats-backend/lib/scrapers/hyrox"
	"hyroxstats-backend/lib/serviceutil"
	"hyroxstats-backend/lib/telemetry"
	"hyroxstats-backend/lib/textutil"
	"hyroxstats-backend/services/analysis"

	"github.com/spf13/cobra"
)

type Config struct {
	// listing page URLs scraped when none are given on the command line
	Listings []string `json:"listings"`
}

var scrapeView *string
var scrapeWithRank *bool
var scrapeAthlete *string
var scrapeCsv *bool
var scrapeVerbose *bool

func init() {
	scrapeView = scrapeCmd.Flags().String("view", "exercises", "The view to render: exercises, runs, other, splits or overall.")
	scrapeWithRank = scrapeCmd.Flags().Bool("with-rank", true, "Prefix athlete names with their rank.")
	scrapeAthlete = scrapeCmd.Flags().String("athlete", "", "Only show the athlete whose name is closest to this.")
	scrapeCsv = scrapeCmd.Flags().Bool("csv", false, "Render CSV instead of a terminal table.")
	scrapeVerbose = scrapeCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging and HTTP exchange dumps.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [listing-url...]",
	Short: "Scrapes one or more results listings and prints an aggregate view.",
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*scrapeVerbose)

		listings := args
		if len(listings) == 0 {
			cfg, err := configutil.ReadConfig[Config]("config.json5")
			if err != nil {
				serviceutil.Fatal("no listing urls given and no config.json5 found", err)
			}
			listings = cfg.Listings
		}

		if *scrapeVerbose {
			hyrox.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/hyrox"))
		}
		client := hyrox.NewClient(hyrox.ClientOptions{})

		ctx := cmd.Context()
		t1 := time.Now()
		details, err := client.FetchDetails(ctx, listings)
		if err != nil {
			serviceutil.Fatal("failed to scrape listings", err)
		}
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

		if *scrapeAthlete != "" {
			details = filterAthlete(details, *scrapeAthlete)
		}

		switch *scrapeView {
		case "exercises":
			renderMatrix(analysis.Exercises(details, *scrapeWithRank), *scrapeCsv)
		case "runs":
			renderMatrix(analysis.Runs(details, *scrapeWithRank), *scrapeCsv)
		case "other":
			renderMatrix(analysis.OtherExercises(details, *scrapeWithRank), *scrapeCsv)
		case "splits":
			table, err := analysis.CumulativeSplits(details)
			if err != nil {
				serviceutil.Fatal("failed to build cumulative splits", err)
			}
			renderMatrix(table, *scrapeCsv)
		case "overall":
			times, err := analysis.OverallTimes(details)
			if err != nil {
				serviceutil.Fatal("failed to build overall times", err)
			}
			renderOverall(times, *scrapeCsv)
		default:
			serviceutil.Fatal("unknown view", fmt.Errorf("%q is not a view", *scrapeView))
		}
	},
}

// filterAthlete narrows the result set down to the athlete whose name
// is most similar to the query.
func filterAthlete(details hyrox.Details, query string) hyrox.Details {
	var names []string
	for _, individual := range details.Individuals {
		if individual.Usable() {
			names = append(names, individual.Record.Name(false))
		}
	}

	matched, similarity := matchAthlete(query, names)
	if matched == "" {
		slog.Warn("no athlete matched", "query", query)
		return hyrox.Details{}
	}
	slog.Info("athlete filter", "query", query, "matched", matched, "similarity", similarity)

	var out hyrox.Details
	for _, individual := range details.Individuals {
		if individual.Usable() && individual.Record.Name(false) == matched {
			out.Individuals = append(out.Individuals, individual)
		}
	}
	return out
}

// matchAthlete prefers an unambiguous substring match ("weeks" selects
// "Lauren Weeks" directly) and falls back to the closest name under
// Jaro-Winkler for typos.
func matchAthlete(query string, names []string) (string, float64) {
	var substring []string
	for _, name := range names {
		if textutil.MatchName(name, []string{textutil.NormalizeName(query)}) {
			substring = append(substring, name)
		}
	}
	if len(substring) == 1 {
		return substring[0], 1
	}
	return textutil.ClosestName(query, names)
}
