package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	httpin "ratefinder/internal/adapters/in/http"
	"ratefinder/internal/adapters/out/dataset"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/domain/services"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ratesctl",
		Short:         "Courier rate data tools",
		Long:          `Converts carrier CSV price sheets into the master rate file and quotes shipments from it`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(createConvertCmd())
	rootCmd.AddCommand(createQuoteCmd())
	rootCmd.AddCommand(createInspectCmd())

	return rootCmd
}

func stderrLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// createConvertCmd creates the convert subcommand
func createConvertCmd() *cobra.Command {
	var priceDir, out string

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Build the master rate file from CSV price sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, report, err := dataset.NewImporter(stderrLogger(cmd)).ImportDir(priceDir)
			if err != nil {
				return err
			}
			if err = dataset.SaveDocument(out, doc); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Converted %d sheets into %s\n", report.Files, out)
			fmt.Fprintf(w, "Carriers: %d, locations: %d, weight tiers: %d\n",
				doc.Metadata.TotalCarriers, len(doc.Metadata.TotalCountries), len(doc.Metadata.TotalWeightTiers))
			if report.Skipped > 0 {
				fmt.Fprintf(w, "Skipped cells: %d\n", report.Skipped)
			}
			for _, name := range report.Failed {
				fmt.Fprintf(w, "Failed: %s\n", name)
			}
			return nil
		},
	}

	convertCmd.Flags().StringVar(&priceDir, "price-dir", "price", "directory with CSV price sheets")
	convertCmd.Flags().StringVar(&out, "out", "courier_rates_master.json", "output file")

	return convertCmd
}

// createQuoteCmd creates the quote subcommand
func createQuoteCmd() *cobra.Command {
	var (
		datasetPath string
		country     string
		weight      float64
		asJSON      bool
	)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a shipment from the master rate file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			finder, err := loadFinder(cmd.Context(), datasetPath, stderrLogger(cmd))
			if err != nil {
				return err
			}

			quote, err := finder.FindRates(country, weight)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(httpin.NewGetRatesResponse(country, weight, quote))
			}
			return printQuote(cmd.OutOrStdout(), quote)
		},
	}

	quoteCmd.Flags().StringVar(&datasetPath, "dataset", "courier_rates_master.json", "master rate file")
	quoteCmd.Flags().StringVar(&country, "country", "", "destination country")
	quoteCmd.Flags().Float64Var(&weight, "weight", 0, "shipment weight in kg")
	quoteCmd.Flags().BoolVar(&asJSON, "json", false, "print the quote as the get-rates API returns it")
	_ = quoteCmd.MarkFlagRequired("country")
	_ = quoteCmd.MarkFlagRequired("weight")

	return quoteCmd
}

// createInspectCmd creates a command that summarises a master rate file
func createInspectCmd() *cobra.Command {
	var datasetPath string

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what a master rate file contains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := dataset.NewFileLoader(datasetPath, stderrLogger(cmd)).Load(cmd.Context())
			if err != nil {
				return err
			}
			finder, err := services.NewRateFinderFromDataset(ds)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Source: %s\n", ds.Source)
			fmt.Fprintf(w, "Entries: %d (skipped %d)\n", len(ds.Entries), ds.Skipped)
			fmt.Fprintf(w, "Zone values skipped: %d\n", finder.ZonesSkipped())
			for _, carrier := range ds.Carriers() {
				fmt.Fprintf(w, "  %s\n", carrier)
			}
			return nil
		},
	}

	inspectCmd.Flags().StringVar(&datasetPath, "dataset", "courier_rates_master.json", "master rate file")

	return inspectCmd
}

func loadFinder(ctx context.Context, path string, logger *slog.Logger) (*services.RateFinder, error) {
	ds, err := dataset.NewFileLoader(path, logger).Load(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewRateFinderFromDataset(ds)
}

func printQuote(w io.Writer, quote rate.Quote) error {
	fmt.Fprintf(w, "%s, %s kg\n", quote.Country, formatKg(quote.Weight.Kilograms()))
	for _, a := range quote.Zones.Assignments() {
		fmt.Fprintf(w, "  %s zone %s\n", a.Carrier, a.Token)
	}
	if len(quote.Results) == 0 {
		fmt.Fprintln(w, "No carrier serves this destination at this weight.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CARRIER\tSERVICE\tMATCH\tZONE\tTIER\tFINAL\tCALCULATION")
	for _, r := range quote.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s %s\t%s\n",
			r.Carrier, r.ServiceType, r.MatchType, r.Zone, formatKg(r.WeightTier),
			r.FinalRate.StringFixed(2), r.Currency, r.Calculation)
	}
	return tw.Flush()
}

func formatKg(kg float64) string {
	return fmt.Sprintf("%g", kg)
}
