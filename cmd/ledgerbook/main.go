package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iho/ledgerbook/internal/adapter/repository/file"
	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/config"
	"github.com/iho/ledgerbook/internal/infrastructure/logger"
	"github.com/iho/ledgerbook/internal/ledger"
	"github.com/iho/ledgerbook/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var filePath string

	rootCmd := &cobra.Command{
		Use:   "ledgerbook",
		Short: "Personal transaction ledger",
		Long: `ledgerbook keeps an ordered ledger of personal transactions in a flat
JSON or CSV file and derives month-by-category summaries from it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&filePath, "file", cfg.LedgerFile, "ledger file path (.json or .csv)")

	rootCmd.AddCommand(
		newListCmd(&filePath),
		newAddCmd(&filePath),
		newReportCmd(&filePath, cfg.ReportCurrency),
		newConvertCmd(&filePath),
	)

	return rootCmd
}

// ledgerPath resolves the ledger file: an optional positional argument wins
// over the --file flag.
func ledgerPath(flagPath string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagPath
}

func openBook(path string) (*ledger.Book, error) {
	book := ledger.New(file.New(path))
	if err := book.Load(context.Background()); err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Int("records", book.Len()).Msg("ledger loaded")
	return book, nil
}

func newListCmd(flagPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Print the ledger as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(ledgerPath(*flagPath, args))
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), book)
			return nil
		},
	}
}

// maxColumnWidth caps the schema's display widths for terminal output.
const maxColumnWidth = 30

func columnWidth(f domain.Field) int {
	if w := f.Width(); w < maxColumnWidth {
		return w
	}
	return maxColumnWidth
}

func printTable(w io.Writer, book *ledger.Book) {
	for _, f := range domain.Fields() {
		fmt.Fprintf(w, "%-*s ", columnWidth(f), f.Name())
	}
	fmt.Fprintln(w)

	for row := 0; row < book.Len(); row++ {
		for column, f := range domain.Fields() {
			text, _ := book.CellText(row, column)
			fmt.Fprintf(w, "%-*s ", columnWidth(f), truncate(text, columnWidth(f)))
		}
		fmt.Fprintln(w)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func newAddCmd(flagPath *string) *cobra.Command {
	var (
		date      string
		amount    string
		details   string
		category  string
		method    string
		direction string
		currency  string
	)

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Append one transaction and save",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseDate(date)
			if err != nil {
				return err
			}
			tx := domain.NewTransaction(parsed)

			inputs := []struct {
				field domain.Field
				value string
			}{
				{domain.FieldAmount, amount},
				{domain.FieldDetails, details},
				{domain.FieldCategory, category},
				{domain.FieldMethod, method},
				{domain.FieldDirection, direction},
				{domain.FieldCurrency, currency},
			}
			for _, in := range inputs {
				if in.value == "" {
					continue
				}
				if err := tx.SetField(int(in.field), in.value); err != nil {
					return err
				}
			}

			ctx := context.Background()
			path := ledgerPath(*flagPath, args)
			book := ledger.New(file.New(path))
			if err := book.Load(ctx); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				log.Warn().Str("file", path).Msg("ledger file not found, starting a new one")
			}
			book.Append(tx)
			if err := book.Save(ctx); err != nil {
				return err
			}

			log.Info().Str("file", path).Int("records", book.Len()).Msg("ledger saved")
			fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", tx.FieldText(domain.FieldDate), tx.Details)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY.MM.DD or YYYY-MM-DD)")
	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount")
	cmd.Flags().StringVar(&details, "details", "", "free-form details")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&direction, "direction", "", "in or out")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newReportCmd(flagPath *string, currency string) *cobra.Command {
	var (
		categoryFlag string
		monthsFlag   int
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Print month-by-category sums",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(ledgerPath(*flagPath, args))
			if err != nil {
				return err
			}
			rep := report.New(book.Snapshot(), currency)
			out := cmd.OutOrStdout()

			if categoryFlag != "" {
				key, err := parseCategoryKey(categoryFlag)
				if err != nil {
					return err
				}
				for _, point := range rep.MonthSeries(key) {
					fmt.Fprintf(out, "%s  %10.2f\n", point.Month, point.Amount)
				}
				return nil
			}

			for i, month := range rep.Months() {
				if monthsFlag > 0 && i >= monthsFlag {
					break
				}
				fmt.Fprintln(out, month)
				for _, key := range rep.CategoriesForMonth(i) {
					fmt.Fprintf(out, "  %-30s %10.2f\n", key, rep.SumFor(key, month))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", `category key "direction:category", or "direction:*" for the rollup`)
	cmd.Flags().IntVar(&monthsFlag, "months", 0, "limit output to the most recent N months")

	return cmd
}

func parseCategoryKey(s string) (report.CategoryKey, error) {
	direction, category, ok := strings.Cut(s, ":")
	if !ok {
		return report.CategoryKey{}, fmt.Errorf("invalid category key %q, want direction:category", s)
	}
	if category == "*" {
		return report.CategoryKey{Direction: direction, Rollup: true}, nil
	}
	return report.CategoryKey{Direction: direction, Category: category}, nil
}

func newConvertCmd(flagPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <destination>",
		Short: "Rewrite the ledger into another file, JSON or CSV by extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(*flagPath)
			if err != nil {
				return err
			}
			if err := book.WriteTo(context.Background(), file.New(args[0])); err != nil {
				return err
			}

			log.Info().Str("from", *flagPath).Str("to", args[0]).Int("records", book.Len()).Msg("ledger converted")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", book.Len(), args[0])
			return nil
		},
	}
}
