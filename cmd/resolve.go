package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	corecatalog "craft-calculator/core/catalog"
	"craft-calculator/core/config"
	"craft-calculator/core/logger"
	"craft-calculator/feature/bill"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [identifier quantity]...",
	Short: "Resolve a bill of materials from the command line",
	Long: `Expands one or more (identifier, quantity) pairs against the configured
catalog store and prints the consolidated raw components.

Example:
  craft-calculator resolve "Novice Hunting Bow" 1 "Magic Powder" 3`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("arguments must be identifier/quantity pairs")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runResolve(cmd.Context(), args)
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}

func runResolve(ctx context.Context, args []string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, err := buildStore(cfg, logg)
	if err != nil {
		logg.Fatal("Failed to create catalog store", zap.Error(err))
	}

	var entries []bill.Entry
	for i := 0; i+1 < len(args); i += 2 {
		qty, err := strconv.Atoi(args[i+1])
		if err != nil || qty < 1 {
			fmt.Printf("Quantity for %q must be a positive integer\n", args[i])
			os.Exit(1)
		}
		entries = append(entries, bill.Entry{Identifier: args[i], Quantity: qty})
	}

	cache := corecatalog.NewCache(store, logg, cfg.Catalog.TTL())
	svc := bill.NewService(cache, logg)
	components := svc.Resolve(ctx, entries)

	if len(components) == 0 {
		fmt.Println("No components resolved.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQUANTITY\tSOURCE\tFLAGS")
	for _, comp := range components {
		flags := ""
		if comp.IsUnknown {
			flags = "unknown"
		} else if !comp.IsRaw {
			flags = "no-recipe"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", comp.Name, comp.Quantity, comp.SourceSkill, flags)
	}
	w.Flush()
}
