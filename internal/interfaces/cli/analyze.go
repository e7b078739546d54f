package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	appads "github.com/matgen-io/surfgen/internal/application/adsorption"
)

// NewAnalyzeCmd creates the analyze command: build the slab for a query and
// rank adsorption sites for an adsorbate on it.
func NewAnalyzeCmd(opts *RootOptions) *cobra.Command {
	var (
		adsorbate string
		seed      int64
		seedSet   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <query>",
		Short: "Find and rank adsorption sites for an adsorbate on a surface",
		Example: `  surfgen analyze "Au(111)" --adsorbate CO
  surfgen analyze "Cu(100)" --adsorbate NH3 --seed 42 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adsSvc, err := newServices(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			seedSet = cmd.Flags().Changed("seed")
			req := appads.AnalyzeRequest{Query: args[0], Adsorbate: adsorbate}
			if seedSet {
				req.Seed = &seed
			}

			resp, err := adsSvc.Analyze(ctx, req)
			if err != nil {
				return err
			}

			if opts.Output == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printAnalysis(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&adsorbate, "adsorbate", "a", "", "Adsorbate label, e.g. CO, O2, NH3 (required)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible sampling and jitter")
	cmd.MarkFlagRequired("adsorbate")
	return cmd
}

func printAnalysis(cmd *cobra.Command, resp *appads.AnalyzeResponse) {
	out := cmd.OutOrStdout()

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(out, "%s\n", resp.SystemID)
	fmt.Fprintln(out, resp.Summary)
	fmt.Fprintf(out, "potential: %s  time: %s  seed: %d\n\n",
		resp.PotentialLabel, resp.CalculationTime, resp.Seed)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Rank", "ID", "Type", "Energy (eV)", "Position (Å)"})
	table.SetBorder(false)
	for i, site := range resp.Sites {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			site.ID,
			site.SiteType,
			colorEnergy(site.Energy),
			fmt.Sprintf("(%.2f, %.2f, %.2f)", site.Coordinates.X, site.Coordinates.Y, site.Coordinates.Z),
		})
	}
	table.Render()
}

// colorEnergy renders binding energies green when stable (negative) and red
// when repulsive.
func colorEnergy(e float64) string {
	text := fmt.Sprintf("%+.3f", e)
	if e < 0 {
		return color.GreenString(text)
	}
	return color.RedString(text)
}
