package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	appslab "github.com/matgen-io/surfgen/internal/application/slab"
)

// NewBuildCmd creates the build command: parse a surface query, build the
// slab, print atoms and lattice vectors.
func NewBuildCmd(opts *RootOptions) *cobra.Command {
	var showAtoms bool

	cmd := &cobra.Command{
		Use:   "build <query>",
		Short: "Build an FCC slab from a surface query such as \"Au(111)\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slabSvc, _, err := newServices(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			resp, err := slabSvc.Build(ctx, appslab.BuildRequest{Query: args[0]})
			if err != nil {
				return err
			}

			if opts.Output == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printStructure(cmd, resp, showAtoms)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAtoms, "atoms", false, "List every atom position")
	return cmd
}

func printStructure(cmd *cobra.Command, resp *appslab.BuildResponse, showAtoms bool) {
	out := cmd.OutOrStdout()
	s := resp.Structure

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(out, "%s %s\n", s.Formula, s.MillerIndex)
	fmt.Fprintln(out, s.Description)
	fmt.Fprintf(out, "reference: %s  symmetry: %s  formation energy: %.3f eV/atom\n",
		s.ReferenceID, s.SymmetryGroup, s.FormationEnergy)
	fmt.Fprintf(out, "atoms: %d  bonds: %d\n", len(s.Atoms), len(s.Bonds))

	fmt.Fprintln(out, "\nLattice vectors (Å):")
	for i, v := range s.LatticeVectors {
		fmt.Fprintf(out, "  a%d = (%8.4f, %8.4f, %8.4f)\n", i+1, v.X, v.Y, v.Z)
	}

	if !showAtoms {
		return
	}

	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Element", "X (Å)", "Y (Å)", "Z (Å)"})
	table.SetBorder(false)
	for _, a := range s.Atoms {
		table.Append([]string{
			strconv.Itoa(a.ID),
			a.Element,
			fmt.Sprintf("%.4f", a.Position.X),
			fmt.Sprintf("%.4f", a.Position.Y),
			fmt.Sprintf("%.4f", a.Position.Z),
		})
	}
	table.Render()
}
