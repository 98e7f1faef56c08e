package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/wallaxis/pkg/analysis"
	"github.com/philipparndt/wallaxis/pkg/centerline"
	"github.com/philipparndt/wallaxis/pkg/plan"
)

var infoConfig string

var infoCmd = &cobra.Command{
	Use:   "info [plan]",
	Short: "Display extraction statistics for a plan file",
	Long:  "Run the centerline pipeline over a plan file and report counts, lengths, thicknesses, and junctions instead of the raw geometry.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoConfig, "config", "c", "", "YAML file with engine settings")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg := centerline.DefaultConfig()
	if infoConfig != "" {
		loaded, err := plan.LoadConfig(infoConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	p, err := plan.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := centerline.New(cfg)
	walls := p.Segments()
	lines := engine.ExtractStory(p.Story, walls, p.ReferenceAxes())
	summary := analysis.Summarize(walls, lines)

	fmt.Println("Plan Information")
	fmt.Println("================")
	if p.Story != "" {
		fmt.Printf("Story: %s\n", p.Story)
	}
	fmt.Printf("File: %s\n\n", filename)

	settings := engine.Config()
	fmt.Println("Engine Settings:")
	fmt.Printf("  Nominal thicknesses: %v\n", settings.WallThicknesses)
	fmt.Printf("  Angle tolerance: %.1f degrees\n", settings.AngleTolerance)
	fmt.Printf("  Distance tolerance: %.1f units\n", settings.DistanceTolerance)
	fmt.Printf("  Minimum length: %.1f units\n\n", settings.MinLength)

	fmt.Println("Extraction:")
	fmt.Printf("  Input wall faces: %d\n", summary.WallCount)
	fmt.Printf("  Reference axes: %d\n", len(p.Axes))
	fmt.Printf("  Centerlines: %d\n", summary.CenterlineCount)
	fmt.Printf("  Junctions: %d\n\n", summary.JunctionCount)

	fmt.Println("Centerline Lengths:")
	fmt.Printf("  Total: %.1f units\n", summary.TotalLength)
	fmt.Printf("  Minimum: %.1f units\n", summary.MinLength)
	fmt.Printf("  Maximum: %.1f units\n", summary.MaxLength)
	fmt.Printf("  Average: %.1f units\n\n", summary.AvgLength)

	fmt.Println("Directions:")
	fmt.Printf("  Horizontal: %d\n", summary.Horizontal)
	fmt.Printf("  Vertical: %d\n", summary.Vertical)
	fmt.Printf("  Skewed: %d\n\n", summary.Skewed)

	fmt.Println("Thicknesses:")
	thicknesses := make([]int, 0, len(summary.Thicknesses))
	for t := range summary.Thicknesses {
		thicknesses = append(thicknesses, t)
	}
	sort.Ints(thicknesses)
	for _, t := range thicknesses {
		fmt.Printf("  %d units: %d centerlines\n", t, summary.Thicknesses[t])
	}
}
