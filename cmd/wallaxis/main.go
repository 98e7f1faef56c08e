package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/wallaxis/version"
)

var rootCmd = &cobra.Command{
	Use:   "wallaxis",
	Short: "Extract structural wall centerlines from drawn floor plans",
	Long: `wallaxis converts the raw wall-face segments of a drawn floor plan into
idealized wall centerlines for structural load mapping. It pairs opposing
wall faces, infers real thicknesses, bridges door and column openings, and
aligns the result with structural reference axes.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
