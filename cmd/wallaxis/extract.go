package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/wallaxis/pkg/centerline"
	"github.com/philipparndt/wallaxis/pkg/plan"
	"github.com/philipparndt/wallaxis/pkg/watcher"
)

var (
	extractOut    string
	extractConfig string
	extractWatch  bool
	extractBreak  bool
	extractExtend bool
	extractNoAuto bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [plan]",
	Short: "Extract wall centerlines from a plan file",
	Long: `Run the centerline pipeline over a JSON plan file and write the resulting
centerlines as JSON, to stdout or to a file.`,
	Args: cobra.ExactArgs(1),
	Run:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write the result to a file instead of stdout")
	extractCmd.Flags().StringVarP(&extractConfig, "config", "c", "", "YAML file with engine settings")
	extractCmd.Flags().BoolVar(&extractBreak, "break-at-axes", false, "Split centerlines at reference axis crossings")
	extractCmd.Flags().BoolVar(&extractExtend, "extend-to-axes", false, "Extend centerlines onto nearby reference axes")
	extractCmd.Flags().BoolVar(&extractNoAuto, "no-auto-extend", false, "Do not join endpoints of nearly meeting perpendicular centerlines")
	extractCmd.Flags().BoolVarP(&extractWatch, "watch", "w", false, "Re-run extraction when the plan or config file changes")
}

func runExtract(cmd *cobra.Command, args []string) {
	filename := args[0]
	cfg := loadEngineConfig()

	if err := extractOnce(filename, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !extractWatch {
		return
	}

	files := []string{filename}
	if extractConfig != "" {
		files = append(files, extractConfig)
	}

	pw, err := watcher.New(200 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer pw.Close()

	err = pw.Watch(files, func(changed string) {
		fmt.Fprintf(os.Stderr, "%s changed, re-running extraction\n", changed)
		if err := extractOnce(filename, loadEngineConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pw.Start()
	fmt.Fprintln(os.Stderr, "Watching for changes, press Ctrl-C to stop")
	select {}
}

// extractOnce runs the pipeline over one plan file and writes the result
func extractOnce(filename string, cfg centerline.Config) error {
	p, err := plan.Load(filename)
	if err != nil {
		return err
	}

	engine := centerline.New(cfg)
	lines := engine.ExtractStory(p.Story, p.Segments(), p.ReferenceAxes())
	result := plan.NewResult(p.Story, lines)

	if extractOut != "" {
		return result.Save(extractOut)
	}
	return result.Encode(os.Stdout)
}

// loadEngineConfig builds the engine configuration from the defaults, the
// optional YAML file, and the command-line switches.
func loadEngineConfig() centerline.Config {
	cfg := centerline.DefaultConfig()
	if extractConfig != "" {
		loaded, err := plan.LoadConfig(extractConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if extractBreak {
		cfg.BreakAtAxes = true
	}
	if extractExtend {
		cfg.ExtendToAxes = true
	}
	if extractNoAuto {
		cfg.AutoExtend = false
	}
	return cfg
}
