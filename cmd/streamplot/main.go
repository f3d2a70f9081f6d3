// Package main provides the CLI entry point for streamplot.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/streamplot-go/pkg/streamplot"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/bench"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/display"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/output"
)

var (
	configPath string
	streams    int
	length     int
	repeats    int
	xlsxPath   string
	assumeYes  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamplot",
		Short: "Plot time against number of streams",
		Long: `streamplot reads "` + streamplot.DataFile + `" from the working directory
and shows its samples as a scatter plot.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	measureCmd := &cobra.Command{
		Use:   "measure",
		Short: "Time parallel accumulation and write the dataset file",
		Args:  cobra.NoArgs,
		RunE:  runMeasure,
	}
	defaults := bench.DefaultConfig()
	measureCmd.Flags().StringVar(&configPath, "config", "", "YAML benchmark config")
	measureCmd.Flags().IntVar(&streams, "streams", defaults.MaxStreams, "Largest number of streams to time")
	measureCmd.Flags().IntVar(&length, "length", defaults.Length, "Number of values accumulated per run")
	measureCmd.Flags().IntVar(&repeats, "repeats", defaults.Repeats, "Runs per stream count (fastest is kept)")
	measureCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the samples to this xlsx workbook")
	measureCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Overwrite the dataset file without asking")
	rootCmd.AddCommand(measureCmd)

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set
	glogFlags := pflag.NewFlagSet("glog", pflag.ContinueOnError)
	glogFlags.AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().AddFlagSet(glogFlags)
	flag.CommandLine.Parse(nil)

	err := rootCmd.Execute()
	if err != nil {
		glog.Errorf("streamplot: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	return streamplot.Run(streamplot.DefaultOptions(), display.NewWindow())
}

func runMeasure(cmd *cobra.Command, args []string) error {
	cfg := bench.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Explicit flags win over the config file
	flags := cmd.Flags()
	if flags.Changed("streams") {
		cfg.MaxStreams = streams
	}
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("repeats") {
		cfg.Repeats = repeats
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dataPath := streamplot.DataFile
	if !assumeYes {
		ok, err := confirmOverwrite(dataPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ds, err := bench.Measure(cfg)
	if err != nil {
		return fmt.Errorf("measurement failed: %w", err)
	}

	if err := output.WriteDataset(dataPath, ds, true); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	printTable(ds)

	if xlsxPath != "" {
		labels := output.Labels{X: streamplot.XLabel, Y: streamplot.YLabel}
		if err := output.WriteWorkbook(xlsxPath, ds, labels); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Printf("Workbook written to %s\n", xlsxPath)
	}

	return nil
}

// confirmOverwrite asks before replacing an existing file at path.
func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	ok := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%q exists. Overwrite?", path),
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func printTable(ds models.Dataset) {
	for _, s := range ds {
		fmt.Printf("%g %g\n", s.X, s.Y)
	}
}
