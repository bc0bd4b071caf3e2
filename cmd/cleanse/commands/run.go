package commands

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/cleanse/internal/logger"
	"github.com/jmylchreest/cleanse/internal/output"
	"github.com/jmylchreest/cleanse/pkg/dataset"
	"github.com/jmylchreest/cleanse/pkg/pipeline"
	"github.com/jmylchreest/cleanse/pkg/report"
	"github.com/jmylchreest/cleanse/pkg/validate"
)

var runCmd = &cobra.Command{
	Use:   "run [input-file]",
	Short: "Run the cleaning pipeline over a dataset",
	Long: `Run the full cleaning pipeline: load, normalize, drop incomplete
records, deduplicate, validate, then write the cleaned dataset and a
quality report.

The input file must contain either a JSON array of records or an object
with an "articles" array.

Examples:
  cleanse run sample_data.json
  cleanse run sample_data.json -o cleaned.json -r report.txt
  cleanse run sample_data.json --disable-rule short_content`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.StringP("input", "i", "", "input dataset file (or pass as positional argument)")
	flags.StringP("output", "o", "cleaned_output.json", "cleaned dataset file")
	flags.StringP("report", "r", "quality_report.txt", "quality report file")
	flags.String("format", "json", "cleaned output format: json, jsonl, yaml")
	flags.Int("min-content-length", validate.DefaultMinContentLength, "minimum content length for validation")
	flags.StringSlice("disable-rule", nil, "reason code of a rule to disable (can be repeated)")
	flags.Bool("no-failed-details", false, "omit the failed-record listing from the report")

	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("report", flags.Lookup("report"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("min_content_length", flags.Lookup("min-content-length"))
	_ = viper.BindPFlag("disable_rule", flags.Lookup("disable-rule"))
	_ = viper.BindPFlag("no_failed_details", flags.Lookup("no-failed-details"))
}

func runRun(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	inputPath, _ := cmd.Flags().GetString("input")
	if len(args) > 0 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return cmd.Help()
	}

	outputPath := viper.GetString("output")
	reportPath := viper.GetString("report")
	noDetails := viper.GetBool("no_failed_details")
	disabled := viper.GetStringSlice("disable_rule")

	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		logError("%v", err)
		return err
	}

	records, err := dataset.LoadFile(inputPath)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Info("dataset loaded", "path", inputPath, "records", len(records))

	rules := validate.WithoutReasons(
		validate.DefaultRules(viper.GetInt("min_content_length")), disabled)
	p := pipeline.New(pipeline.Options{Rules: rules})
	res := p.Run(records)

	reportText, err := report.Render(res, report.Options{
		IncludeFailedDetails: !noDetails,
	})
	if err != nil {
		logError("%v", err)
		return err
	}

	if err := writeCleaned(outputPath, format, res.Cleaned); err != nil {
		logError("write cleaned dataset: %v", err)
		return err
	}
	if err := writeReport(reportPath, reportText); err != nil {
		logError("write report: %v", err)
		return err
	}

	logInfo("Cleaned dataset: %s (%s records, %s)",
		outputPath, humanize.Comma(int64(len(res.Cleaned))), fileSize(outputPath))
	logInfo("Quality report:  %s", reportPath)
	logInfo("Summary: %d loaded -> %d after cleaning -> %d valid",
		res.Funnel.Loaded, res.Funnel.Validated, res.Funnel.Passed)
	return nil
}

func writeCleaned(path string, format output.Format, records []dataset.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := output.NewWriter(f, format)
	if err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		return err
	}
	return w.Close()
}

func writeReport(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}
