package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/cleanse/pkg/validate"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active validation rules",
	Long: `Print the validation rule set in evaluation order, after applying
--min-content-length and --disable-rule.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	flags := rulesCmd.Flags()
	flags.Int("min-content-length", validate.DefaultMinContentLength, "minimum content length for validation")
	flags.StringSlice("disable-rule", nil, "reason code of a rule to disable (can be repeated)")
}

func runRules(cmd *cobra.Command, args []string) error {
	minLen, _ := cmd.Flags().GetInt("min-content-length")
	if !cmd.Flags().Changed("min-content-length") && viper.IsSet("min_content_length") {
		minLen = viper.GetInt("min_content_length")
	}
	disabled, _ := cmd.Flags().GetStringSlice("disable-rule")

	rules := validate.WithoutReasons(validate.DefaultRules(minLen), disabled)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tREASON\tAPPLIES\tPREDICATE")
	for _, rule := range rules {
		applies := "always"
		if rule.OnlyIfPresent {
			applies = "if present"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.Field, rule.Reason, applies, rule.Description)
	}
	return w.Flush()
}
