package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trafficlab/feedscore/internal/config"
	"github.com/trafficlab/feedscore/internal/ingest"
	"github.com/trafficlab/feedscore/internal/output"
	"github.com/trafficlab/feedscore/internal/report"
	"github.com/trafficlab/feedscore/internal/rubric"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	enhanced     bool
	outputFormat string
	outputFile   string
	failUnder    int
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "feedscore [glob...]",
	Short: "Score traffic event feeds against WZDx, SAE J2735, and TMDD",
	Long: `Feedscore evaluates a batch of traffic event records against three published
data-interchange standards and reports per-standard and composite compliance
scores, letter grades, itemized violations, and a prioritized remediation plan.

Event files are discovered by glob pattern under the root directory and may be
JSON or YAML, either a bare event array or an {"events": [...]} envelope.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory event globs are resolved against (default current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-field track coverage and full violation lists")
	rootCmd.PersistentFlags().BoolVarP(&enhanced, "enhanced", "e", false, "Show the lenient (inferred-value) scores alongside the strict ones")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero when the composite score is below this percentage")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("enhanced", rootCmd.PersistentFlags().Lookup("enhanced"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failUnder", rootCmd.PersistentFlags().Lookup("fail-under"))
}

func initConfig() {
	configPaths := []string{".feedscorerc.json", ".feedscorerc.yaml", ".feedscorerc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

// buildReport loads events and runs the full analysis, shared by the root,
// score, and plan commands.
func buildReport(cfg *config.Config, args []string) (*report.Report, error) {
	patterns := cfg.Patterns
	if len(args) > 0 {
		patterns = args
	}

	loader, err := ingest.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("initializing loader: %w", err)
	}
	events, err := loader.LoadGlobs(cfg.Root, patterns)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	registry, err := rubric.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("building standard registry: %w", err)
	}
	return report.Build(events, registry), nil
}

func runScore(args []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	rep, err := buildReport(cfg, args)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cfg)
	if err != nil {
		return err
	}
	if err := formatter.Format(rep); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if cfg.FailUnder > 0 && rep.Composite.Percentage < cfg.FailUnder {
		return fmt.Errorf("composite score %d%% is below fail-under threshold %d%%",
			rep.Composite.Percentage, cfg.FailUnder)
	}
	return nil
}
