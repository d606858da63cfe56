// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI: it fetches
// PubMed papers matching a query and reports those with at least one
// author affiliated with a pharmaceutical or biotech company.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/fetcher"
	"github.com/pdiddy/pharma-papers/internal/output"
	"github.com/pdiddy/pharma-papers/internal/secrets"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd runs the whole pipeline; the query is the positional argument.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list QUERY",
	Short: "Fetch PubMed papers with pharma/biotech-affiliated authors",
	Long: `get-papers-list searches PubMed with the full PubMed query syntax
(boolean operators, field tags, MeSH terms, date ranges), fetches the
matching records, and keeps only papers where at least one author is
affiliated with a pharmaceutical or biotechnology company. Results are
written as CSV to stdout or to a file.

Examples:
  get-papers-list "cancer AND drug therapy"
  get-papers-list "COVID-19 AND vaccine" --file results.csv
  get-papers-list "diabetes[Title]" --debug --max-results 50`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env entries become visible to viper's AutomaticEnv.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	query := args[0]
	flags := cmd.Flags()

	file, _ := flags.GetString("file")
	debug, _ := flags.GetBool("debug")
	asJSON, _ := flags.GetBool("json")
	maxResults := viper.GetInt("max_results")

	cfg := types.FetcherConfig{
		MaxResults: maxResults,
		PubMed: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("pubmed.timeout"),
				UserAgent: "pharma-papers/" + version,
			},
			Email:          secretDefault("ncbi-email", viper.GetString("pubmed.email")),
			APIKey:         secretDefault("ncbi-api-key", viper.GetString("pubmed.api_key")),
			PageSize:       viper.GetInt("pubmed.page_size"),
			FetchBatchSize: viper.GetInt("pubmed.fetch_batch_size"),
			MaxRetries:     viper.GetInt("pubmed.max_retries"),
		},
		Classify: types.ClassifyConfig{
			CompaniesFile: viper.GetString("classify.companies_file"),
		},
	}
	if debug {
		fmt.Fprintf(os.Stderr, "max-results=%d page-size=%d batch-size=%d email=%q api-key-set=%t\n",
			cfg.MaxResults, cfg.PubMed.PageSize, cfg.PubMed.FetchBatchSize,
			cfg.PubMed.Email, cfg.PubMed.APIKey != "")
	}

	f, err := fetcher.New(cfg)
	if err != nil {
		return err
	}

	var logw io.Writer = io.Discard
	if debug {
		logw = os.Stderr
	}

	records, fetchErr := f.FetchPapers(cmd.Context(), query, cfg.MaxResults, logw)

	// Partial results are still worth writing before reporting the error.
	if len(records) > 0 || fetchErr == nil {
		if err := writeRecords(records, file, asJSON); err != nil {
			return err
		}
	}
	if fetchErr != nil {
		return fetchErr
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no papers with pharmaceutical/biotech affiliations found")
		return nil
	}
	fmt.Fprintf(os.Stderr, "found %d relevant papers\n", len(records))
	return nil
}

func writeRecords(records []types.Record, file string, asJSON bool) error {
	switch {
	case file != "":
		if err := output.SaveCSV(records, file); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "results saved to %s\n", file)
		return nil
	case asJSON:
		return output.WriteJSON(records, os.Stdout)
	default:
		return output.WriteCSV(records, os.Stdout)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharma-papers.yaml or ~/.config/pharma-papers/config.yaml)")

	rootCmd.Flags().StringP("file", "f", "", "output filename for CSV results (stdout if not specified)")
	rootCmd.Flags().BoolP("debug", "d", false, "enable debug output")
	rootCmd.Flags().Int("max-results", 100, "maximum number of papers to fetch")
	rootCmd.Flags().String("email", "", "email address for PubMed API identification")
	rootCmd.Flags().String("api-key", "", "NCBI API key for higher rate limits")
	rootCmd.Flags().Bool("json", false, "output results as JSON instead of CSV")
	rootCmd.Flags().String("companies-file", "", "YAML file with extra known companies for the classifier")

	viper.BindPFlag("max_results", rootCmd.Flags().Lookup("max-results"))
	viper.BindPFlag("pubmed.email", rootCmd.Flags().Lookup("email"))
	viper.BindPFlag("pubmed.api_key", rootCmd.Flags().Lookup("api-key"))
	viper.BindPFlag("classify.companies_file", rootCmd.Flags().Lookup("companies-file"))

	viper.SetDefault("pubmed.timeout", 30*time.Second)
	viper.SetDefault("pubmed.page_size", 100)
	viper.SetDefault("pubmed.fetch_batch_size", 20)
	viper.SetDefault("pubmed.max_retries", 3)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharma-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharma-papers"))
		}
	}

	viper.SetEnvPrefix("PHARMA_PAPERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
