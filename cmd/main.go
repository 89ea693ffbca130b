// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"parrot-check/internal/config"
	"parrot-check/internal/core"
	"parrot-check/internal/detector"
	"parrot-check/internal/help"
	"parrot-check/internal/lookup"
	"parrot-check/internal/observability"
	"parrot-check/internal/records"
	"parrot-check/internal/resilience"
	"parrot-check/internal/version"
	"parrot-check/internal/web"

	"parrot-check/internal/formatters"
	_ "parrot-check/internal/formatters/csv"
	_ "parrot-check/internal/formatters/json"
	_ "parrot-check/internal/formatters/text"
	_ "parrot-check/internal/formatters/yaml"

	"parrot-check/internal/validators/characteristic"
	"parrot-check/internal/validators/errorkeywords"
	"parrot-check/internal/validators/factual"
	"parrot-check/internal/validators/professionalclaims"
	"parrot-check/internal/validators/relationship"
	"parrot-check/internal/validators/responselength"
	"parrot-check/internal/validators/sensitivekeywords"
)

// configFlags holds command line flag values
type configFlags struct {
	question     string
	response     string
	platform     string
	inputFile    string
	configFile   string
	profileName  string
	listProfiles bool
	format       string
	confidence   string
	checks       string
	noLookup     bool
	recordsFile  string
	outputFile   string
	verbose      bool
	debug        bool
	noColor      bool
	quiet        bool
	webMode      bool
	webPort      string
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format     string
	confidence string
	checks     string
	verbose    bool
	debug      bool
	noColor    bool
	noLookup   bool
	weights    map[string]float64
}

func main() {
	question := flag.String("question", "", "Question text to validate")
	response := flag.String("response", "", "Response text to validate")
	platform := flag.String("platform", "manual", "Platform the pair was captured from (e.g., chatgpt, gemini)")
	inputFile := flag.String("file", "", "Path to a JSON file with an array of {question, response, platform} pairs")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	confidenceLevels := flag.String("confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	checksToRun := flag.String("checks", "", "Specific checks to run: error_keywords, factual_accuracy, or combinations like 'error_keywords,response_length'")
	noLookup := flag.Bool("no-lookup", false, "Disable reference lookups (factual check degrades to its fallback score)")
	recordsFile := flag.String("records-file", "", "Path to the validation record store; results are deduplicated and persisted there")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display per-validator detail for each result")
	debug := flag.Bool("debug", false, "Enable debug logging of pipeline timings")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	showHelp := flag.Bool("help", false, "Show help information (combine with a check name for check-specific help)")
	listChecks := flag.Bool("list-checks", false, "List available checks with short descriptions")
	showVersion := flag.Bool("version", false, "Show version information")
	webMode := flag.Bool("web", false, "Start the web dashboard instead of CLI validation")
	webPort := flag.String("port", "8080", "Port for the web dashboard (default: 8080)")

	flag.Parse()

	flags := &configFlags{
		question:     *question,
		response:     *response,
		platform:     *platform,
		inputFile:    *inputFile,
		configFile:   *configFile,
		profileName:  *profileName,
		listProfiles: *listProfiles,
		format:       *outputFormat,
		confidence:   *confidenceLevels,
		checks:       *checksToRun,
		noLookup:     *noLookup,
		recordsFile:  *recordsFile,
		outputFile:   *outputFile,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		quiet:        *quiet,
		webMode:      *webMode,
		webPort:      *webPort,
	}

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || flags.quiet || os.Getenv("CI") != "" {
		flags.noColor = true
	}

	helpSystem := buildHelpSystem(flags.noColor)
	if *showHelp {
		if name := flag.Arg(0); name != "" {
			helpSystem.ShowCheckHelp(name)
			return
		}
		helpSystem.ShowGeneralHelp()
		return
	}
	if *listChecks {
		helpSystem.ShowChecksList()
		return
	}

	cfg := loadConfiguration(flags.configFile)

	if flags.listProfiles {
		printProfiles(cfg)
		return
	}

	var activeProfile *config.Profile
	if flags.profileName != "" {
		activeProfile = cfg.GetProfile(flags.profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: profile %q not found. Available profiles: %s\n",
				flags.profileName, strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(2)
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flags)
	if os.Getenv("PARROT_DEBUG") != "" {
		final.debug = true
	}

	var observer *observability.StandardObserver
	if final.debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
	}

	aggregator := core.NewAggregator(core.AggregatorOptions{
		Checks:   core.ParseChecksToRun([]string{final.checks}),
		Weights:  final.weights,
		Lookup:   buildLookup(cfg, final.noLookup),
		Observer: observer,
	})

	storePath := flags.recordsFile
	if flags.webMode && storePath == "" {
		storePath = cfg.Records.File
	}
	store := records.NewStore(storePath, cfg.Records.MaxEntries)

	if flags.webMode {
		server := web.NewWebServer(flags.webPort, aggregator, store)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	pairs, err := collectPairs(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	var entries []formatters.Entry
	anyInvalid := false
	for _, pair := range pairs {
		report := aggregator.ValidatePair(ctx, pair)
		if storePath != "" {
			store.Add(pair, report)
		}
		if !report.IsValid {
			anyInvalid = true
		}
		entries = append(entries, formatters.Entry{
			Question:  pair.Question,
			Response:  pair.Response,
			Platform:  pair.Platform,
			Timestamp: pair.Timestamp,
			Report:    report,
		})
	}

	if storePath != "" {
		if err := store.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist records: %v\n", err)
		}
	}

	output, err := formatters.Export(final.format, entries, formatters.FormatterOptions{
		ConfidenceLevel: core.ParseConfidenceLevels(final.confidence),
		Verbose:         final.verbose,
		NoColor:         final.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(output, flags.outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Non-zero exit when any pair failed validation, for scripted gating
	if anyInvalid {
		os.Exit(1)
	}
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, flags winning.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.format = "text"
	if cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.format != "" {
		final.format = flags.format
	}

	final.confidence = "all"
	if cfg.Defaults.ConfidenceLevels != "" {
		final.confidence = cfg.Defaults.ConfidenceLevels
	}
	if activeProfile != nil && activeProfile.ConfidenceLevels != "" {
		final.confidence = activeProfile.ConfidenceLevels
	}
	if isFlagSet("confidence") && flags.confidence != "" {
		final.confidence = flags.confidence
	}

	final.checks = "all"
	if cfg.Defaults.Checks != "" {
		final.checks = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checks = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checks != "" {
		final.checks = flags.checks
	}

	final.verbose = cfg.Defaults.Verbose
	if activeProfile != nil {
		final.verbose = final.verbose || activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	final.debug = cfg.Defaults.Debug
	if activeProfile != nil {
		final.debug = final.debug || activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	final.noColor = flags.noColor || cfg.Defaults.NoColor
	if activeProfile != nil {
		final.noColor = final.noColor || activeProfile.NoColor
	}

	final.noLookup = !cfg.Lookup.Enabled
	if activeProfile != nil {
		final.noLookup = final.noLookup || activeProfile.NoLookup
	}
	if isFlagSet("no-lookup") {
		final.noLookup = flags.noLookup
	}

	final.weights = cfg.EffectiveWeights(activeProfile)

	return final
}

// buildLookup constructs the reference client, or nil when lookups are off.
func buildLookup(cfg *config.Config, noLookup bool) detector.Lookup {
	if noLookup {
		return nil
	}

	opts := lookup.DefaultOptions()
	if cfg.Lookup.BaseURL != "" {
		opts.BaseURL = cfg.Lookup.BaseURL
	}
	if cfg.Lookup.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second
	}
	if cfg.Lookup.UserAgent != "" {
		opts.UserAgent = cfg.Lookup.UserAgent
	}
	if cfg.Lookup.MaxRetries > 0 {
		retry := resilience.LookupRetryConfig()
		retry.MaxRetries = cfg.Lookup.MaxRetries
		opts.Retry = retry
	}
	return lookup.NewClient(opts)
}

// collectPairs gathers the pairs to validate from flags or a batch file.
func collectPairs(flags *configFlags) ([]detector.Pair, error) {
	if flags.inputFile != "" {
		return readPairsFile(flags.inputFile, flags.platform)
	}

	if strings.TrimSpace(flags.question) == "" && strings.TrimSpace(flags.response) == "" {
		return nil, fmt.Errorf("nothing to validate: provide --question/--response, a --file of pairs, or --web\nRun with --help for usage")
	}

	return []detector.Pair{{
		Question:  flags.question,
		Response:  flags.response,
		Platform:  flags.platform,
		Timestamp: time.Now().UTC(),
	}}, nil
}

// readPairsFile loads a JSON array of pairs exported from a capture tool.
func readPairsFile(path, defaultPlatform string) ([]detector.Pair, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading pairs file: %w", err)
	}

	var pairs []detector.Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parsing pairs file %s: %w", path, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("pairs file %s contains no pairs", path)
	}

	for i := range pairs {
		if pairs[i].Platform == "" {
			pairs[i].Platform = defaultPlatform
		}
		if pairs[i].Timestamp.IsZero() {
			pairs[i].Timestamp = time.Now().UTC()
		}
	}
	return pairs, nil
}

func buildHelpSystem(noColor bool) *help.System {
	helpSystem := help.NewSystem(noColor)
	helpSystem.RegisterProvider(errorkeywords.NewValidator())
	helpSystem.RegisterProvider(responselength.NewValidator())
	helpSystem.RegisterProvider(sensitivekeywords.NewValidator())
	helpSystem.RegisterProvider(professionalclaims.NewValidator())
	helpSystem.RegisterProvider(relationship.NewValidator())
	helpSystem.RegisterProvider(characteristic.NewValidator())
	helpSystem.RegisterProvider(factual.NewValidator())
	return helpSystem
}

func printProfiles(cfg *config.Config) {
	profiles := cfg.ListProfiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range profiles {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Printf("  %-12s %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func writeOutput(output, outputFile string) error {
	if outputFile == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Results written to %s\n", outputFile)
	return nil
}

// isFlagSet reports whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// isTerminal reports whether the writer is an interactive terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
