package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"climcli/internal/config"
	"climcli/internal/exporter"
	"climcli/internal/files"
	"climcli/internal/infrastructure"
	"climcli/internal/pipeline"
)

func main() {
	stationsFlag := flag.String("stations", "", "comma-separated station names, last one is the primary (Trade) station; prompts interactively when empty")
	dirFlag := flag.String("dir", "", "base directory holding one subdirectory per station (overrides config)")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// A local .env augments the environment before envconfig runs.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *dirFlag != "" {
		cfg.Paths.BaseDir = *dirFlag
	}
	if *stationsFlag != "" {
		cfg.Stations.Names = splitStations(*stationsFlag)
	}
	if len(cfg.Stations.Names) == 0 {
		names, err := promptStations(os.Stdin, os.Stdout)
		if err != nil {
			slog.Error("failed to read station names", "error", err)
			os.Exit(1)
		}
		cfg.Stations.Names = names
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := cfg.ValidateRun(); err != nil {
		logger.Error("configuration error, aborting before any processing", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printStationTable(os.Stdout, cfg.Stations.Names)

	logger.Info("starting climate data processing",
		slog.String("base_dir", cfg.Paths.BaseDir),
		slog.Int("start_year", cfg.Years.Start),
		slog.Int("end_year", cfg.Years.End),
		slog.String("primary_station", cfg.Stations.Primary()))

	discovery := files.NewDiscovery(cfg.Paths.BaseDir)
	consolidator := pipeline.NewConsolidator(discovery, cfg.Stations.Names, cfg.Years.Start, cfg.Years.End, logger)
	runner := pipeline.NewRunner(consolidator, logger)
	out := exporter.New(cfg.Paths.BaseDir, logger)

	result := runner.Run(cfg.Years.Range(), func(table *pipeline.YearTable, fills []pipeline.FillEntry) error {
		if _, err := out.WriteYearWorkbook(table); err != nil {
			return err
		}
		if _, err := out.WriteTradeTXT(table); err != nil {
			return err
		}
		fmt.Printf("Processed year %d (%d days, %d fills)\n", table.Year, table.NumDays(), len(fills))
		return nil
	})

	if len(result.ProcessedYears) == 0 {
		logger.Error("no year produced any data", slog.String("base_dir", cfg.Paths.BaseDir))
		fmt.Fprintln(os.Stderr, "Error: no data collected for any year")
		os.Exit(1)
	}

	primary := cfg.Stations.Primary()
	if _, err := out.WriteConsolidatedWorkbook(primary, result.Assembler); err != nil {
		logger.Error("failed to write consolidated workbook", slog.String("error", err.Error()))
	}
	if _, err := out.WriteCombinedCSV(primary, cfg.Years.Count(), result.Assembler); err != nil {
		logger.Error("failed to write combined CSV", slog.String("error", err.Error()))
	}
	if _, err := out.WriteFillLog(cfg.Years.Start, cfg.Years.End, primary, result.Fills); err != nil {
		logger.Error("failed to write fill log", slog.String("error", err.Error()))
	}

	logger.Info("processing complete",
		slog.Int("processed_years", len(result.ProcessedYears)),
		slog.Int("skipped_years", len(result.SkippedYears)),
		slog.Int("total_fills", len(result.Fills)))
	fmt.Printf("Processing complete: %d years processed, %d skipped, %d fills\n",
		len(result.ProcessedYears), len(result.SkippedYears), len(result.Fills))
}

// splitStations parses the -stations flag value, dropping empty entries.
func splitStations(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// promptStations interactively asks for the station count and names, the way
// the processing run was driven before flags existed. Invalid input is
// reported and re-prompted.
func promptStations(in io.Reader, out io.Writer) ([]string, error) {
	reader := bufio.NewReader(in)

	var count int
	for {
		fmt.Fprint(out, "How many stations? ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading station count: %w", err)
		}

		count, err = strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(out, "Invalid input! Please enter a valid integer for the number of stations.")
			continue
		}
		if count <= 0 {
			fmt.Fprintln(out, "Please enter a positive number of stations.")
			continue
		}
		break
	}

	names := make([]string, 0, count)
	fmt.Fprintln(out, "\n--- Please name your stations ---")
	for i := 0; i < count; i++ {
		for {
			fmt.Fprintf(out, "Enter name for Station %d: ", i+1)
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("reading station name %d: %w", i+1, err)
			}

			name := strings.TrimSpace(line)
			if name == "" {
				fmt.Fprintln(out, "Station name cannot be empty. Please enter a valid name.")
				continue
			}
			names = append(names, name)
			break
		}
	}

	return names, nil
}

// printStationTable echoes the confirmed station list; the last station is
// the primary one.
func printStationTable(out io.Writer, names []string) {
	fmt.Fprintln(out, "\n--- Confirmed Stations ---")
	for i, name := range names {
		marker := ""
		if i == len(names)-1 {
			marker = "  (primary)"
		}
		fmt.Fprintf(out, "%3d  %s%s\n", i+1, name, marker)
	}
	fmt.Fprintln(out, "--------------------------")
}
