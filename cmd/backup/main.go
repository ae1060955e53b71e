package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"studyquest/internal/config"
	"studyquest/internal/storage"
)

// backupKeys is the set of records the tool exports and imports.
var backupKeys = []string{
	storage.KeyUserProfile,
	storage.KeyStudyProgress,
	storage.KeyGameScores,
	storage.KeyUserStats,
	storage.KeyOnboardingCompleted,
}

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Open storage backend
	backend, err := storage.OpenBackend(cfg.DatabaseType, cfg.DatabasePath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	defer backend.Close()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backend, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backend, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backend storage.Backend, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	dump := make(map[string]json.RawMessage)
	for _, key := range backupKeys {
		value, found, err := backend.Get(key)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", key, err)
		}
		if found {
			dump[key] = json.RawMessage(value)
		}
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode backup: %v", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write backup file: %v", err)
	}

	log.Printf("Export complete: %s (%d records, %d bytes)", outputPath, len(dump), len(data))
}

func handleImport(backend storage.Backend, inputPath string, clearData bool) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err != nil {
		log.Fatalf("Failed to parse backup file: %v", err)
	}

	if clearData {
		fmt.Print("WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}

		log.Println("Clearing existing data...")
		for _, key := range backupKeys {
			if err := backend.Delete(key); err != nil {
				log.Fatalf("Failed to clear %s: %v", key, err)
			}
		}
	}

	imported := 0
	for _, key := range backupKeys {
		value, found := dump[key]
		if !found {
			continue
		}
		if err := backend.Set(key, value); err != nil {
			log.Fatalf("Failed to write %s: %v", key, err)
		}
		imported++
	}

	log.Printf("Import complete: %d records", imported)
}

func printUsage() {
	fmt.Println("StudyQuest Data Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export application data to JSON file")
	fmt.Println("  backup import [options]    Import application data from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./studyquest.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
}
