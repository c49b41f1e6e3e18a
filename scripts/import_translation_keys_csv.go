// scripts/import_translation_keys_csv.go
package main

import (
	"LocalizationAPI/config"
	"LocalizationAPI/isotime"
	"LocalizationAPI/models"
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("Error loading .env file:", err)
		// Keep going, the environment may already be set
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Println("Error getting working directory:", err)
		os.Exit(1)
	}

	csvPath := filepath.Join(dir, "translation_keys.csv")
	fmt.Printf("Looking for CSV file at: %s\n", csvPath)

	file, err := os.Open(csvPath)
	if err != nil {
		fmt.Println("Error opening file:", err)
		// Try the scripts subdirectory as well
		csvPath = filepath.Join(dir, "scripts", "translation_keys.csv")
		fmt.Printf("Trying path: %s\n", csvPath)

		file, err = os.Open(csvPath)
		if err != nil {
			fmt.Println("File not found. Check the CSV file path.")
			os.Exit(1)
		}
	}
	defer file.Close()
	fmt.Println("CSV file opened successfully.")

	scanner := bufio.NewScanner(file)

	// The header row names the columns: key, category, description, then one
	// column per language code
	if !scanner.Scan() {
		fmt.Println("CSV file is empty.")
		os.Exit(1)
	}
	header := parseCSVLine(scanner.Text())
	if len(header) < 3 {
		fmt.Println("Header must name at least key, category and description columns.")
		os.Exit(1)
	}
	languages := make([]string, 0, len(header)-3)
	for _, lang := range header[3:] {
		languages = append(languages, strings.TrimSpace(cleanQuotes(lang)))
	}
	fmt.Printf("Languages in file: %s\n", strings.Join(languages, ", "))

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	fmt.Println("Connecting to database...")
	config.InitDatabase(cfg)
	db := config.DB

	created := 0
	updated := 0

	for scanner.Scan() {
		line := scanner.Text()
		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := parseCSVLine(line)
		if len(parts) < 3 {
			fmt.Println("Row has too few columns:", line)
			continue
		}

		key := cleanQuotes(parts[0])
		category := cleanQuotes(parts[1])
		description := cleanQuotes(parts[2])
		if key == "" {
			fmt.Println("Row has an empty key, skipping:", line)
			continue
		}

		// Collect the per-language values, stamping each entry
		translations := models.TranslationMap{}
		now := isotime.Now()
		for i, lang := range languages {
			col := 3 + i
			if col >= len(parts) {
				break
			}
			value := cleanQuotes(parts[col])
			if value == "" {
				continue
			}
			translations[lang] = models.Translation{
				Value:     value,
				UpdatedAt: now,
				UpdatedBy: "csv-import",
			}
		}

		// Save or update the record, matching by key
		var existing models.TranslationKey
		result := db.Where("key = ?", key).First(&existing)
		if result.Error != nil {
			record := models.TranslationKey{
				Key:          key,
				Category:     category,
				Translations: translations,
			}
			if description != "" {
				record.Description = &description
			}
			if err := db.Create(&record).Error; err != nil {
				fmt.Printf("Error creating key '%s': %v\n", key, err)
				continue
			}
			fmt.Printf("Created key '%s'\n", key)
			created++
		} else {
			fields := map[string]interface{}{
				"category":     category,
				"translations": translations,
			}
			if description != "" {
				fields["description"] = description
			}
			if err := db.Model(&existing).Updates(fields).Error; err != nil {
				fmt.Printf("Error updating key '%s': %v\n", key, err)
				continue
			}
			fmt.Printf("Updated key '%s'\n", key)
			updated++
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Println("Error reading file:", err)
	}

	fmt.Printf("\nImport finished. Created: %d, updated: %d\n", created, updated)
}

// parseCSVLine splits a CSV line by hand, honoring quoted fields and escaped
// quotes
func parseCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		char := line[i]

		if char == '"' {
			// Doubled quotes inside a quoted field stand for a literal quote
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
			continue
		}

		// A comma outside quotes separates fields
		if char == ',' && !inQuotes {
			result = append(result, current.String())
			current.Reset()
			continue
		}

		current.WriteByte(char)
	}

	result = append(result, current.String())
	return result
}

// cleanQuotes strips surrounding quotes from a field
func cleanQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
