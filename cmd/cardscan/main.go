// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cardscan CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardscan/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cardscan CLI.
var rootCmd = &cobra.Command{
	Use:   "cardscan",
	Short: "Extract contact records from business card images",
	Long: `cardscan turns business card images into structured contact records.
Recognized text is classified into name, organization, position, email,
phone, website, and address fields, and every scan lands in a local
history store.

Scan a card with "cardscan scan", browse and edit past scans with
"cardscan history", and move records in and out as CSV or vCard with
"cardscan contacts".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cardscan.yaml or ~/.config/cardscan/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cardscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cardscan"))
		}
	}

	viper.SetEnvPrefix("CARDSCAN")
	viper.AutomaticEnv()

	viper.SetDefault("ocr.engine", string(types.EngineTesseract))
	viper.SetDefault("ocr.language", string(types.LangEnglish))
	viper.SetDefault("ocr.timeout", 60*time.Second)
	viper.SetDefault("ocr.user_agent", "cardscan/"+version)
	viper.SetDefault("ocr.max_retries", 3)
	viper.SetDefault("history.dir", "history")
	viper.SetDefault("history.backend", string(types.BackendFile))
	viper.SetDefault("export.dir", ".")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ocrConfig assembles the recognition config from viper.
func ocrConfig() types.OCRConfig {
	return types.OCRConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("ocr.timeout"),
			UserAgent: viper.GetString("ocr.user_agent"),
		},
		Engine:     types.OCREngine(viper.GetString("ocr.engine")),
		Language:   viper.GetString("ocr.language"),
		RemoteURL:  viper.GetString("ocr.remote_url"),
		MaxRetries: viper.GetInt("ocr.max_retries"),
	}
}

// historyConfig assembles the history store config from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:     viper.GetString("history.dir"),
		Backend: types.HistoryBackend(viper.GetString("history.backend")),
	}
}

// langFromConfig resolves the configured recognizer language.
func langFromConfig() types.Language {
	return types.ParseLanguage(viper.GetString("ocr.language"))
}

// exportConfig assembles the export config from viper.
func exportConfig() types.ExportConfig {
	return types.ExportConfig{
		Dir: viper.GetString("export.dir"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
