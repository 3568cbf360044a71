// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardscan/internal/extract"
	"github.com/pdiddy/cardscan/internal/ocr"
	"github.com/pdiddy/cardscan/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Recognize a business card image and extract its contact record",
	Long: `Scan validates the image (PNG or JPEG, 10 MB max), runs text
recognition, classifies the recognized lines into contact fields, and
adds the result to the scan history. Recognition progress goes to
stderr; the extracted record goes to stdout.

The recognizer language defaults to English; pass --lang hin or
--lang mar for Hindi or Marathi cards. Unknown codes fall back to
English.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if err := extract.ValidateImage(filepath.Base(path), info.Size()); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	cfg := ocrConfig()
	if langFlag, _ := cmd.Flags().GetString("lang"); langFlag != "" {
		cfg.Language = langFlag
	}
	lang := types.ParseLanguage(cfg.Language)

	engine, err := ocr.New(cfg)
	if err != nil {
		return err
	}

	progress := func(percent int) {
		fmt.Fprintf(os.Stderr, "\rRecognizing (%s)... %3d%%", engine.Name(), percent)
	}
	result, err := engine.Recognize(context.Background(), data, lang, progress)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	record := extract.Extract(result.Text, result.Confidence)

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item, err := store.Add(record, base64.StdEncoding.EncodeToString(data), lang)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved to history as %s\n", item.ID)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}
	printRecord(os.Stdout, item.Contact)
	return nil
}

func init() {
	scanCmd.Flags().String("lang", "", "recognizer language: eng, hin, or mar (default from config)")
	scanCmd.Flags().Bool("json", false, "output the saved history item as JSON")

	rootCmd.AddCommand(scanCmd)
}
