// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardscan/internal/contactio"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Import and export contact records (CSV, vCard)",
	Long: `Contacts moves records in and out of the history store. Import reads
a CSV file with a header row and adds every valid row as a history
item. Export writes all history contacts as CSV, or a single record
as a vCard.`,
}

// --- import subcommand ---

var contactsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import contacts from a CSV file into the history",
	Long: `Import parses a CSV file and adds every valid row to the history as
an imported contact. The header must contain a name, email, or phone
column; rows missing all mapped fields are skipped. Imports are
all-or-nothing: a file with more than 50 valid rows is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactsImport,
}

func runContactsImport(cmd *cobra.Command, args []string) error {
	records, err := contactio.ImportFile(args[0])
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	items, err := store.BulkAdd(records, langFromConfig())
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d contact(s).\n", len(items))
	return nil
}

// --- export subcommand ---

var contactsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all history contacts as CSV",
	RunE:  runContactsExport,
}

func runContactsExport(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	contacts := store.Contacts()
	if len(contacts) == 0 {
		return fmt.Errorf("no contacts to export")
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = filepath.Join(exportConfig().Dir, contactio.CSVFilename(time.Now()))
	}

	csv := contactio.ExportCSV(contacts)
	if err := os.WriteFile(outPath, []byte(csv+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("Exported %d contact(s) to %s\n", len(contacts), outPath)
	return nil
}

// --- vcard subcommand ---

var contactsVCardCmd = &cobra.Command{
	Use:   "vcard <id>",
	Short: "Export one history record as a vCard",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsVCard,
}

func runContactsVCard(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item, ok := findItem(store, args[0])
	if !ok {
		return fmt.Errorf("no history item with id %s", args[0])
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = filepath.Join(exportConfig().Dir, contactio.VCardFilename(time.Now()))
	}

	vcard := contactio.ExportVCard(item.Contact)
	if err := os.WriteFile(outPath, []byte(vcard+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing vcard file: %w", err)
	}
	fmt.Printf("Exported %s to %s\n", item.ID, outPath)
	return nil
}

func init() {
	contactsExportCmd.Flags().StringP("output", "o", "", "output file (default: contacts_<timestamp>.csv in the export dir)")
	contactsVCardCmd.Flags().StringP("output", "o", "", "output file (default: contact_<timestamp>.vcf in the export dir)")

	contactsCmd.AddCommand(contactsImportCmd)
	contactsCmd.AddCommand(contactsExportCmd)
	contactsCmd.AddCommand(contactsVCardCmd)

	rootCmd.AddCommand(contactsCmd)
}
