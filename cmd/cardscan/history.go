// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardscan/internal/contactio"
	"github.com/pdiddy/cardscan/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse, edit, and export the scan history",
	Long: `History manages the local scan history. Every scan and import lands
here, newest first. Use subcommands to list items, show or edit a
single record, delete items, or export the full history.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history items, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	items := store.Items()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-25s  %-8s  %-19s  %s\n",
		"ID", "Name", "Language", "Scanned", "File")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, item := range items {
		name := item.Contact.Name
		if name == "" {
			name = "(no name)"
		}
		if len(name) > 25 {
			name = name[:22] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-25s  %-8s  %-19s  %s\n",
			item.ID, name, item.Language.DisplayName(),
			item.Timestamp.Format("2006-01-02 15:04:05"), item.Filename)
	}

	fmt.Fprintf(os.Stdout, "\n%d item(s)\n", len(items))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one history record",
	Long: `Show prints the contact record for one history item. Use --json for
the full item, or --csv for a single-record CSV suitable for
spreadsheet import.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item, ok := findItem(store, args[0])
	if !ok {
		return fmt.Errorf("no history item with id %s", args[0])
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}
	if csvOutput, _ := cmd.Flags().GetBool("csv"); csvOutput {
		fmt.Println(contactio.ExportCSV([]types.ContactRecord{item.Contact}))
		return nil
	}

	printRecord(os.Stdout, item.Contact)
	return nil
}

// --- delete subcommand ---

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a history item",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	deleted, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("No history item with id %s.\n", args[0])
		return nil
	}
	fmt.Printf("Deleted %s.\n", args[0])
	return nil
}

// --- edit subcommand ---

var historyEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a history record",
	Long: `Edit replaces contact fields on one history item. Only flags you set
change; pass an empty value to clear a field. Leading and trailing
whitespace is trimmed.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryEdit,
}

// editableFields maps edit flags onto contact record fields.
var editableFields = []struct {
	flag   string
	target func(r *types.ContactRecord) *string
}{
	{"name", func(r *types.ContactRecord) *string { return &r.Name }},
	{"organization", func(r *types.ContactRecord) *string { return &r.Organization }},
	{"position", func(r *types.ContactRecord) *string { return &r.Position }},
	{"email", func(r *types.ContactRecord) *string { return &r.Email }},
	{"phone", func(r *types.ContactRecord) *string { return &r.Phone }},
	{"website", func(r *types.ContactRecord) *string { return &r.Website }},
	{"address", func(r *types.ContactRecord) *string { return &r.Address }},
}

func runHistoryEdit(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	item, ok := findItem(store, args[0])
	if !ok {
		return fmt.Errorf("no history item with id %s", args[0])
	}

	record := item.Contact
	changed := false
	for _, f := range editableFields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(f.flag)
		*f.target(&record) = strings.TrimSpace(value)
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to edit: set at least one field flag")
	}

	if _, err := store.Edit(item.ID, record); err != nil {
		return err
	}
	printRecord(os.Stdout, record)
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full history to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(out); err != nil {
			return err
		}
	case "json":
		if err := store.ExportJSON(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if outPath != "" {
		fmt.Printf("Exported %d item(s) to %s\n", store.Len(), outPath)
	}
	return nil
}

func init() {
	historyListCmd.Flags().Bool("json", false, "output items as JSON")

	historyShowCmd.Flags().Bool("json", false, "output the full item as JSON")
	historyShowCmd.Flags().Bool("csv", false, "output the record as single-row CSV")

	for _, f := range editableFields {
		historyEditCmd.Flags().String(f.flag, "", "set the "+f.flag+" field")
	}

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyEditCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
