package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"timesheet/internal/adapters/impexp"
	"timesheet/internal/domain"
)

type inspectReport struct {
	File    string         `json:"file"`
	Rows    int            `json:"rows"`
	Entries []domain.Entry `json:"entries"`
}

func newInspectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Parse a workbook the way an import would and print the entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.loadFileConfig(cmd); err != nil {
				return err
			}

			report, err := inspectWorkbook(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}
}

func inspectWorkbook(ctx context.Context, path string) (inspectReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return inspectReport{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows, err := impexp.NewSpreadsheetReader().ReadRows(ctx, filepath.Base(path), file)
	if err != nil {
		return inspectReport{}, fmt.Errorf("parse workbook: %w", domain.NewImportParseError(err))
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.NewImportedEntry(row))
	}
	return inspectReport{File: path, Rows: len(rows), Entries: entries}, nil
}
