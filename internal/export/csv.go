// Package export writes a user's transactions to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"github.com/gocarina/gocsv"
)

// Row is one exported transaction.
type Row struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
}

// RowsFromTransactions converts transactions to rows, keeping their order.
// Amounts are written with two decimals.
func RowsFromTransactions(transactions []models.Transaction) []Row {
	rows := make([]Row, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, Row{
			Date:        tx.DateString(),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category.String(),
		})
	}
	return rows
}

// DefaultFileName returns the export file name for a user.
func DefaultFileName(username string) string {
	return username + "_transactions.csv"
}

// Exporter writes CSV with a configurable delimiter.
type Exporter struct {
	Delimiter rune
	logger    logging.Logger
}

// NewExporter creates an Exporter. A zero delimiter means ','.
func NewExporter(delimiter rune, logger logging.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Exporter{Delimiter: delimiter, logger: logger}
}

// Write writes the header and one row per transaction to w.
// It returns apperror.ErrNoTransactions for an empty history.
func (e *Exporter) Write(w io.Writer, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return apperror.ErrNoTransactions
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.Delimiter

	if err := gocsv.MarshalCSV(RowsFromTransactions(transactions), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile writes the transactions to csvFile, creating its directory.
func (e *Exporter) WriteFile(csvFile string, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return apperror.ErrNoTransactions
	}

	e.logger.Info("Writing transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionExportFile) // #nosec G304 -- user-chosen output path
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := e.Write(file, transactions); err != nil {
		e.logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	e.logger.Info("Successfully wrote transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile))
	return nil
}
