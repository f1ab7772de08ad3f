package application

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"

	"github.com/mwielgosz/SpendTracker/assets"
	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

const exportDateLayout = "2006-01-02"

// ExportService renders the user's full transaction history (never period
// filtered) as CSV, Excel or PDF.
type ExportService struct {
	expenseRepo domain.ExpenseRepository
	incomeRepo  domain.IncomeRepository
}

func NewExportService(expenseRepo domain.ExpenseRepository, incomeRepo domain.IncomeRepository) *ExportService {
	return &ExportService{expenseRepo: expenseRepo, incomeRepo: incomeRepo}
}

func (s *ExportService) history(userID string) ([]domain.Income, []domain.Expense, error) {
	incomes, err := s.incomeRepo.FindByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseRepo.FindByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}

// WriteCSV streams a flat listing of every transaction: incomes first, then
// expenses, one row each with a type column.
func (s *ExportService) WriteCSV(w io.Writer, userID string) error {
	incomes, expenses, err := s.history(userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Type", "Date", "Category/Source", "Amount", "Description"}); err != nil {
		return fmt.Errorf("could not write csv header: %v", err)
	}
	for _, income := range incomes {
		record := []string{
			"Income",
			income.Date.Format(exportDateLayout),
			income.Source,
			strconv.FormatFloat(income.Amount, 'f', -1, 64),
			income.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write csv record: %v", err)
		}
	}
	for _, expense := range expenses {
		record := []string{
			"Expense",
			expense.Date.Format(exportDateLayout),
			expense.Category,
			strconv.FormatFloat(expense.Amount, 'f', -1, 64),
			expense.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write csv record: %v", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Excel builds a workbook with an Incomes sheet and an Expenses sheet.
func (s *ExportService) Excel(userID string) ([]byte, error) {
	incomes, expenses, err := s.history(userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	incomeSheet := "Incomes"
	f.SetSheetName("Sheet1", incomeSheet)
	if err := writeSheetRow(f, incomeSheet, 1, []interface{}{"Date", "Source", "Amount", "Description"}); err != nil {
		return nil, err
	}
	for i, income := range incomes {
		row := []interface{}{income.Date.Format(exportDateLayout), income.Source, income.Amount, income.Description}
		if err := writeSheetRow(f, incomeSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	expenseSheet := "Expenses"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		return nil, fmt.Errorf("could not create expense sheet: %v", err)
	}
	if err := writeSheetRow(f, expenseSheet, 1, []interface{}{"Date", "Category", "Amount", "Description"}); err != nil {
		return nil, err
	}
	for i, expense := range expenses {
		row := []interface{}{expense.Date.Format(exportDateLayout), expense.Category, expense.Amount, expense.Description}
		if err := writeSheetRow(f, expenseSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("could not write workbook: %v", err)
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("could not compute cell name: %v", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("could not write sheet row: %v", err)
	}
	return nil
}

// PDF renders the same listing as a simple table.
func (s *ExportService) PDF(userID string) ([]byte, error) {
	incomes, expenses, err := s.history(userID)
	if err != nil {
		return nil, err
	}

	regular, err := assets.FontsFS.ReadFile("fonts/DejaVuSans.ttf")
	if err != nil {
		return nil, fmt.Errorf("could not read font: %v", err)
	}
	bold, err := assets.FontsFS.ReadFile("fonts/DejaVuSans-Bold.ttf")
	if err != nil {
		return nil, fmt.Errorf("could not read font: %v", err)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFontData("DejaVuSans", regular); err != nil {
		return nil, fmt.Errorf("could not load font: %v", err)
	}
	if err := pdf.AddTTFFontData("DejaVuSans-Bold", bold); err != nil {
		return nil, fmt.Errorf("could not load font: %v", err)
	}
	pdf.AddPage()

	columns := []float64{70, 90, 120, 80, 175}
	writeRow := func(values []string, font string, size float64) error {
		if err := pdf.SetFont(font, "", size); err != nil {
			return err
		}
		x := 30.0
		y := pdf.GetY()
		for i, value := range values {
			pdf.SetXY(x, y)
			if err := pdf.Cell(nil, value); err != nil {
				return fmt.Errorf("could not write pdf cell: %v", err)
			}
			x += columns[i]
		}
		pdf.SetXY(30, y+18)
		if pdf.GetY() > 800 {
			pdf.AddPage()
			pdf.SetXY(30, 30)
		}
		return nil
	}

	pdf.SetXY(30, 30)
	if err := pdf.SetFont("DejaVuSans-Bold", "", 16); err != nil {
		return nil, fmt.Errorf("could not set font: %v", err)
	}
	if err := pdf.Cell(nil, "Transaction History"); err != nil {
		return nil, fmt.Errorf("could not write pdf title: %v", err)
	}
	pdf.SetXY(30, 60)

	header := []string{"Type", "Date", "Category/Source", "Amount", "Description"}
	if err := writeRow(header, "DejaVuSans-Bold", 11); err != nil {
		return nil, err
	}
	for _, income := range incomes {
		row := []string{"Income", income.Date.Format(exportDateLayout), income.Source, formatAmount(income.Amount), income.Description}
		if err := writeRow(row, "DejaVuSans", 10); err != nil {
			return nil, err
		}
	}
	for _, expense := range expenses {
		row := []string{"Expense", expense.Date.Format(exportDateLayout), expense.Category, formatAmount(expense.Amount), expense.Description}
		if err := writeRow(row, "DejaVuSans", 10); err != nil {
			return nil, err
		}
	}

	return pdf.GetBytesPdf(), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
