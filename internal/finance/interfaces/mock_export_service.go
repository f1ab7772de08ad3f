package interfaces

import (
	"errors"
	"io"
)

type MockExportService struct {
	csv        string
	excel      []byte
	pdf        []byte
	shouldFail bool
}

func (m *MockExportService) WriteCSV(w io.Writer, userID string) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	_, err := io.WriteString(w, m.csv)
	return err
}

func (m *MockExportService) Excel(userID string) ([]byte, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	return m.excel, nil
}

func (m *MockExportService) PDF(userID string) ([]byte, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	return m.pdf, nil
}
