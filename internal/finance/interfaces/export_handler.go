package interfaces

import (
	"bytes"
	"io"
	"log"
	"net/http"
)

type ExportServiceInterface interface {
	WriteCSV(w io.Writer, userID string) error
	Excel(userID string) ([]byte, error)
	PDF(userID string) ([]byte, error)
}

type ExportHandler struct {
	service      ExportServiceInterface
	respondError respondErrorFunc
}

func NewExportHandler(service ExportServiceInterface, respondError respondErrorFunc) *ExportHandler {
	return &ExportHandler{
		service:      service,
		respondError: respondError,
	}
}

func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// buffered so a storage failure can still produce a clean error response
	var buf bytes.Buffer
	if err := h.service.WriteCSV(&buf, userID); err != nil {
		log.Printf("csv export failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	workbook, err := h.service.Excel(userID)
	if err != nil {
		log.Printf("excel export failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	document, err := h.service.PDF(userID)
	if err != nil {
		log.Printf("pdf export failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}
