package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Teller/internal/service"
)

// StatementHandler обслуживает /statements.
type StatementHandler struct {
	statements *service.StatementService
	logger     *zap.SugaredLogger
}

// NewStatementHandler конструктор.
func NewStatementHandler(statements *service.StatementService, logger *zap.SugaredLogger) *StatementHandler {
	return &StatementHandler{statements: statements, logger: logger}
}

// Download отдаёт PDF-выписку: GET /statements/{number}?debut=...&fin=...
func (h *StatementHandler) Download(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	debut := r.URL.Query().Get("debut")
	fin := r.URL.Query().Get("fin")

	pdf, err := h.statements.Render(r.Context(), number, debut, fin)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="releve_%s_%s_%s.pdf"`, number, debut, fin))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
