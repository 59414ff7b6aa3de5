package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Teller/internal/model"
	"Teller/internal/service"
)

// ClientHandler обслуживает /clients.
type ClientHandler struct {
	clients *service.ClientService
	logger  *zap.SugaredLogger
}

// NewClientHandler конструктор.
func NewClientHandler(clients *service.ClientService, logger *zap.SugaredLogger) *ClientHandler {
	return &ClientHandler{clients: clients, logger: logger}
}

func pageParams(r *http.Request) (pageNum, size int) {
	pageNum, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = 20
	}
	return pageNum, size
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNum, size := pageParams(r)
	clients, total, err := h.clients.List(r.Context(), pageNum, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(clients, total, pageNum, size))
}

func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	pageNum, size := pageParams(r)
	clients, total, err := h.clients.Search(r.Context(), r.URL.Query().Get("q"), pageNum, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(clients, total, pageNum, size))
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid client id")
		return
	}
	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid client id")
		return
	}
	client, err := h.clients.GetWithAccounts(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Client
	if err := decodeJSON(r, &c); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	created, err := h.clients.Create(r.Context(), &c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid client id")
		return
	}
	var c model.Client
	if err := decodeJSON(r, &c); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	updated, err := h.clients.Update(r.Context(), id, &c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if err := h.clients.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "client deleted")
}
