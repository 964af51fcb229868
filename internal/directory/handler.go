package directory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"directory/internal/loadlog"
	"directory/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// --- Web Handlers ---

// HomePage handles GET /. Each request runs its own load, and every card
// carries its raw JSON from that load. ?raw=expanded opens the raw blocks.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	res := h.svc.Load(r.Context())
	view := PageView(res, h.svc.Intro(), ParseRawState(r.URL.Query().Get("raw")))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.DirectoryPage(view).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render directory page", "error", err)
	}
}

// --- REST API Handlers ---

// DirectoryResponse is the body of GET /api/directory.
type DirectoryResponse struct {
	LoadID string        `json:"loadId"`
	Users  int           `json:"users"`
	Albums int           `json:"albums"`
	Cards  []CardPayload `json:"cards"`
}

// GetDirectory handles GET /api/directory
func (h *Handler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	res := h.svc.Load(r.Context())
	if !res.OK() {
		h.jsonError(w, StatusLoadFailed, http.StatusBadGateway)
		return
	}

	h.jsonResponse(w, NewDirectoryResponse(res), http.StatusOK)
}

// NewDirectoryResponse flattens a successful result.
func NewDirectoryResponse(res Result) DirectoryResponse {
	out := DirectoryResponse{
		LoadID: res.LoadID,
		Cards:  make([]CardPayload, len(res.Cards)),
	}
	if res.Users != nil {
		out.Users = *res.Users
	}
	if res.Albums != nil {
		out.Albums = *res.Albums
	}
	for i, c := range res.Cards {
		out.Cards[i] = c.Payload()
	}
	return out
}

// ListLoads handles GET /api/loads
func (h *Handler) ListLoads(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.RecentLoads(r.Context(), h.parseInt(r.URL.Query().Get("limit"), 20))
	if err != nil {
		h.log.Error("failed to list loads", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []*loadlog.Record{}
	}

	h.jsonResponse(w, recs, http.StatusOK)
}

// GetLoad handles GET /api/loads/{id}
func (h *Handler) GetLoad(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.jsonError(w, "load ID required", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.GetLoad(r.Context(), id)
	if errors.Is(err, loadlog.ErrLoadNotFound) {
		h.jsonError(w, "load not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get load", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, rec, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) parseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
