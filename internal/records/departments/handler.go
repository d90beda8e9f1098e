package departments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workdesk/workdesk/internal/platform/httpx"
	recshared "github.com/workdesk/workdesk/internal/records/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the department routes. Create posts to the singular
// path while reads and id-scoped writes use the plural, matching the
// established API surface.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/department", h.Create)
	r.Get("/departments", h.List)
	r.Get("/departments/export.csv", h.ExportCSV)
	r.Put("/departments/{id}", h.Update)
	r.Delete("/departments/{id}", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var department Department
	if err := httpx.DecodeJSON(r, &department); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if _, err := h.service.Create(r.Context(), department); err != nil {
		h.logger.Error("create department failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"msg": "Department data submitted successfully!"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list departments failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching departments")
		return
	}
	httpx.JSON(w, http.StatusOK, departments)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var department Department
	if err := httpx.DecodeJSON(r, &department); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.service.Update(r.Context(), id, department); err != nil {
		h.logger.Error("update department failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Department updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete department failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Department deleted"})
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("export departments failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching departments")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="departments.csv"`)
	streamer := recshared.NewCSVStreamer(w)
	if err := streamer.WriteRow([]string{"Name", "Email", "Number", "Employees", "Responsible", "Budget", "Status", "Description"}); err != nil {
		h.logger.Error("export departments header", "error", err)
		return
	}
	for _, d := range departments {
		row := []string{d.Name, d.Email, d.Number, d.Employees, d.Responsible, d.Budget, d.Status, d.Description}
		if err := streamer.WriteRow(row); err != nil {
			h.logger.Error("export departments row", "error", err)
			return
		}
	}
	if err := streamer.Close(); err != nil {
		h.logger.Error("export departments flush", "error", err)
	}
}
