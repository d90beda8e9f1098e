package projects

import (
	"log/slog"
	"net/http"
	"time"

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

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/export.csv", h.ExportCSV)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

type projectPayload struct {
	Name        string `json:"pname"`
	Client      string `json:"cname"`
	Manager     string `json:"pmanager"`
	StartDate   string `json:"sdate"`
	EndDate     string `json:"edate"`
	Status      string `json:"status"`
	Description string `json:"pdescription"`
}

func (p projectPayload) toProject() (Project, error) {
	start, err := recshared.ParseDate(p.StartDate)
	if err != nil {
		return Project{}, err
	}
	var end time.Time
	if p.EndDate != "" {
		end, err = recshared.ParseDate(p.EndDate)
		if err != nil {
			return Project{}, err
		}
	}
	return Project{
		Name:        p.Name,
		Client:      p.Client,
		Manager:     p.Manager,
		StartDate:   start,
		EndDate:     end,
		Status:      p.Status,
		Description: p.Description,
	}, nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	project, err := payload.toProject()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if _, err := h.service.Create(r.Context(), project); err != nil {
		h.logger.Error("create project failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"msg": "Project created successfully!"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list projects failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching projects")
		return
	}
	httpx.JSON(w, http.StatusOK, projects)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload projectPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	project, err := payload.toProject()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Update(r.Context(), id, project); err != nil {
		h.logger.Error("update project failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Project updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete project failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Project deleted"})
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("export projects failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching projects")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="projects.csv"`)
	streamer := recshared.NewCSVStreamer(w)
	if err := streamer.WriteRow([]string{"Project", "Client", "Manager", "Start Date", "End Date", "Status", "Description"}); err != nil {
		h.logger.Error("export projects header", "error", err)
		return
	}
	for _, p := range projects {
		end := ""
		if !p.EndDate.IsZero() {
			end = p.EndDate.Format("2006-01-02")
		}
		row := []string{
			p.Name,
			p.Client,
			p.Manager,
			p.StartDate.Format("2006-01-02"),
			end,
			p.Status,
			p.Description,
		}
		if err := streamer.WriteRow(row); err != nil {
			h.logger.Error("export projects row", "error", err)
			return
		}
	}
	if err := streamer.Close(); err != nil {
		h.logger.Error("export projects flush", "error", err)
	}
}
