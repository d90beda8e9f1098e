package events

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

// MountRoutes registers the event routes on the root router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/events", h.Create)
	r.Get("/events", h.List)
	r.Get("/events/export.csv", h.ExportCSV)
	r.Put("/events/{id}", h.Update)
	r.Delete("/events/{id}", h.Delete)
}

type eventPayload struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Date      string `json:"date"`
	StartTime string `json:"stime"`
	EndTime   string `json:"etime"`
	Type      string `json:"type"`
	Happened  string `json:"happend"`
}

func (p eventPayload) toEvent() (Event, error) {
	date, err := recshared.ParseDate(p.Date)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Name:      p.Name,
		Address:   p.Address,
		Date:      date,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Type:      p.Type,
		Happened:  p.Happened,
	}, nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload eventPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	event, err := payload.toEvent()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if _, err := h.service.Create(r.Context(), event); err != nil {
		h.logger.Error("create event failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"msg": "Event saved successfully"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list events failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching events")
		return
	}
	httpx.JSON(w, http.StatusOK, events)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload eventPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	event, err := payload.toEvent()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Update(r.Context(), id, event); err != nil {
		h.logger.Error("update event failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Event updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete event failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Event deleted"})
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("export events failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching events")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="events.csv"`)
	streamer := recshared.NewCSVStreamer(w)
	if err := streamer.WriteRow([]string{"Name", "Address", "Date", "Start Time", "End Time", "Type", "Happened"}); err != nil {
		h.logger.Error("export events header", "error", err)
		return
	}
	for _, e := range events {
		row := []string{e.Name, e.Address, e.Date.Format("2006-01-02"), e.StartTime, e.EndTime, e.Type, e.Happened}
		if err := streamer.WriteRow(row); err != nil {
			h.logger.Error("export events row", "error", err)
			return
		}
	}
	if err := streamer.Close(); err != nil {
		h.logger.Error("export events flush", "error", err)
	}
}
