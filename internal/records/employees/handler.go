package employees

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

// MountRoutes registers the employee routes. Create posts to the singular
// path while reads and id-scoped writes use the plural, matching the
// established API surface.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/employee", h.Create)
	r.Get("/employees", h.List)
	r.Get("/employees/export.csv", h.ExportCSV)
	r.Put("/employees/{id}", h.Update)
	r.Delete("/employees/{id}", h.Delete)
}

type employeePayload struct {
	Name        string `json:"ename"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Phone       string `json:"pnumber"`
	Address     string `json:"address"`
	Designation string `json:"designation"`
	Salary      string `json:"salary"`
	JoiningDate string `json:"joining_date"`
	Aadhar      string `json:"aadhar"`
}

func (p employeePayload) toEmployee() (Employee, error) {
	dob, err := recshared.ParseDate(p.DateOfBirth)
	if err != nil {
		return Employee{}, err
	}
	joined, err := recshared.ParseDate(p.JoiningDate)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		Name:        p.Name,
		DateOfBirth: dob,
		Gender:      p.Gender,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Designation: p.Designation,
		Salary:      p.Salary,
		JoiningDate: joined,
		Aadhar:      p.Aadhar,
	}, nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	employee, err := payload.toEmployee()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if _, err := h.service.Create(r.Context(), employee); err != nil {
		h.logger.Error("create employee failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"msg": "Employee data submitted successfully!"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list employees failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching employees")
		return
	}
	httpx.JSON(w, http.StatusOK, employees)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload employeePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	employee, err := payload.toEmployee()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Update(r.Context(), id, employee); err != nil {
		h.logger.Error("update employee failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Employee updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete employee failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Employee deleted"})
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("export employees failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "Error fetching employees")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)
	streamer := recshared.NewCSVStreamer(w)
	if err := streamer.WriteRow([]string{"Name", "Date of Birth", "Gender", "Email", "Phone", "Address", "Designation", "Salary", "Joining Date", "Aadhar"}); err != nil {
		h.logger.Error("export employees header", "error", err)
		return
	}
	for _, e := range employees {
		row := []string{
			e.Name,
			e.DateOfBirth.Format("2006-01-02"),
			e.Gender,
			e.Email,
			e.Phone,
			e.Address,
			e.Designation,
			e.Salary,
			e.JoiningDate.Format("2006-01-02"),
			e.Aadhar,
		}
		if err := streamer.WriteRow(row); err != nil {
			h.logger.Error("export employees row", "error", err)
			return
		}
	}
	if err := streamer.Close(); err != nil {
		h.logger.Error("export employees flush", "error", err)
	}
}
