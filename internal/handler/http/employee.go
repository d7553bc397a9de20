package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/handler/http/middleware"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// Employee ids may contain '/', so they travel as the employee_id query
// parameter rather than a path segment.
const employeeIDParam = "employee_id"

type EmployeeHandler interface {
	// Public registration flow
	LookupForRegistration(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)

	// Self service
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	UpdateMyProfile(w http.ResponseWriter, r *http.Request)

	// Staff directory
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

func requiredEmployeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	employeeID := r.URL.Query().Get(employeeIDParam)
	if validator.IsEmpty(employeeID) {
		response.ValidationError(w, map[string]string{employeeIDParam: "employee_id is required"})
		return "", false
	}
	return employeeID, true
}

// LookupForRegistration implements EmployeeHandler.
func (h *employeeHandlerImpl) LookupForRegistration(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requiredEmployeeID(w, r)
	if !ok {
		return
	}

	resp, err := h.employeeService.LookupForRegistration(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Register implements EmployeeHandler.
func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee registered", "employee_id", resp.EmployeeID)
	response.Created(w, "Registration successful", resp)
}

// GetMyProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetMyProfile(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateMyProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.UpdateMyProfile(r.Context(), middleware.IdentityFrom(r.Context()), req)
	if err != nil {
		slog.Error("UpdateMyProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", resp)
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := employee.EmployeeFilter{Search: query.Get("search")}

	if v := query.Get("registered"); v != "" {
		registered, err := strconv.ParseBool(v)
		if err != nil {
			response.ValidationError(w, map[string]string{"registered": "registered must be true or false"})
			return
		}
		filter.Registered = &registered
	}
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	resp, err := h.employeeService.ListEmployees(r.Context(), middleware.IdentityFrom(r.Context()), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, resp.Employees, response.NewMeta(resp.Page, resp.Limit, resp.TotalItems))
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requiredEmployeeID(w, r)
	if !ok {
		return
	}

	resp, err := h.employeeService.GetEmployee(r.Context(), middleware.IdentityFrom(r.Context()), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requiredEmployeeID(w, r)
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.UpdateEmployee(r.Context(), middleware.IdentityFrom(r.Context()), employeeID, req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", resp)
}

// DeleteAccount implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if !validator.IsValidUUID(accountID) {
		response.NotFound(w, "Account not found")
		return
	}

	identity := middleware.IdentityFrom(r.Context())
	if err := h.employeeService.DeleteAccount(r.Context(), identity, accountID); err != nil {
		slog.Error("DeleteAccount service error", "error", err, "account_id", accountID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Account deleted", "account_id", accountID, "deleted_by", identity.AccountID)
	response.SuccessWithMessage(w, "Account deleted successfully", nil)
}
