package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	GetOvertime(w http.ResponseWriter, r *http.Request)
	CreateOvertime(w http.ResponseWriter, r *http.Request)
	UpdateOvertime(w http.ResponseWriter, r *http.Request)
	DeleteOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertimes(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

func (h *overtimeHandlerImpl) GetOvertime(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Overtime ID is required", "Overtime entry not found")
	if !ok {
		return
	}

	result, err := h.overtimeService.GetOvertime(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.CreateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime entry created successfully", result)
}

func (h *overtimeHandlerImpl) UpdateOvertime(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Overtime ID is required", "Overtime entry not found")
	if !ok {
		return
	}

	var req overtime.UpdateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.overtimeService.UpdateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime entry updated successfully", result)
}

func (h *overtimeHandlerImpl) DeleteOvertime(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Overtime ID is required", "Overtime entry not found")
	if !ok {
		return
	}

	if err := h.overtimeService.DeleteOvertime(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime entry deleted successfully", nil)
}

func (h *overtimeHandlerImpl) ListOvertimes(w http.ResponseWriter, r *http.Request) {
	filter := overtime.OvertimeFilter{}
	filter.Page, filter.Limit = pageParams(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.overtimeService.ListOvertimes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
