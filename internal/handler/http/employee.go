package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
	"github.com/veritime/attend-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)

	AssignShift(w http.ResponseWriter, r *http.Request)
	ListShiftAssignments(w http.ResponseWriter, r *http.Request)
	GetShiftForDate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.EmployeeService
	assignmentService shift.AssignmentService
	shiftResolver     shift.Resolver
}

func NewEmployeeHandler(employeeService employee.EmployeeService, assignmentService shift.AssignmentService, shiftResolver shift.Resolver) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		assignmentService: assignmentService,
		shiftResolver:     shiftResolver,
	}
}

func employeeIDParam(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// Create handles POST /employees
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	departmentID, ok := queryInt64Ptr(r, "department_id")
	if !ok {
		response.BadRequest(w, "invalid department_id parameter", nil)
		return
	}

	result, err := h.employeeService.ListActive(ctx, departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /employees/{id}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	result, err := h.employeeService.Get(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /employees/{id}
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.Update(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate handles DELETE /employees/{id}
func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	if err := h.employeeService.Deactivate(ctx, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated", nil)
}

// AssignShift handles POST /employees/{id}/shift-assignments
func (h *employeeHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.EmployeeID = id

	result, err := h.assignmentService.Assign(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned", result)
}

// ListShiftAssignments handles GET /employees/{id}/shift-assignments
func (h *employeeHandlerImpl) ListShiftAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	result, err := h.assignmentService.ListForEmployee(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetShiftForDate handles GET /employees/{id}/shift
func (h *employeeHandlerImpl) GetShiftForDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	date, ok := queryDate(r, "date")
	if !ok {
		response.BadRequest(w, "invalid or missing date parameter", nil)
		return
	}

	resolved, err := h.shiftResolver.ResolveForDate(ctx, id, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if resolved == nil {
		// No assignment and no default shift: a representable state.
		response.Success(w, nil)
		return
	}

	response.Success(w, mapShiftToResponse(*resolved))
}

func mapShiftToResponse(ws shift.WorkShift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                 ws.ID,
		Name:               ws.Name,
		StartTime:          ws.StartTime.Format("15:04"),
		EndTime:            ws.EndTime.Format("15:04"),
		LateMinutes:        ws.LateMinutes,
		EarlyMinutes:       ws.EarlyMinutes,
		WorkMinutes:        ws.WorkMinutes,
		MinHoursForFullDay: ws.MinHoursForFullDay,
		MaxRegularHours:    ws.MaxRegularHours,
		IsOvernight:        ws.IsOvernight,
	}
}
