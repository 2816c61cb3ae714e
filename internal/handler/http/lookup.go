package http

import (
	"net/http"

	"github.com/veritime/attend-backend-go/internal/handler/http/response"
	"github.com/veritime/attend-backend-go/internal/service/master"
)

// LookupHandler serves the master-data dropdowns behind the report filters.
type LookupHandler interface {
	Branches(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Devices(w http.ResponseWriter, r *http.Request)
	Shifts(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
}

type lookupHandlerImpl struct {
	lookupService *master.LookupService
}

func NewLookupHandler(lookupService *master.LookupService) LookupHandler {
	return &lookupHandlerImpl{
		lookupService: lookupService,
	}
}

// Branches handles GET /lookups/branches
func (h *lookupHandlerImpl) Branches(w http.ResponseWriter, r *http.Request) {
	result, err := h.lookupService.ActiveBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Departments handles GET /lookups/departments
func (h *lookupHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.lookupService.ActiveDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Devices handles GET /lookups/devices
func (h *lookupHandlerImpl) Devices(w http.ResponseWriter, r *http.Request) {
	result, err := h.lookupService.ActiveDevices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Shifts handles GET /lookups/shifts
func (h *lookupHandlerImpl) Shifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.lookupService.ActiveShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Employees handles GET /lookups/employees
func (h *lookupHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := queryInt64Ptr(r, "department_id")
	if !ok {
		response.BadRequest(w, "invalid department_id parameter", nil)
		return
	}

	result, err := h.lookupService.ActiveEmployees(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
