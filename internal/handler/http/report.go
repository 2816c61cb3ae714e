package http

import (
	"net/http"

	"github.com/veritime/attend-backend-go/internal/domain/attendance"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/domain/report"
	"github.com/veritime/attend-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Daily present/absent summary
	GetDailySummary(w http.ResponseWriter, r *http.Request)

	// Whole-window per-employee activity
	GetRangeReport(w http.ResponseWriter, r *http.Request)

	// Reconciled per-day attendance rows
	GetAttendanceRows(w http.ResponseWriter, r *http.Request)

	// One employee's reconciled record for a single day
	GetEmployeeDay(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	reconciler    attendance.Reconciler
	punchRepo     punch.PunchRepository
}

func NewReportHandler(reportService report.ReportService, reconciler attendance.Reconciler, punchRepo punch.PunchRepository) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		reconciler:    reconciler,
		punchRepo:     punchRepo,
	}
}

// GetDailySummary handles GET /reports/daily-summary
func (h *reportHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, ok := queryDate(r, "date")
	if !ok {
		response.BadRequest(w, "invalid or missing date parameter", nil)
		return
	}
	branchID, ok := queryInt64Ptr(r, "branch_id")
	if !ok {
		response.BadRequest(w, "invalid branch_id parameter", nil)
		return
	}
	departmentID, ok := queryInt64Ptr(r, "department_id")
	if !ok {
		response.BadRequest(w, "invalid department_id parameter", nil)
		return
	}

	result, err := h.reportService.BuildDailySummary(ctx, report.DailySummaryFilter{
		Date:         date,
		BranchID:     branchID,
		DepartmentID: departmentID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRangeReport handles GET /reports/range
func (h *reportHandlerImpl) GetRangeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fromDate, ok := queryDate(r, "from_date")
	if !ok {
		response.BadRequest(w, "invalid or missing from_date parameter", nil)
		return
	}
	toDate, ok := queryDate(r, "to_date")
	if !ok {
		response.BadRequest(w, "invalid or missing to_date parameter", nil)
		return
	}
	branchID, ok := queryInt64Ptr(r, "branch_id")
	if !ok {
		response.BadRequest(w, "invalid branch_id parameter", nil)
		return
	}
	deviceID, ok := queryInt64Ptr(r, "device_id")
	if !ok {
		response.BadRequest(w, "invalid device_id parameter", nil)
		return
	}
	employeeID, ok := queryInt64Ptr(r, "employee_id")
	if !ok {
		response.BadRequest(w, "invalid employee_id parameter", nil)
		return
	}

	result, err := h.reportService.BuildRangeReport(ctx, report.RangeFilter{
		FromDate:   fromDate,
		ToDate:     toDate,
		BranchID:   branchID,
		DeviceID:   deviceID,
		EmployeeID: employeeID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceRows handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fromDate, ok := queryDate(r, "from_date")
	if !ok {
		response.BadRequest(w, "invalid or missing from_date parameter", nil)
		return
	}
	toDate, ok := queryDate(r, "to_date")
	if !ok {
		response.BadRequest(w, "invalid or missing to_date parameter", nil)
		return
	}
	if toDate.Before(fromDate) {
		response.HandleError(w, report.ErrInvalidDateRange)
		return
	}
	branchID, ok := queryInt64Ptr(r, "branch_id")
	if !ok {
		response.BadRequest(w, "invalid branch_id parameter", nil)
		return
	}
	deviceID, ok := queryInt64Ptr(r, "device_id")
	if !ok {
		response.BadRequest(w, "invalid device_id parameter", nil)
		return
	}

	punches, err := h.punchRepo.GetByDateRange(ctx, fromDate, toDate.AddDate(0, 0, 1), punch.RangeFilter{
		BranchID: branchID,
		DeviceID: deviceID,
		Search:   queryStringPtr(r, "search"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reconciler.BuildRows(ctx, punches)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// GetEmployeeDay handles GET /reports/employee-day
func (h *reportHandlerImpl) GetEmployeeDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	biometricID := r.URL.Query().Get("biometric_id")
	if biometricID == "" {
		response.BadRequest(w, "missing biometric_id parameter", nil)
		return
	}
	date, ok := queryDate(r, "date")
	if !ok {
		response.BadRequest(w, "invalid or missing date parameter", nil)
		return
	}

	punches, err := h.punchRepo.GetByEmployeeAndDate(ctx, biometricID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.reconciler.ReconcileDay(biometricID, date, punches))
}
