package http

import (
	"encoding/json"
	"net/http"

	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkSynced(w http.ResponseWriter, r *http.Request)
	MarkProcessed(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// List handles GET /punches
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

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

	filter := punch.ListFilter{
		FromDate:  queryStringPtr(r, "from_date"),
		ToDate:    queryStringPtr(r, "to_date"),
		BranchID:  branchID,
		DeviceID:  deviceID,
		Search:    queryStringPtr(r, "search"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 50),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	result, err := h.punchService.List(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Punches, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// MarkSynced handles POST /punches/mark-synced
func (h *punchHandlerImpl) MarkSynced(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req punch.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := h.punchService.MarkSynced(ctx, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punches marked as synced", nil)
}

// MarkProcessed handles POST /punches/mark-processed
func (h *punchHandlerImpl) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req punch.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := h.punchService.MarkProcessed(ctx, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punches marked as processed", nil)
}
