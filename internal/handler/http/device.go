package http

import (
	"net/http"

	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	healthService device.HealthService
}

func NewDeviceHandler(healthService device.HealthService) DeviceHandler {
	return &deviceHandlerImpl{
		healthService: healthService,
	}
}

// Health handles GET /devices/health
func (h *deviceHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	result, err := h.healthService.Health(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
