package list_packages

import (
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
)

type Handler struct {
	packageService PackageService
	logger         Logger
}

func NewHandler(packageService PackageService, logger Logger) *Handler {
	return &Handler{
		packageService: packageService,
		logger:         logger,
	}
}

// Handle GET /api/v1/packages
// Публичный каталог отдает только активные пакеты, администратор видит все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := !middleware.IsAdmin(r.Context())

	result, err := h.packageService.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /packages - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
