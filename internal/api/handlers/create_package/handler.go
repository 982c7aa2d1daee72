package create_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пакета"
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

// Handle POST /api/v1/admin/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.packageService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("POST /admin/packages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/packages - Failed to create package: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
