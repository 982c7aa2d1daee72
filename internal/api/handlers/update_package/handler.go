package update_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пакета"
	msgPackageNotFound    = "пакет не найден"
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

// Handle PUT /api/v1/admin/packages/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.packageService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("PUT /admin/packages/{id} - Invalid input: id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/packages/{id} - Failed to update package: id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
