package delete_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages"
)

const msgPackageNotFound = "пакет не найден"

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

// Handle DELETE /api/v1/admin/packages/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.packageService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("DELETE /admin/packages/{id} - Failed to delete package: id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
