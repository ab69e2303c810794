package list_packages

import (
	"errors"
	"net/http"

	"github.com/elitejetskis/EJS-BookingService/internal/api/handlers"
	listPackages "github.com/elitejetskis/EJS-BookingService/internal/usecase/list_packages"
)

const msgCatalogUnavailable = "tour packages are temporarily unavailable, please try again or contact us on WhatsApp"

type Handler struct {
	useCase ListPackagesUseCase
	logger  Logger
}

func NewHandler(useCase ListPackagesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packages, err := h.useCase.Execute(r.Context())
	if err != nil {
		// Пустой каталог и недоступное хранилище для клиента неразличимы:
		// синтетические пакеты не подставляются
		if errors.Is(err, listPackages.ErrCatalogUnavailable) {
			h.logger.Error("GET /packages - Catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)
			return
		}

		h.logger.Error("GET /packages - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /packages - Returned %d packages", len(packages))
	handlers.RespondJSON(w, http.StatusOK, FromDomainPackages(packages))
}
