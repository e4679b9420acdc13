package api

import (
	"net/http"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/derive"
)

// CatalogHandler serves the static content catalog: companion profiles
// and the level table. These never change at runtime, so the handlers
// are plain reads with no service behind them.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCompanions handles GET /api/companions requests.
func (h *CatalogHandler) GetCompanions(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.Companions())
}

// GetLevels handles GET /api/levels requests.
func (h *CatalogHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, derive.Levels())
}
