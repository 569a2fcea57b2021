package handler

import (
	"errors"
	"net/http"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// MenuHandler serves the static per-vendor menus and the vendor selection.
type MenuHandler struct {
	catalog repositories.CatalogRepositoryInterface
	session repositories.SessionRepositoryInterface
	logger  *logger.Logger
}

// NewMenuHandler creates a new MenuHandler with the given repositories and logger
func NewMenuHandler(catalog repositories.CatalogRepositoryInterface, session repositories.SessionRepositoryInterface, log *logger.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		session: session,
		logger:  log.WithComponent("menu_handler"),
	}
}

// GetMenu handles GET /api/v1/menu — the active vendor's catalog.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.session.Vendor(r.Context())
	if err != nil || vendor == "" {
		vendor = repositories.DefaultVendor
	}

	items, err := h.catalog.Menu(vendor)
	if err != nil {
		h.logger.Warn("Menu requested for unknown vendor", "vendor", vendor, "error", err)
		writeErrorResponse(w, http.StatusNotFound, "Vendor not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"vendor": vendor,
		"items":  items,
	})
}

// GetVendors handles GET /api/v1/menu/vendors
func (h *MenuHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.catalog.Vendors())
}

type selectVendorRequest struct {
	Vendor string `json:"vendor"`
}

// SelectVendor handles POST /api/v1/menu/vendor — the concession-selection
// step upstream of the menu.
func (h *MenuHandler) SelectVendor(w http.ResponseWriter, r *http.Request) {
	var req selectVendorRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid vendor selection body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.catalog.Menu(req.Vendor); err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Vendor not found")
			return
		}
		h.logger.Error("Vendor lookup failed", "vendor", req.Vendor, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Vendor lookup failed")
		return
	}

	if err := h.session.SetVendor(r.Context(), req.Vendor); err != nil {
		h.logger.Error("Failed to store vendor selection", "vendor", req.Vendor, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to store selection")
		return
	}

	writeJSONResponse(w, http.StatusNoContent, nil)
}
