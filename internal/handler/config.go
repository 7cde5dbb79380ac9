package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// GetConfig handles GET /api/config
// @Summary      Get configuration
// @Description  Returns the issuer flags and trust-line setup of the wallet document
// @Tags         config
// @Produce      json
// @Success      200  {object}  model.Envelope{data=model.WalletConfig}
// @Failure      404  {object}  model.Envelope
// @Router       /api/config [get]
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.Config(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, cfg, false)
}

// PutConfig handles PUT /api/config
// @Summary      Write configuration
// @Description  Validates and stores the issuer flags and trust-line setup; stamps configuredAt server-side
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      model.WalletConfig  true  "Configuration"
// @Success      200      {object}  model.Envelope{data=model.WalletConfig}
// @Failure      400      {object}  model.Envelope
// @Failure      404      {object}  model.Envelope
// @Router       /api/config [put]
func (h *Handler) PutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg model.WalletConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		h.respondError(w, r, &xrpl.OpError{Code: model.CodeInvalidRequest, Message: "invalid request body"})
		return
	}

	stored, created, err := h.svc.SetConfig(r.Context(), cfg)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, stored, created)
}
