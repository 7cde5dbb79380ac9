package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// AuthorizeTrustLine handles POST /api/trustline/authorize
// @Summary      Ensure issuer trust-line authorization
// @Description  Checks the holder's trust line toward the issuer and submits one authorizing TrustSet from the issuer when needed
// @Tags         trustline
// @Accept       json
// @Produce      json
// @Param        request  body      model.AuthorizeRequest  true  "Holder address and currency"
// @Success      200      {object}  model.Envelope{data=model.AuthorizeResponse}
// @Failure      422      {object}  model.Envelope
// @Failure      502      {object}  model.Envelope
// @Router       /api/trustline/authorize [post]
func (h *Handler) AuthorizeTrustLine(w http.ResponseWriter, r *http.Request) {
	var req model.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, &xrpl.OpError{Code: model.CodeInvalidRequest, Message: "invalid request body"})
		return
	}

	resp, err := h.svc.EnsureIssuerAuthorization(r.Context(), req.Address, req.Currency)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, resp, false)
}
