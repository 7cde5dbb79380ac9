package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// GetNFTLog handles GET /api/nft/log
// @Summary      Get NFT event log
// @Description  Returns all recorded NFT ledger events, oldest first
// @Tags         nft
// @Produce      json
// @Success      200  {object}  model.Envelope{data=[]model.NFTEvent}
// @Failure      404  {object}  model.Envelope
// @Router       /api/nft/log [get]
func (h *Handler) GetNFTLog(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.NFTEvents(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, events, false)
}

// AppendNFTEvent handles POST /api/nft/log
// @Summary      Append NFT event
// @Description  Appends one event to the log; the timestamp is stamped server-side
// @Tags         nft
// @Accept       json
// @Produce      json
// @Param        request  body      model.NFTEvent  true  "Event"
// @Success      200      {object}  model.Envelope{data=model.NFTEvent}
// @Failure      400      {object}  model.Envelope
// @Router       /api/nft/log [post]
func (h *Handler) AppendNFTEvent(w http.ResponseWriter, r *http.Request) {
	var ev model.NFTEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		h.respondError(w, r, &xrpl.OpError{Code: model.CodeInvalidRequest, Message: "invalid request body"})
		return
	}

	stored, created, err := h.svc.AppendNFTEvent(r.Context(), ev)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, stored, created)
}
