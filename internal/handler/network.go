package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/common"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// ListNetworks handles GET /api/networks
// @Summary      List supported networks
// @Description  Returns the static connection profiles of the two supported XRPL deployments
// @Tags         networks
// @Produce      json
// @Success      200  {object}  model.Envelope{data=[]model.NetworkResponse}
// @Router       /api/networks [get]
func (h *Handler) ListNetworks(w http.ResponseWriter, _ *http.Request) {
	infos := client.Networks()
	resp := make([]model.NetworkResponse, 0, len(infos))
	for _, n := range infos {
		resp = append(resp, networkResponse(n))
	}
	h.respondData(w, resp, false)
}

// GetNetwork handles GET /api/networks/{id}
// @Summary      Get one network
// @Description  Returns the connection profile of one XRPL deployment
// @Tags         networks
// @Produce      json
// @Param        id   path      string  true  "Network id (testnet or mainnet)"
// @Success      200  {object}  model.Envelope{data=model.NetworkResponse}
// @Failure      400  {object}  model.Envelope
// @Router       /api/networks/{id} [get]
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	id := model.Network(chi.URLParam(r, "id"))
	info, err := client.NetworkByID(id)
	if err != nil {
		h.respondError(w, r, &xrpl.OpError{Code: model.CodeInvalidRequest, Message: err.Error()})
		return
	}
	h.respondData(w, networkResponse(info), false)
}

func networkResponse(n model.NetworkInfo) model.NetworkResponse {
	return model.NetworkResponse{
		ID:              n.ID,
		Name:            n.Name,
		Description:     n.Description,
		JSONRPCURL:      n.JSONRPCURL,
		WebsocketURL:    n.WebsocketURL,
		Faucet:          n.HasFaucet(),
		BaseReserveXRP:  common.DropsToXRP(n.BaseReserveDrops),
		OwnerReserveXRP: common.DropsToXRP(n.OwnerReserveDrops),
	}
}
