package handler

import (
	"net/http"
)

// GetWallet handles GET /api/wallet
// @Summary      Get wallet metadata
// @Description  Returns the wallet document with private keys and seeds stripped
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.Envelope{data=model.WalletResponse}
// @Failure      404  {object}  model.Envelope
// @Router       /api/wallet [get]
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.WalletInfo(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, resp, false)
}

// InitWallet handles POST /api/wallet/init
// @Summary      Initialize wallets
// @Description  Generates the issuer, hot and customer wallets, funds them from the faucet when available, and persists the wallet document
// @Tags         wallet
// @Produce      json
// @Success      201  {object}  model.Envelope{data=model.WalletResponse}
// @Failure      409  {object}  model.Envelope
// @Router       /api/wallet/init [post]
func (h *Handler) InitWallet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.InitWallets(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, resp, true)
}
