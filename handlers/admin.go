package handlers

import (
	"encoding/json"
	"net/http"

	"coingarden/models"
)

type AddCoinsRequest struct {
	Username string `json:"username"`
	Coins    int    `json:"coins"`
}

type ResetPassiveRequest struct {
	Username string `json:"username"`
}

func (h Handler) AdminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	topEarners := make([]map[string]interface{}, 0, len(stats.TopEarners))
	for _, e := range stats.TopEarners {
		topEarners = append(topEarners, map[string]interface{}{
			"username":       e.Username,
			"coins":          e.Coins,
			"earnings_cents": e.EarningsCents,
			"usd_earnings":   float64(e.EarningsCents) / 100.0,
		})
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total_coins":        stats.TotalCoins,
		"total_usd_earnings": float64(stats.TotalEarningsCents) / 100.0,
		"user_count":         stats.UserCount,
		"top_earners":        topEarners,
	})
}

func (h Handler) AdminAddCoinsHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	newBalance, err := h.svc.AddCoins(r.Context(), req.Username, req.Coins)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Монеты начислены",
		"new_balance": newBalance,
	})
}

func (h Handler) AdminResetPassiveHandler(w http.ResponseWriter, r *http.Request) {
	var req ResetPassiveRequest
	if r.Body != nil {
		// Пустое тело допустимо и означает сброс у всех пользователей.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if err := h.svc.ResetPassiveState(r.Context(), req.Username); err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Пассивное состояние сброшено"})
}

func (h Handler) AdminCheckPassiveHandler(w http.ResponseWriter, r *http.Request) {
	corrupted, err := h.svc.CheckPassiveIntegrity(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if corrupted == nil {
		corrupted = []string{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"corrupted": corrupted})
}
