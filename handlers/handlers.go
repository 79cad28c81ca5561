package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"coingarden/metrics"
	"coingarden/models"
	"coingarden/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	svc           service.Service
	jwtSecret     string
	adminKey      string
	clientVersion string
	logger        *zap.Logger
}

func NewHandler(
	svc service.Service,
	jwtSecret, adminKey, clientVersion string,
	logger *zap.Logger,
) Handler {
	return Handler{
		svc:           svc,
		jwtSecret:     jwtSecret,
		adminKey:      adminKey,
		clientVersion: clientVersion,
		logger:        logger,
	}
}

// Router собирает все маршруты вместе с CORS и логированием запросов.
func (h Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.CORSMiddleware, h.LoggingMiddleware)

	r.HandleFunc("/register", h.RegisterHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/login", h.LoginHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/logout", h.LogoutHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/check_version", h.CheckVersionHandler).Methods("POST", "OPTIONS")

	r.HandleFunc("/profile", h.SessionMiddleware(h.ProfileHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/search_users", h.SessionMiddleware(h.SearchUsersHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/register_items", h.SessionMiddleware(h.RegisterItemsHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/get_shop_items/{username}", h.SessionMiddleware(h.GetShopItemsHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/purchase", h.SessionMiddleware(h.PurchaseHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/get_pending_actions", h.SessionMiddleware(h.GetPendingActionsHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/mark_action_executed", h.SessionMiddleware(h.MarkActionExecutedHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/activity_ping", h.SessionMiddleware(h.ActivityPingHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/save_passive_progress", h.SessionMiddleware(h.SavePassiveProgressHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/load_passive_progress", h.SessionMiddleware(h.LoadPassiveProgressHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/claim_passive_coin", h.SessionMiddleware(h.ClaimPassiveCoinHandler)).Methods("POST", "OPTIONS")

	r.HandleFunc("/admin/stats", h.AdminMiddleware(h.AdminStatsHandler)).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/add_coins", h.AdminMiddleware(h.AdminAddCoinsHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/admin/reset_passive", h.AdminMiddleware(h.AdminResetPassiveHandler)).Methods("POST", "OPTIONS")
	r.HandleFunc("/admin/check_passive", h.AdminMiddleware(h.AdminCheckPassiveHandler)).Methods("GET", "OPTIONS")

	return r
}

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	Data        json.RawMessage `json:"data"`
}

type RegisterItemsRequest struct {
	Items []ItemInput `json:"items"`
}

type PurchaseRequest struct {
	TargetUsername string `json:"target_username"`
	ItemName       string `json:"item_name"`
}

type MarkActionRequest struct {
	ActionID int `json:"action_id"`
}

type SaveProgressRequest struct {
	Progress json.RawMessage `json:"progress"`
}

type CheckVersionRequest struct {
	Version string `json:"version"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

func (h Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	if err := h.svc.Register(r.Context(), req.Username, req.Password); err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Аккаунт создан",
		"coins":   0,
	})
}

func (h Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	token, coins, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Вход выполнен",
		"coins":   coins,
	})
}

func (h Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Выход выполнен"})
}

func (h Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	profile, err := h.svc.GetProfile(r.Context(), username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"username":           profile.Username,
		"coins":              profile.Coins,
		"total_earnings_usd": profile.TotalEarningsUSD,
	})
}

func (h Handler) SearchUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.SearchUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if users == nil {
		users = []string{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h Handler) RegisterItemsHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	var req RegisterItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	items := make([]models.ShopItem, 0, len(req.Items))
	for _, in := range req.Items {
		data := "{}"
		if len(in.Data) > 0 {
			data = string(in.Data)
		}
		items = append(items, models.ShopItem{
			Owner:       username,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Data:        data,
		})
	}
	if err := h.svc.RegisterItems(r.Context(), username, items); err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Товары зарегистрированы",
		"item_count": len(items),
	})
}

func (h Handler) GetShopItemsHandler(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["username"]
	items, err := h.svc.GetShopItems(r.Context(), owner)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		data := json.RawMessage(item.Data)
		if !json.Valid(data) {
			data = json.RawMessage("{}")
		}
		out = append(out, map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"data":        data,
		})
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"items": out})
}

func (h Handler) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	buyer := usernameFromContext(r)
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	if err := h.svc.Purchase(r.Context(), buyer, req.TargetUsername, req.ItemName); err != nil {
		h.respondError(w, err)
		return
	}
	metrics.ObservePurchase()
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Покупка совершена"})
}

func (h Handler) GetPendingActionsHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	actions, err := h.svc.GetPendingActions(r.Context(), username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(actions))
	for _, a := range actions {
		out = append(out, map[string]interface{}{
			"id":            a.ID,
			"buyer":         a.Buyer,
			"item_name":     a.ItemName,
			"price":         a.Price,
			"purchase_time": a.PurchaseTime,
		})
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"actions": out})
}

func (h Handler) MarkActionExecutedHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	var req MarkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	if err := h.svc.MarkActionExecuted(r.Context(), req.ActionID, username); err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Действие отмечено выполненным"})
}

func (h Handler) ActivityPingHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	result, err := h.svc.RecordActivityPing(r.Context(), username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Пинг записан",
		"ping_count":   result.PingCount,
		"coins_earned": result.CoinsEarned,
	})
}

func (h Handler) SavePassiveProgressHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	var req SaveProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	if err := h.svc.SavePassiveProgress(r.Context(), username, string(req.Progress)); err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Прогресс сохранён"})
}

func (h Handler) LoadPassiveProgressHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	progress, err := h.svc.LoadPassiveProgress(r.Context(), username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	// Blob отдаётся байт в байт, как был сохранён.
	raw := json.RawMessage(progress)
	if len(raw) == 0 || !json.Valid(raw) {
		raw = json.RawMessage("null")
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"progress": raw})
}

func (h Handler) ClaimPassiveCoinHandler(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	newBalance, err := h.svc.ClaimPassiveCoin(r.Context(), username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Монета начислена",
		"new_balance": newBalance,
	})
}

func (h Handler) CheckVersionHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, models.ErrValidation)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"upgrade_required": req.Version != h.clientVersion,
		"server_version":   h.clientVersion,
	})
}

func (h Handler) respondError(w http.ResponseWriter, err error) {
	var rateErr *models.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		respondWithJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Error:      rateErr.Error(),
			RetryAfter: int(rateErr.RetryAfter.Seconds()),
		})
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInsufficientFunds):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrConflict):
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("внутренняя ошибка", zap.Error(err))
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
