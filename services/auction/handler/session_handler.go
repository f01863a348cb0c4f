package handler

import (
	"net/http"

	ident "silent-auction/internal/identity"
	model "silent-auction/internal/models"
	"silent-auction/internal/toast"
	"silent-auction/internal/watchlist"
	"silent-auction/services/auction/helpers"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler covers registration, the current session, and logout.
type SessionHandler struct {
	identity *ident.Cache
	watch    *watchlist.Set
	notices  *toast.Queue
}

func NewSessionHandler(identity *ident.Cache, watch *watchlist.Set, notices *toast.Queue) *SessionHandler {
	return &SessionHandler{identity: identity, watch: watch, notices: notices}
}

// RegisterHandler handles POST /register
func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	id, err := h.identity.Register(model.Identity{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, id, "registered successfully")
	helpers.LogSuccess("RegisterHandler", "bidder registered", map[string]any{
		"name":  id.Name,
		"email": id.Email,
	})
}

// SessionHandler handles GET /session
func (h *SessionHandler) CurrentSessionHandler(c *gin.Context) {
	id, err := h.identity.Current()
	if err != nil {
		helpers.RespondError(c, "CurrentSessionHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, id, "session active")
}

// LogoutHandler handles POST /logout
//
// Logout destroys the device identity and the watchlist wholesale, so it
// requires confirm=true just like the original logout prompt.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.JSONResponse(c, http.StatusOK, gin.H{
			"prompt": "Logging out will delete your current watchlist. Continue?",
		}, "confirmation required")
		return
	}

	if err := h.identity.Clear(); err != nil {
		helpers.RespondError(c, "LogoutHandler", err)
		return
	}
	if err := h.watch.Clear(); err != nil {
		helpers.RespondError(c, "LogoutHandler", err)
		return
	}

	h.notices.Push("Logged out", toast.KindInfo, 0)
	utils.JSONResponse(c, http.StatusOK, nil, "logged out")
	helpers.LogSuccess("LogoutHandler", "session cleared", nil)
}
