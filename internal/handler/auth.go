package handler

import (
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/openspace-organizer/internal/config" // app configuration
    "github.com/iliyamo/openspace-organizer/internal/utils"  // key hashing and token issuing
)

// AuthHandler exchanges the shared organizer key for a short-lived access
// token.  Only the bcrypt hash of the key is held in configuration.
type AuthHandler struct {
    Cfg config.ServerConfig
}

func NewAuthHandler(cfg config.ServerConfig) *AuthHandler {
    return &AuthHandler{Cfg: cfg}
}

type tokenReq struct {
    Key  string `json:"key"`
    Name string `json:"name"` // optional, recorded as the token subject
}

type tokenResp struct {
    Token   string    `json:"token"`
    Role    string    `json:"role"`
    Subject string    `json:"subject"`
    Expires time.Time `json:"expires"`
}

// IssueToken handles POST /v1/auth/token.
func (h *AuthHandler) IssueToken(c echo.Context) error {
    var req tokenReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Key == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "key required"})
    }
    if !utils.VerifyKey(h.Cfg.OrganizerKeyHash, req.Key) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid key"})
    }

    subject := strings.TrimSpace(req.Name)
    if subject == "" {
        subject = "organizer"
    }
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, subject, utils.RoleOrganizer, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, tokenResp{
        Token:   access.Token,
        Role:    utils.RoleOrganizer,
        Subject: subject,
        Expires: access.Exp,
    })
}
