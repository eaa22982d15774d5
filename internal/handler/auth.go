package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/config"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
    "github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// AuthHandler implements staff account registration and login. The
// allocation engine itself is permission-agnostic; tokens issued
// here only gate the HTTP surface through middleware.
type AuthHandler struct {
    Users *repository.UserRepo
    Cfg   config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *repository.UserRepo, cfg config.Config) *AuthHandler {
    if users == nil {
        panic("nil repository passed to NewAuthHandler")
    }
    return &AuthHandler{Users: users, Cfg: cfg}
}

// Register handles POST /v1/auth/register. It creates a STAFF or
// ADMIN account with a bcrypt-hashed password. Duplicate emails
// return 409.
func (h *AuthHandler) Register(c echo.Context) error {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
        Role     string `json:"role"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    body.Email = strings.TrimSpace(strings.ToLower(body.Email))
    if body.Email == "" || len(body.Password) < 8 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and a password of at least 8 characters are required"})
    }
    role := strings.ToUpper(strings.TrimSpace(body.Role))
    if role == "" {
        role = "STAFF"
    }
    if role != "STAFF" && role != "ADMIN" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be STAFF or ADMIN"})
    }

    ctx := c.Request().Context()
    exists, err := h.Users.EmailExists(ctx, body.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if exists {
        return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
    }

    hash, err := utils.HashPassword(body.Password, h.Cfg.BcryptCost)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hash password"})
    }
    u := model.User{Email: body.Email, PasswordHash: hash, Role: role}
    if err := h.Users.Create(ctx, &u); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": u.ID, "email": u.Email, "role": u.Role})
}

// Login handles POST /v1/auth/login. On valid credentials it issues
// an HS256 access token carrying the user id and role.
func (h *AuthHandler) Login(c echo.Context) error {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    body.Email = strings.TrimSpace(strings.ToLower(body.Email))

    u, err := h.Users.GetByEmail(c.Request().Context(), body.Email)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if !utils.VerifyPassword(u.PasswordHash, body.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "access_token": token.Token,
        "expires_at":   token.Exp.Format(time.RFC3339),
        "role":         u.Role,
    })
}
