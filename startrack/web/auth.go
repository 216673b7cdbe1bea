package web

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
)

const authCacheTTL = 5 * time.Minute

type cachedUser struct {
	user     *models.User
	cachedAt time.Time
}

// Authenticator resolves API keys to users, with a small LRU in front of the
// store so every request does not cost a query.
type Authenticator struct {
	userRepo repositories.UserRepository
	cache    *lru.Cache
}

func NewAuthenticator(userRepo repositories.UserRepository) (*Authenticator, error) {
	cache, err := lru.New(512)
	if err != nil {
		return nil, err
	}
	return &Authenticator{userRepo: userRepo, cache: cache}, nil
}

// Invalidate drops a key from the cache, e.g. after the user was deleted or
// its role changed.
func (a *Authenticator) Invalidate(apiKey string) {
	a.cache.Remove(apiKey)
}

func (a *Authenticator) resolve(ctx context.Context, apiKey string) (*models.User, error) {
	if entry, ok := a.cache.Get(apiKey); ok {
		cached := entry.(cachedUser)
		if time.Since(cached.cachedAt) < authCacheTTL {
			return cached.user, nil
		}
		a.cache.Remove(apiKey)
	}

	user, err := a.userRepo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	a.cache.Add(apiKey, cachedUser{user: user, cachedAt: time.Now()})
	return user, nil
}

// apiKeyFrom pulls the credential from X-API-Key or a Bearer header.
func apiKeyFrom(c *fiber.Ctx) string {
	if key := c.Get("X-API-Key"); key != "" {
		return key
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// maskKey keeps logs useful without leaking the credential.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// AuthRequired authenticates the request and stores the user in the context.
// Recording last activity is fire-and-forget: it must never block or fail the
// request it was triggered from.
func AuthRequired(auth *Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := apiKeyFrom(c)
		if key == "" {
			return SendUnauthorized(c, "missing API key")
		}

		user, err := auth.resolve(c.Context(), key)
		if err != nil {
			slog.Warn("Rejected request with unknown API key",
				slog.String("type", "web"),
				slog.String("api_key", maskKey(key)),
				slog.String("path", c.Path()))
			return SendUnauthorized(c, "invalid API key")
		}

		go func(userID int64) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := auth.userRepo.TouchActivity(ctx, userID); err != nil {
				slog.Warn("Failed to record user activity",
					slog.String("type", "web"),
					slog.Int64("user_id", userID),
					slog.Any("error", err))
			}
		}(user.ID)

		c.Locals("user", user)
		return c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user == nil {
			return SendUnauthorized(c, "missing API key")
		}
		if user.Role != models.RoleAdmin {
			return SendForbidden(c, "admin access required")
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
