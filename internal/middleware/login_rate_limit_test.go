package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestLoginRateLimitPerEmail(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Post("/user/login", LoginRateLimit(cache, 2, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	login := func(email string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/user/login", strings.NewReader(`{"email":"`+email+`","password":"p"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 2; i++ {
		if status := login("a@x.com"); status != fiber.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, status)
		}
	}
	if status := login(" A@x.com"); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
	if status := login("b@x.com"); status != fiber.StatusOK {
		t.Fatalf("other email should not be limited, got %d", status)
	}

	mr.FastForward(loginRateWindow)
	if status := login("a@x.com"); status != fiber.StatusOK {
		t.Fatalf("expected window reset, got %d", status)
	}
}

func TestLoginRateLimitWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Post("/user/login", LoginRateLimit(nil, 1, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/user/login", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected pass-through, got %d", resp.StatusCode)
		}
	}
}
