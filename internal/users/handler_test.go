package users

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
	"github.com/volcano-atlas/volcano_api/internal/middleware"
)

const handlerSecret = "profile-secret"

func setupProfileApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := NewMemoryRepository()
	ctx := context.Background()
	for _, email := range []string{"alice@x.com", "bob@x.com", "carol@x.com"} {
		if err := repo.Create(ctx, User{Email: email, PasswordHash: "h"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := repo.UpdateProfile(ctx, "alice@x.com", ProfileUpdate{
		FirstName: "Alice", LastName: "Smith", DOB: time.Date(1990, 4, 5, 0, 0, 0, 0, time.UTC), Address: "1 Crater Rd",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	codec := auth.NewTokenCodec(handlerSecret, time.Hour)
	h := NewHandler(NewService(repo))
	app := fiber.New()
	app.Get("/user/:email/profile", middleware.OptionalAuthForSubject(codec, NewCredentialStore(repo), "email", nil), h.GetProfile)
	app.Put("/user/:email/profile", middleware.RequireAuth(codec), h.UpdateProfile)
	return app
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := auth.NewTokenCodec(handlerSecret, time.Hour).Issue(email)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return "Bearer " + tok.Value
}

func do(t *testing.T, app *fiber.App, method, path, authz, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func decodeProfile(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return out
}

func TestGetProfileOwnerSeesRestrictedFields(t *testing.T) {
	app := setupProfileApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/user/ALICE@x.com/profile", bearer(t, "alice@x.com"), "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d %s", status, raw)
	}
	p := decodeProfile(t, raw)
	if p["dob"] != "1990-04-05" || p["address"] != "1 Crater Rd" || p["firstName"] != "Alice" {
		t.Fatalf("unexpected profile %v", p)
	}
}

func TestGetProfileOwnerWithEmptyProfileSeesNulls(t *testing.T) {
	app := setupProfileApp(t)

	_, raw := do(t, app, fiber.MethodGet, "/user/carol@x.com/profile", bearer(t, "carol@x.com"), "")
	p := decodeProfile(t, raw)
	dob, hasDOB := p["dob"]
	addr, hasAddr := p["address"]
	if !hasDOB || !hasAddr || dob != nil || addr != nil {
		t.Fatalf("expected null dob and address, got %v", p)
	}
}

func TestGetProfileOtherCallerHasNoRestrictedKeys(t *testing.T) {
	app := setupProfileApp(t)

	for name, authz := range map[string]string{"anonymous": "", "other user": bearer(t, "bob@x.com")} {
		status, raw := do(t, app, fiber.MethodGet, "/user/alice@x.com/profile", authz, "")
		if status != fiber.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, status)
		}
		p := decodeProfile(t, raw)
		if _, ok := p["dob"]; ok {
			t.Fatalf("%s: dob must be absent, got %v", name, p)
		}
		if _, ok := p["address"]; ok {
			t.Fatalf("%s: address must be absent, got %v", name, p)
		}
		if p["email"] != "alice@x.com" || p["lastName"] != "Smith" {
			t.Fatalf("%s: unexpected public fields %v", name, p)
		}
	}
}

func TestGetProfileUnknownSubject(t *testing.T) {
	app := setupProfileApp(t)

	if status, _ := do(t, app, fiber.MethodGet, "/user/ghost@x.com/profile", bearer(t, "bob@x.com"), ""); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 with token, got %d", status)
	}
	if status, _ := do(t, app, fiber.MethodGet, "/user/ghost@x.com/profile", "", ""); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 anonymous, got %d", status)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	app := setupProfileApp(t)
	authz := bearer(t, "bob@x.com")

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing field", `{"firstName":"Bob","lastName":"Ng","dob":"1990-01-01"}`, msgProfileIncomplete},
		{"not a real date", `{"firstName":"Bob","lastName":"Ng","dob":"1990-02-30","address":"x"}`, msgInvalidDOB},
		{"wrong format", `{"firstName":"Bob","lastName":"Ng","dob":"01/02/1990","address":"x"}`, msgInvalidDOB},
		{"future date", `{"firstName":"Bob","lastName":"Ng","dob":"2999-01-01","address":"x"}`, msgFutureDOB},
		{"blank name", `{"firstName":"  ","lastName":"Ng","dob":"1990-01-01","address":"x"}`, msgProfileNotStrings},
		{"number name", `{"firstName":42,"lastName":"Ng","dob":"1990-01-01","address":"x"}`, msgProfileNotStrings},
		{"number name and missing field", `{"firstName":42,"lastName":"Ng","dob":"1990-01-01"}`, msgProfileIncomplete},
		{"zero name", `{"firstName":0,"lastName":"Ng","dob":"1990-01-01","address":"x"}`, msgProfileIncomplete},
		{"numeric dob", `{"firstName":"Bob","lastName":"Ng","dob":19900101,"address":"x"}`, msgInvalidDOB},
		{"object address", `{"firstName":"Bob","lastName":"Ng","dob":"1990-01-01","address":{"city":"x"}}`, msgProfileNotStrings},
	}
	for _, tc := range cases {
		status, raw := do(t, app, fiber.MethodPut, "/user/bob@x.com/profile", authz, tc.body)
		if status != fiber.StatusBadRequest || raw != tc.want {
			t.Fatalf("%s: expected 400 %q, got %d %q", tc.name, tc.want, status, raw)
		}
	}
}

func TestUpdateProfileAuthorization(t *testing.T) {
	app := setupProfileApp(t)
	body := `{"firstName":"Bob","lastName":"Ng","dob":"1990-01-01","address":"2 Ash St"}`

	if status, _ := do(t, app, fiber.MethodPut, "/user/bob@x.com/profile", "", body); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
	if status, _ := do(t, app, fiber.MethodPut, "/user/alice@x.com/profile", bearer(t, "bob@x.com"), body); status != fiber.StatusForbidden {
		t.Fatalf("expected 403 for other user, got %d", status)
	}

	status, raw := do(t, app, fiber.MethodPut, "/user/bob@x.com/profile", bearer(t, "bob@x.com"), body)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d %s", status, raw)
	}
	p := decodeProfile(t, raw)
	if p["dob"] != "1990-01-01" || p["address"] != "2 Ash St" || p["email"] != "bob@x.com" {
		t.Fatalf("unexpected response %v", p)
	}

	_, raw = do(t, app, fiber.MethodGet, "/user/bob@x.com/profile", bearer(t, "bob@x.com"), "")
	if p := decodeProfile(t, raw); p["firstName"] != "Bob" {
		t.Fatalf("update not persisted: %v", p)
	}
}
