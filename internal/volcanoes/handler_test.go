package volcanoes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volcano-atlas/volcano_api/internal/auth"
	"github.com/volcano-atlas/volcano_api/internal/middleware"
)

const volcanoSecret = "volcano-secret"

func setupVolcanoApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := newSeededService(nil)
	h := NewHandler(svc)
	codec := auth.NewTokenCodec(volcanoSecret, time.Hour)

	app := fiber.New()
	app.Get("/countries", h.Countries)
	app.Get("/volcanoes", middleware.OptionalAuth(codec), h.List)
	app.Get("/volcano/:id", middleware.OptionalAuth(codec), h.Get)
	return app
}

func get(t *testing.T, app *fiber.App, path, authz string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func token(t *testing.T, email string) string {
	t.Helper()
	tok, err := auth.NewTokenCodec(volcanoSecret, time.Hour).Issue(email)
	require.NoError(t, err)
	return "Bearer " + tok.Value
}

func TestCountriesRejectsQueryParameters(t *testing.T) {
	app := setupVolcanoApp(t)

	status, body := get(t, app, "/countries?x=1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, msgNoQueryParams, string(body))

	status, body = get(t, app, "/countries", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `["Chile","Japan"]`, string(body))
}

func TestListValidation(t *testing.T) {
	app := setupVolcanoApp(t)

	cases := map[string]string{
		"/volcanoes":                                   msgCountryRequired,
		"/volcanoes?country=Japan&foo=bar":             msgInvalidQueryParam,
		"/volcanoes?country=Japan&populatedWithin=7km": msgInvalidPopulated,
	}
	for path, want := range cases {
		status, body := get(t, app, path, "")
		assert.Equal(t, fiber.StatusBadRequest, status, path)
		assert.Equal(t, want, string(body), path)
	}
}

func TestListNeverIncludesPopulation(t *testing.T) {
	app := setupVolcanoApp(t)

	status, body := get(t, app, "/volcanoes?country=Japan&populatedWithin=100km", token(t, "a@x.com"))
	require.Equal(t, fiber.StatusOK, status)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Abu", rows[0]["name"])
	assert.NotContains(t, rows[0], "population_100km")
}

func TestGetDisclosesPopulationToAuthenticatedCallers(t *testing.T) {
	app := setupVolcanoApp(t)

	status, body := get(t, app, "/volcano/1", "")
	require.Equal(t, fiber.StatusOK, status)
	var anon map[string]any
	require.NoError(t, json.Unmarshal(body, &anon))
	for _, k := range []string{"population_5km", "population_10km", "population_30km", "population_100km"} {
		assert.NotContains(t, anon, k)
	}
	assert.Equal(t, "Abu", anon["name"])

	for _, email := range []string{"a@x.com", "someone-else@x.com"} {
		status, body = get(t, app, "/volcano/1", token(t, email))
		require.Equal(t, fiber.StatusOK, status)
		var authed map[string]any
		require.NoError(t, json.Unmarshal(body, &authed))
		assert.Equal(t, float64(3597), authed["population_5km"])
		assert.Equal(t, float64(4071152), authed["population_100km"])
	}
}

func TestGetZeroPopulationStillPresent(t *testing.T) {
	app := setupVolcanoApp(t)

	_, body := get(t, app, "/volcano/3", token(t, "a@x.com"))
	var authed map[string]any
	require.NoError(t, json.Unmarshal(body, &authed))
	assert.Equal(t, float64(0), authed["population_30km"])
}

func TestGetErrors(t *testing.T) {
	app := setupVolcanoApp(t)

	status, body := get(t, app, "/volcano/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, msgInvalidVolcanoID, string(body))

	status, body = get(t, app, "/volcano/999", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, msgVolcanoNotFound, string(body))

	status, _ = get(t, app, "/volcano/1", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetIDOutsideInt4IsNotFound(t *testing.T) {
	app := setupVolcanoApp(t)

	for _, id := range []string{"3000000000", "-3000000000", "99999999999999999999"} {
		status, body := get(t, app, "/volcano/"+id, "")
		assert.Equal(t, fiber.StatusNotFound, status, id)
		assert.Equal(t, msgVolcanoNotFound, string(body), id)
	}

	status, body := get(t, app, "/volcano/2147483647", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, msgVolcanoNotFound, string(body))
}
