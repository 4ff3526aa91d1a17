package catalog_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	core "craft-calculator/core/catalog"
	"craft-calculator/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixtureSnapshot() *core.Snapshot {
	return &core.Snapshot{
		Raw: []core.Item{
			{ID: 1, Name: "Oak Wood", Kind: core.KindRaw,
				Gathering: &core.Gathering{Skill: "Woodcutting", SkillLevel: 1}},
			{ID: 2, Name: "Rabbit Hide", Kind: core.KindRaw,
				Gathering: &core.Gathering{Skill: "Hunting", SkillLevel: 1}},
		},
		Intermediate: []core.Item{
			{ID: 3, Name: "Oak Timber", Kind: core.KindIntermediate,
				Recipe: &core.Recipe{Components: []core.ComponentRef{
					{Identifier: "Oak Wood", Quantity: 1},
				}}},
		},
		Meta: core.Meta{GatheringSkills: []string{"Woodcutting", "Hunting"}},
	}
}

func setupCatalogApp(t *testing.T) *fiber.App {
	t.Helper()

	store := core.NewFileStore(filepath.Join(t.TempDir(), "catalog.json"))
	require.NoError(t, store.Persist(context.Background(), fixtureSnapshot()))

	logger := zap.NewNop()
	cache := core.NewCache(store, logger, time.Minute)
	gateway := core.NewGateway(store, cache, logger)

	app := fiber.New(fiber.Config{UnescapePath: true})
	h := catalog.NewHandler(catalog.NewService(cache, gateway, logger))
	h.RegisterRoutes(app)
	return app
}

func TestHandleGetCatalog(t *testing.T) {
	app := setupCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var doc map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc, "raw_components")
	assert.Contains(t, doc, "intermediate_recipes")
	assert.Contains(t, doc, "crafted_items")
	assert.Contains(t, doc, "artisan_levels")
	assert.Contains(t, doc, "gathering_skills")
}

func TestHandleGetMeta(t *testing.T) {
	app := setupCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/meta", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var meta core.Meta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&meta))
	assert.Equal(t, []string{"Woodcutting", "Hunting"}, meta.GatheringSkills)
}

func TestHandleGetItem(t *testing.T) {
	app := setupCatalogApp(t)

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/Oak%20Timber", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var item core.Item
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		assert.Equal(t, 3, item.ID)
	})

	t.Run("NotFoundWithSuggestion", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/Oak%20Timbre", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Oak Timber", body["suggestion"])
	})
}

func TestHandleAdd(t *testing.T) {
	app := setupCatalogApp(t)

	t.Run("Success", func(t *testing.T) {
		body := `{"id": 10, "name": "Iron Ore", "gathering": {"skill": "Mining"}}`
		req := httptest.NewRequest("POST", "/catalog/raw", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res core.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.True(t, res.Success)
		require.NotNil(t, res.Data)
		assert.Equal(t, "Iron Ore", res.Data.Name)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		body := `{"id": 1, "name": "Shadow Wood", "gathering": {"skill": "Woodcutting"}}`
		req := httptest.NewRequest("POST", "/catalog/raw", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		body := `{"id": 11, "name": "Hollow Box"}`
		req := httptest.NewRequest("POST", "/catalog/crafted", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/catalog/legendary", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleUpdate(t *testing.T) {
	app := setupCatalogApp(t)

	t.Run("Success", func(t *testing.T) {
		body := `{"description": "Freshly cut"}`
		req := httptest.NewRequest("PUT", "/catalog/raw/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res core.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, "Freshly cut", res.Data.Description)
	})

	t.Run("UnknownID", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/catalog/raw/999", strings.NewReader(`{"name": "Ghost"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("IDChangeRejected", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/catalog/raw/1", strings.NewReader(`{"id": 50}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleRemove(t *testing.T) {
	app := setupCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/catalog/raw/2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var res core.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "Rabbit Hide", res.Data.Name)

	// Removal is immediately visible through the cache.
	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/Rabbit%20Hide", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
