package utils_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/attendance-api/internal/utils"
)

func performRequest(t *testing.T, handler fiber.Handler) (*http.Response, utils.APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var parsed utils.APIResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp, parsed
}

func TestSendSuccessEnvelope(t *testing.T) {
	resp, parsed := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "done", fiber.Map{"id": 1})
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, parsed.Success)
	require.Equal(t, "done", parsed.Message)
	require.NotNil(t, parsed.Data)
}

func TestSendSuccessWithStatus(t *testing.T) {
	resp, parsed := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "created", nil)
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, parsed.Success)
}

func TestSendErrorEnvelope(t *testing.T) {
	resp, parsed := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusNotFound, "missing")
	})

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.False(t, parsed.Success)
	require.Equal(t, "missing", parsed.Message)
	require.Nil(t, parsed.Data)
}
