package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/service"
)

// SettingsHandler serves the admin configuration of AI providers, the
// generation backend and the outbound proxy.
type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type testResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type proxyTestRequest struct {
	ProxyURL string `json:"proxyUrl"`
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/ai", h.GetAISettings)
	g.PUT("/settings/ai", h.UpdateAISettings)
	g.POST("/settings/ai/test", h.TestAI)
	g.GET("/settings/generation", h.GetGenerationSettings)
	g.PUT("/settings/generation", h.UpdateGenerationSettings)
	g.GET("/settings/network", h.GetNetworkSettings)
	g.PUT("/settings/network", h.UpdateNetworkSettings)
	g.POST("/settings/network/test", h.TestNetworkProxy)
}

// GetAISettings returns the AI configuration with a masked API key.
// @Summary Get AI settings
// @Description The API key is masked
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AISettings
// @Failure 403 {object} errorResponse
// @Router /admin/settings/ai [get]
func (h *SettingsHandler) GetAISettings(c echo.Context) error {
	settings, err := h.service.GetAISettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateAISettings saves the AI configuration. An empty or masked apiKey
// keeps the stored key.
// @Summary Update AI settings
// @Description An empty or masked API key keeps the stored one
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.AISettings true "AI settings"
// @Security BearerAuth
// @Success 200 {object} service.AISettings
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /admin/settings/ai [put]
func (h *SettingsHandler) UpdateAISettings(c echo.Context) error {
	var req service.AISettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.SetAISettings(c.Request().Context(), &req); err != nil {
		return writeServiceError(c, err)
	}

	// Return updated settings (with masked keys)
	return h.GetAISettings(c)
}

// TestAI sends a short prompt with the given configuration. Provider
// failures are reported in the body, not as an error status.
// @Summary Test AI settings
// @Description Send a short prompt with the given configuration
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.AISettings true "AI settings"
// @Security BearerAuth
// @Success 200 {object} testResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /admin/settings/ai/test [post]
func (h *SettingsHandler) TestAI(c echo.Context) error {
	var req service.AISettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Provider == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "provider is required"})
	}
	if req.Model == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "model is required"})
	}

	response, err := h.service.TestAI(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusOK, testResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, testResponse{Success: true, Message: response})
}

// @Summary Get generation settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.GenerationSettings
// @Failure 403 {object} errorResponse
// @Router /admin/settings/generation [get]
func (h *SettingsHandler) GetGenerationSettings(c echo.Context) error {
	settings, err := h.service.GetGenerationSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// @Summary Update generation settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.GenerationSettings true "Generation settings"
// @Security BearerAuth
// @Success 200 {object} service.GenerationSettings
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /admin/settings/generation [put]
func (h *SettingsHandler) UpdateGenerationSettings(c echo.Context) error {
	var req service.GenerationSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.SetGenerationSettings(c.Request().Context(), &req); err != nil {
		return writeServiceError(c, err)
	}
	return h.GetGenerationSettings(c)
}

// @Summary Get network settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.NetworkSettings
// @Failure 403 {object} errorResponse
// @Router /admin/settings/network [get]
func (h *SettingsHandler) GetNetworkSettings(c echo.Context) error {
	settings, err := h.service.GetNetworkSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// @Summary Update network settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.NetworkSettings true "Network settings"
// @Security BearerAuth
// @Success 200 {object} service.NetworkSettings
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /admin/settings/network [put]
func (h *SettingsHandler) UpdateNetworkSettings(c echo.Context) error {
	var req service.NetworkSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.SetNetworkSettings(c.Request().Context(), &req); err != nil {
		return writeServiceError(c, err)
	}
	return h.GetNetworkSettings(c)
}

// TestNetworkProxy checks the given proxy, or the saved one when empty.
// @Summary Test proxy
// @Description Check the given proxy, or the saved one when empty
// @Tags settings
// @Accept json
// @Produce json
// @Param request body proxyTestRequest true "Proxy URL"
// @Security BearerAuth
// @Success 200 {object} testResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /admin/settings/network/test [post]
func (h *SettingsHandler) TestNetworkProxy(c echo.Context) error {
	var req proxyTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.TestProxy(c.Request().Context(), req.ProxyURL); err != nil {
		return c.JSON(http.StatusOK, testResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, testResponse{Success: true, Message: "proxy reachable"})
}
