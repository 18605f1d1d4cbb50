package handler

import (
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// WeatherHandler 天气网关处理器(只读透传)
type WeatherHandler struct {
	weatherService *service.WeatherService
}

// NewWeatherHandler 创建天气处理器
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
	}
}

// Current 当前天气
// @Summary 当前天气
// @Tags 天气
// @Produce json
// @Security BearerAuth
// @Param city query string false "城市名"
// @Param lat query string false "纬度"
// @Param lon query string false "经度"
// @Success 200 {object} utils.Response
// @Router /api/weather/current [get]
func (h *WeatherHandler) Current(c *gin.Context) {
	data, err := h.weatherService.CurrentWeather(
		c.Request.Context(),
		c.Query("city"), c.Query("lat"), c.Query("lon"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, data)
}

// Forecast 天气预报
// @Summary 天气预报
// @Tags 天气
// @Produce json
// @Security BearerAuth
// @Param city query string false "城市名"
// @Param lat query string false "纬度"
// @Param lon query string false "经度"
// @Success 200 {object} utils.Response
// @Router /api/weather/forecast [get]
func (h *WeatherHandler) Forecast(c *gin.Context) {
	data, err := h.weatherService.Forecast(
		c.Request.Context(),
		c.Query("city"), c.Query("lat"), c.Query("lon"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, data)
}

// Geocode 地名转坐标
// @Summary 地名转坐标
// @Tags 天气
// @Produce json
// @Security BearerAuth
// @Param q query string true "地名"
// @Success 200 {object} utils.Response
// @Router /api/weather/geocode [get]
func (h *WeatherHandler) Geocode(c *gin.Context) {
	data, err := h.weatherService.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, data)
}

// Pollution 空气污染预报
// @Summary 空气污染预报
// @Tags 天气
// @Produce json
// @Security BearerAuth
// @Param lat query string true "纬度"
// @Param lon query string true "经度"
// @Success 200 {object} utils.Response
// @Router /api/weather/pollution [get]
func (h *WeatherHandler) Pollution(c *gin.Context) {
	data, err := h.weatherService.PollutionForecast(c.Request.Context(), c.Query("lat"), c.Query("lon"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, data)
}
