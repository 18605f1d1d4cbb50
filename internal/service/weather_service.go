package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"planner-go/internal/config"
)

// WeatherService 外部天气网关
// 仅做参数转发与JSON透传；不缓存、不重试，上游失败返回统一错误，
// 不向调用方泄露API密钥或上游原始错误内容
type WeatherService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewWeatherService 创建天气网关
func NewWeatherService(cfg *config.WeatherConfig) *WeatherService {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &WeatherService{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.GetTimeout(),
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// CurrentWeather 当前天气(城市名或经纬度)
func (s *WeatherService) CurrentWeather(ctx context.Context, city, lat, lon string) (json.RawMessage, error) {
	params, err := locationParams(city, lat, lon)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, "/data/2.5/weather", params)
}

// Forecast 天气预报(城市名或经纬度)
func (s *WeatherService) Forecast(ctx context.Context, city, lat, lon string) (json.RawMessage, error) {
	params, err := locationParams(city, lat, lon)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, "/data/2.5/forecast", params)
}

// Geocode 地名转坐标
func (s *WeatherService) Geocode(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: 缺少地名参数q", ErrInvalid)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "5")
	return s.fetch(ctx, "/geo/1.0/direct", params)
}

// PollutionForecast 空气污染预报(仅经纬度)
func (s *WeatherService) PollutionForecast(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	if lat == "" || lon == "" {
		return nil, fmt.Errorf("%w: 缺少经纬度参数", ErrInvalid)
	}
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	return s.fetch(ctx, "/data/2.5/air_pollution/forecast", params)
}

// fetch 请求上游并透传JSON响应体
func (s *WeatherService) fetch(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	params.Set("appid", s.apiKey)
	apiURL := fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, ErrUpstream
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrUpstream
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrUpstream
	}

	if !json.Valid(body) {
		return nil, ErrUpstream
	}

	return json.RawMessage(body), nil
}

// locationParams 构造城市名或经纬度查询参数
func locationParams(city, lat, lon string) (url.Values, error) {
	params := url.Values{}
	switch {
	case city != "":
		params.Set("q", city)
	case lat != "" && lon != "":
		params.Set("lat", lat)
		params.Set("lon", lon)
	default:
		return nil, fmt.Errorf("%w: 需要city或lat+lon参数", ErrInvalid)
	}
	return params, nil
}
