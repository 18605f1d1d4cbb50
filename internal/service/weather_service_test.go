package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"planner-go/internal/config"
)

func newWeatherService(baseURL string) *WeatherService {
	return NewWeatherService(&config.WeatherConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})
}

func TestCurrentWeatherRelay(t *testing.T) {
	var gotPath, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":293.15}}`))
	}))
	defer upstream.Close()

	svc := newWeatherService(upstream.URL)
	body, err := svc.CurrentWeather(context.Background(), "Beijing", "", "")
	if err != nil {
		t.Fatalf("请求失败: %v", err)
	}

	if gotPath != "/data/2.5/weather" {
		t.Fatalf("上游路径错误: %s", gotPath)
	}
	// API密钥由服务端注入
	if gotQuery != "appid=test-key&q=Beijing" {
		t.Fatalf("上游查询参数错误: %s", gotQuery)
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("响应体应原样透传JSON: %v", err)
	}
	if _, ok := parsed["weather"]; !ok {
		t.Fatalf("透传内容缺失: %s", body)
	}
}

func TestForecastByCoordinates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") != "39.9" || r.URL.Query().Get("lon") != "116.4" {
			t.Errorf("经纬度参数错误: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"list":[]}`))
	}))
	defer upstream.Close()

	svc := newWeatherService(upstream.URL)
	if _, err := svc.Forecast(context.Background(), "", "39.9", "116.4"); err != nil {
		t.Fatalf("请求失败: %v", err)
	}
}

func TestWeatherMissingLocation(t *testing.T) {
	svc := newWeatherService("http://127.0.0.1:0")

	if _, err := svc.CurrentWeather(context.Background(), "", "", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("缺少位置参数应返回 ErrInvalid, got %v", err)
	}
	// 只有纬度没有经度
	if _, err := svc.Forecast(context.Background(), "", "39.9", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("缺少经度应返回 ErrInvalid, got %v", err)
	}
	if _, err := svc.Geocode(context.Background(), ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("缺少地名应返回 ErrInvalid, got %v", err)
	}
	if _, err := svc.PollutionForecast(context.Background(), "39.9", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("缺少经纬度应返回 ErrInvalid, got %v", err)
	}
}

func TestWeatherUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer upstream.Close()

	svc := newWeatherService(upstream.URL)
	_, err := svc.CurrentWeather(context.Background(), "Beijing", "", "")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("上游失败应返回统一的 ErrUpstream, got %v", err)
	}
	// 不泄露上游错误内容
	if err.Error() != ErrUpstream.Error() {
		t.Fatalf("错误信息不应携带上游内容: %v", err)
	}
}

func TestWeatherUpstreamBadBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer upstream.Close()

	svc := newWeatherService(upstream.URL)
	if _, err := svc.Geocode(context.Background(), "Beijing"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("非JSON响应应返回 ErrUpstream, got %v", err)
	}
}

func TestPollutionForecastPath(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"list":[{"main":{"aqi":2}}]}`))
	}))
	defer upstream.Close()

	svc := newWeatherService(upstream.URL)
	if _, err := svc.PollutionForecast(context.Background(), "39.9", "116.4"); err != nil {
		t.Fatalf("请求失败: %v", err)
	}
	if gotPath != "/data/2.5/air_pollution/forecast" {
		t.Fatalf("上游路径错误: %s", gotPath)
	}
}
