package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/log"
	"smartfactory-assistant/pkg/response"
)

type stubUseCase struct{}

func (stubUseCase) Resolve(ctx context.Context, sc model.Scope, text string) (*intent.Resolved, error) {
	return nil, nil
}

func (stubUseCase) ResolveHybrid(ctx context.Context, sc model.Scope, text string) (*intent.Resolved, error) {
	return nil, nil
}

func (stubUseCase) ExtractPayload(ctx context.Context, sc model.Scope, input intent.ExtractPayloadInput) (intent.Payload, error) {
	return intent.Payload{}, nil
}

func (stubUseCase) ListActions(ctx context.Context, sc model.Scope) ([]intent.Action, error) {
	return nil, nil
}

func (stubUseCase) Suggest(ctx context.Context, sc model.Scope, input intent.SuggestInput) ([]intent.Suggestion, error) {
	return nil, nil
}

func (stubUseCase) CacheStats(ctx context.Context) intent.CacheStats { return intent.CacheStats{} }
func (stubUseCase) ClearCache(ctx context.Context)                   {}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Port: 8080, Mode: gin.TestMode, IntentUseCase: stubUseCase{}}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, IntentUseCase: stubUseCase{}}, wantErr: true},
		{name: "missing use case", cfg: Config{Port: 8080, Mode: gin.TestMode}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, IntentUseCase: stubUseCase{}})
	if err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]int{
		"/health":                     http.StatusOK,
		"/live":                       http.StatusOK,
		"/api/v1/intent/actions":      http.StatusOK,
		"/api/v1/chat/semantic-match": http.StatusNotFound,
	} {
		method := http.MethodGet
		if path == "/api/v1/chat/semantic-match" {
			method = http.MethodPost
		}
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		if w.Code != want {
			t.Errorf("%s: status %d, want %d", path, w.Code, want)
		}
	}

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	data, _ := resp.Data.(map[string]any)
	if data["service"] != ServiceName {
		t.Errorf("health body = %s", w.Body.String())
	}
}
