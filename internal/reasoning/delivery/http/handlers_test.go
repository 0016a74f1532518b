package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/middleware"
	"smartfactory-assistant/internal/reasoning"
	"smartfactory-assistant/pkg/log"
)

type mockUseCase struct {
	verdict semantic.Verdict
	err     error
}

func (m *mockUseCase) MatchIntent(ctx context.Context, req semantic.MatchRequest) (semantic.Verdict, error) {
	return m.verdict, m.err
}

func (m *mockUseCase) ExtractContent(ctx context.Context, req semantic.ExtractRequest) (semantic.ExtractedContent, error) {
	return semantic.ExtractedContent{Content: "Lịch nghỉ lễ", IsPriority: true}, m.err
}

func serve(uc reasoning.UseCase, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/chat"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSemanticMatch(t *testing.T) {
	tests := []struct {
		name        string
		uc          *mockUseCase
		body        string
		wantStatus  int
		wantSuccess bool
		wantID      any
	}{
		{
			name:        "verdict",
			uc:          &mockUseCase{verdict: semantic.Verdict{IntentID: "room_booking_create", Confidence: 0.8}},
			body:        `{"input":"muốn họp","intents":[{"id":"room_booking_create"}],"actorScope":null}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantID:      "room_booking_create",
		},
		{
			name:        "null intent",
			uc:          &mockUseCase{verdict: semantic.Verdict{Confidence: 0.1}},
			body:        `{"input":"thời tiết","intents":[{"id":"room_booking_create"}]}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantID:      nil,
		},
		{
			name:       "bad input",
			uc:         &mockUseCase{err: reasoning.ErrEmptyInput},
			body:       `{"input":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "model failure",
			uc:         &mockUseCase{err: semantic.ErrMalformedResponse},
			body:       `{"input":"muốn họp"}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed body",
			uc:         &mockUseCase{},
			body:       `[`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.uc, "/api/v1/chat/semantic-match", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp struct {
				Success bool           `json:"success"`
				Data    map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Success != tt.wantSuccess {
				t.Errorf("success = %t", resp.Success)
			}
			if !tt.wantSuccess {
				return
			}
			id, present := resp.Data["intentId"]
			if !present || id != tt.wantID {
				t.Errorf("intentId = %v (present %t), want %v", id, present, tt.wantID)
			}
		})
	}
}

func TestExtractContentRoute(t *testing.T) {
	w := serve(&mockUseCase{}, "/api/v1/chat/extract-content", `{"input":"tạo tin tức về lịch nghỉ lễ","intentId":"news_create"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Success bool                      `json:"success"`
		Data    semantic.ExtractedContent `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Data.Content != "Lịch nghỉ lễ" || !resp.Data.IsPriority {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

// The in-process client must understand what this server writes.
func TestRemoteReasonerRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uc := &mockUseCase{verdict: semantic.Verdict{IntentID: "incident_create", Confidence: 0.9, Reason: "máy hỏng"}}
	RegisterRoutes(r.Group("/api/v1/chat"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := semantic.NewRemoteReasoner(log.NewNop(), srv.URL+"/api/v1", srv.Client())
	v, err := client.MatchIntent(context.Background(), semantic.MatchRequest{Input: "máy hỏng", Intents: []semantic.IntentBrief{{ID: "incident_create"}}})
	if err != nil {
		t.Fatalf("MatchIntent: %v", err)
	}
	if v.IntentID != "incident_create" || v.Confidence != 0.9 || v.Reason != "máy hỏng" {
		t.Errorf("verdict = %+v", v)
	}
}
