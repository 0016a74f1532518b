package http

import "smartfactory-assistant/internal/intent/semantic"

// envelope is the reasoning wire format: {success, data} or {success:false, error}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// verdictResp renders "no intent" as a JSON null.
type verdictResp struct {
	IntentID   *string        `json:"intentId"`
	Confidence float64        `json:"confidence"`
	Reason     string         `json:"reason"`
	Params     map[string]any `json:"params,omitempty"`
}

func newVerdictResp(v semantic.Verdict) verdictResp {
	r := verdictResp{
		Confidence: v.Confidence,
		Reason:     v.Reason,
		Params:     v.Params,
	}
	if v.IntentID != "" {
		id := v.IntentID
		r.IntentID = &id
	}
	return r
}
