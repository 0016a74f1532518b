package http

import (
	"smartfactory-assistant/internal/intent"
)

// --- Request DTOs ---

// resolveReq accepts empty text; the use case answers it with no match.
type resolveReq struct {
	Text string `json:"text"`
}

func (r resolveReq) validate() error { return nil }

// ---

type extractPayloadReq struct {
	Text     string `json:"text"      binding:"required"`
	ActionID string `json:"action_id" binding:"required"`
}

func (r extractPayloadReq) validate() error { return nil }

func (r extractPayloadReq) toInput() intent.ExtractPayloadInput {
	return intent.ExtractPayloadInput{
		Text:     r.Text,
		ActionID: r.ActionID,
	}
}

// ---

type suggestReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=0,max=20"`
}

func (r suggestReq) toInput() intent.SuggestInput {
	return intent.SuggestInput{Query: r.Query, Limit: r.Limit}
}

// --- Response DTOs ---

// resolveResp wraps the decision; Result is null when nothing matched.
type resolveResp struct {
	Matched bool             `json:"matched"`
	Result  *intent.Resolved `json:"result"`
}

func (h *handler) newResolveResp(res *intent.Resolved) resolveResp {
	return resolveResp{Matched: res != nil, Result: res}
}

type actionResp struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           intent.Category `json:"category"`
	Route              string          `json:"route,omitempty"`
	Examples           []string        `json:"examples,omitempty"`
	RequiredPermission string          `json:"required_permission,omitempty"`
	TakesPayload       bool            `json:"takes_payload"`
}

type listActionsResp struct {
	Actions []actionResp `json:"actions"`
	Total   int          `json:"total"`
}

func (h *handler) newListActionsResp(actions []intent.Action) listActionsResp {
	out := make([]actionResp, len(actions))
	for i, a := range actions {
		out[i] = actionResp{
			ID:                 a.ID,
			Name:               a.Name,
			Description:        a.Description,
			Category:           a.Category,
			Route:              a.Route,
			Examples:           a.Examples,
			RequiredPermission: a.RequiredPermission,
			TakesPayload:       a.Invocation != nil && a.Invocation.Payload != nil,
		}
	}
	return listActionsResp{Actions: out, Total: len(out)}
}

type suggestResp struct {
	Suggestions []intent.Suggestion `json:"suggestions"`
}

func (h *handler) newSuggestResp(s []intent.Suggestion) suggestResp {
	if s == nil {
		s = []intent.Suggestion{}
	}
	return suggestResp{Suggestions: s}
}
