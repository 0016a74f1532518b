// Package registry loads the static action catalogue and answers read-only
// lookups on it. A Registry never changes after Load returns.
package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

type catalogue struct {
	Version        string                          `yaml:"version"`
	ActionVerbs    []string                        `yaml:"action_verbs"`
	NavigationCues []string                        `yaml:"navigation_cues"`
	Tables         map[string]intent.ValueKeywords `yaml:"tables"`
	Actions        []intent.Action                 `yaml:"actions"`
}

var knownCategories = map[intent.Category]struct{}{
	intent.CategoryNavigation:   {},
	intent.CategoryHelp:         {},
	intent.CategoryRoomBooking:  {},
	intent.CategoryIncident:     {},
	intent.CategoryIdea:         {},
	intent.CategoryNews:         {},
	intent.CategoryNotification: {},
	intent.CategoryQuery:        {},
}

// Registry is the loaded action catalogue.
type Registry struct {
	version        string
	actions        []intent.Action
	index          map[string]int
	patterns       map[string]*regexp.Regexp
	leadIns        map[string][]*regexp.Regexp
	actionVerbs    []string
	navigationCues []string
}

// Default loads the catalogue compiled into the binary.
func Default() (*Registry, error) {
	return Load(defaultCatalogue)
}

// LoadFile loads a catalogue from disk. An empty path means the built-in catalogue.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes and validates a YAML catalogue. Any misconfigured action fails the whole load.
func Load(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat catalogue
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("registry: decode catalogue: %w", err)
	}

	r := &Registry{
		version:        cat.Version,
		actions:        cat.Actions,
		index:          make(map[string]int, len(cat.Actions)),
		patterns:       make(map[string]*regexp.Regexp),
		leadIns:        make(map[string][]*regexp.Regexp),
		actionVerbs:    cat.ActionVerbs,
		navigationCues: cat.NavigationCues,
	}

	for i, a := range cat.Actions {
		if err := r.add(i, a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(i int, a intent.Action) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("registry: action #%d: %w", i, ErrMissingID)
	}
	if _, dup := r.index[a.ID]; dup {
		return fmt.Errorf("registry: action %q: %w", a.ID, ErrDuplicateID)
	}
	if _, ok := knownCategories[a.Category]; !ok {
		return fmt.Errorf("registry: action %q: %w: %q", a.ID, ErrUnknownCategory, a.Category)
	}
	if a.RequiredPermission != "" && !model.IsKnownRole(a.RequiredPermission) {
		return fmt.Errorf("registry: action %q: %w: %q", a.ID, ErrUnknownPermission, a.RequiredPermission)
	}
	if len(a.Keywords) == 0 && len(a.Shortcuts) == 0 && a.Pattern == "" {
		return fmt.Errorf("registry: action %q: %w", a.ID, ErrNoTriggers)
	}
	for _, kw := range append(append([]string{}, a.Keywords...), a.Shortcuts...) {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("registry: action %q: %w", a.ID, ErrEmptyKeyword)
		}
	}

	if a.Pattern != "" {
		re, err := regexp.Compile("(?i)" + a.Pattern)
		if err != nil {
			return fmt.Errorf("registry: action %q: %w: %v", a.ID, ErrBadPattern, err)
		}
		r.patterns[a.ID] = re
	}

	if a.Invocation != nil && a.Invocation.Payload != nil {
		if len(a.Invocation.Payload.LeadIns) == 0 {
			return fmt.Errorf("registry: action %q: %w", a.ID, ErrNoLeadIns)
		}
		for _, p := range a.Invocation.Payload.LeadIns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return fmt.Errorf("registry: action %q: %w: %v", a.ID, ErrBadLeadIn, err)
			}
			r.leadIns[a.ID] = append(r.leadIns[a.ID], re)
		}
	}

	r.index[a.ID] = i
	return nil
}

// Version is the catalogue version string.
func (r *Registry) Version() string { return r.version }

// All returns every action in catalogue order.
func (r *Registry) All() []intent.Action {
	out := make([]intent.Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Get looks an action up by id.
func (r *Registry) Get(id string) (intent.Action, bool) {
	i, ok := r.index[id]
	if !ok {
		return intent.Action{}, false
	}
	return r.actions[i], true
}

// Permitted returns the actions an actor with role may use, in catalogue order.
func (r *Registry) Permitted(role string) []intent.Action {
	out := make([]intent.Action, 0, len(r.actions))
	for _, a := range r.actions {
		if model.Allowed(a.RequiredPermission, role) {
			out = append(out, a)
		}
	}
	return out
}

// Pattern returns the compiled structural pattern of an action, or nil.
func (r *Registry) Pattern(id string) *regexp.Regexp {
	return r.patterns[id]
}

// LeadIns returns the compiled payload lead-in patterns of an action.
func (r *Registry) LeadIns(id string) []*regexp.Regexp {
	return r.leadIns[id]
}

// ActionVerbs lists the words that mark an input as a command.
func (r *Registry) ActionVerbs() []string { return r.actionVerbs }

// NavigationCues lists the words that explicitly ask to open a screen.
func (r *Registry) NavigationCues() []string { return r.navigationCues }
