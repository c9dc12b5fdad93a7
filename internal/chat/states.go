// Package chat routes one request turn through extraction, filter search, or
// hybrid search.
//
// Transition graph:
//
//	Start ──(search=false)──► Extracting ─────────────────► Done
//	  │
//	  └──(search=true)──► DecidingSearchKind ──(text)──► HybridSearch ──► Done
//	                              │
//	                              └──(no text)──► FilterSearch ────────► Done
//
// Guards are pure functions of the turn's flags and text; the machine is
// stateless between turns and every invocation starts at Start.
package chat

import (
	"fmt"
	"strings"

	"github.com/gigwork/jobchat/pkg/models"
)

type State string

const (
	StateStart              State = "Start"
	StateExtracting         State = "Extracting"
	StateDecidingSearchKind State = "DecidingSearchKind"
	StateFilterSearch       State = "FilterSearch"
	StateHybridSearch       State = "HybridSearch"
	StateDone               State = "Done"
)

// Next returns the state following s for the given turn. It is side-effect
// free; Done is terminal.
func Next(s State, t *models.Turn) (State, error) {
	switch s {
	case StateStart:
		if t.Search {
			return StateDecidingSearchKind, nil
		}
		return StateExtracting, nil
	case StateDecidingSearchKind:
		if strings.TrimSpace(t.Text) != "" {
			return StateHybridSearch, nil
		}
		return StateFilterSearch, nil
	case StateExtracting, StateFilterSearch, StateHybridSearch:
		return StateDone, nil
	case StateDone:
		return "", fmt.Errorf("no transition out of terminal state %s", s)
	default:
		return "", fmt.Errorf("unknown state %q", s)
	}
}
