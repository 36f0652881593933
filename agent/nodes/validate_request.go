package turnnode

import (
	"strings"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	conversationx "github.com/kritsada/helpdesk-agent/agent/conversation"
)

// ValidateRequest checks the incoming turn. Blank input is allowed (the
// console front end filters it, but a direct caller must not crash); only
// a missing session id rejects the turn.
func ValidateRequest(in GraphInput) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, contractx.ErrInvalidSession
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      in.Text,
	}, nil
}

// LoadSession attaches the session history, creating it on first contact.
func LoadSession(in *GraphState, store conversationx.Store) (*GraphState, error) {
	session, err := store.LoadOrCreate(in.SessionID)
	if err != nil {
		return nil, err
	}
	in.Session = session
	return in, nil
}

// AppendUserTurn records the incoming user turn in the session history.
func AppendUserTurn(in *GraphState) (*GraphState, error) {
	in.Session.Append(contractx.UserTurn(in.Text))
	return in, nil
}
