package models

import "github.com/google/uuid"

// SyncOutcome records the result of processing one provider match during a
// sync page. Exactly one of MatchID or Error is meaningful.
type SyncOutcome struct {
	ExternalRef string     `json:"external_ref"`
	MatchID     *uuid.UUID `json:"match_id,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// SyncResult is the aggregate outcome of one sync page. NextCursor is nil
// when the provider reported its final page.
type SyncResult struct {
	Processed  int           `json:"processed"`
	Failed     int           `json:"failed"`
	Matches    []SyncOutcome `json:"matches"`
	NextCursor *string       `json:"next_cursor"`
}
