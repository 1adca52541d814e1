package ledger

import (
	"strings"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// Search returns the IDs of entries whose type, recipient, or notes contain
// query, case-insensitively. An empty query matches nothing — the caller
// shows the full ledger in that case.
func Search(entries []model.Entry, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var ids []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Type), query) ||
			strings.Contains(strings.ToLower(e.Recipient), query) ||
			strings.Contains(strings.ToLower(e.Notes), query) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
