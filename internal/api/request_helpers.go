package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/sarisari-api/internal/domain"
)

// idParam is the chi URL parameter holding a record id.
const idParam = "id"

// getPathID extracts a record id from the URL path parameters. Only plain
// decimal digits are accepted; anything else is domain.ErrInvalidID, which
// handlers report as a missing record.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idParam)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, idParam)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}
