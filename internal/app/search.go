package app

import (
	"context"
	"strings"

	"qpaks/internal/flatpak"
)

// Search queries the configured remotes. A failing flatpak invocation is logged
// and yields no results; only cancellation is reported as an error.
func (a *App) Search(ctx context.Context, query string) ([]flatpak.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}

	a.log.Info("searching", "query", q)
	out, err := a.output(ctx, a.cmds.Search(q))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		a.log.Warn("error during search", "query", q, "err", err)
		return []flatpak.SearchResult{}, nil
	}

	parsed := a.filter.ParseSearch(out)
	results := make([]flatpak.SearchResult, 0, len(parsed))
	for _, r := range parsed {
		if r.Matches(q) {
			results = append(results, r)
		}
	}
	a.log.Debug("search finished", "query", q, "results", len(results))
	return results, nil
}
