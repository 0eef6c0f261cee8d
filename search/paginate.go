package search

import (
	"context"

	"c2cq/doc"

	"github.com/hauke96/sigolo/v2"
)

const DefaultPageSize = 100

// PageFetch fetches one page of at most limit documents starting at offset.
// It must be idempotent per (query, offset, limit) pair for the pagination to
// be correct.
type PageFetch func(ctx context.Context, query map[string]string, offset int, limit int) (*doc.Page, error)

type paginationState int

// The pagination loop is a small state machine so that each termination
// condition can be checked (and tested) on its own instead of being buried in
// loop conditions.
const (
	stateRequestPage paginationState = iota
	stateAccumulate
	stateCheckStop
	stateDone
)

// fetchAll drives the page fetch with increasing offsets and concatenates the
// returned documents in page order. It stops when a page comes back empty,
// when the reported total has been consumed, when maxItems documents have
// been accumulated, or when a page is shorter than requested. A short page is
// authoritative: it ends the pagination even if the reported total claims
// more data. maxItems <= 0 means no cap. A failed fetch aborts the whole
// call, no partial result is returned.
func fetchAll(ctx context.Context, fetch PageFetch, query map[string]string, pageSize int, maxItems int) ([]doc.Document, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var accumulated []doc.Document
	var page *doc.Page
	offset := 0
	requestedLimit := 0

	state := stateRequestPage
	for state != stateDone {
		switch state {
		case stateRequestPage:
			requestedLimit = pageSize
			if maxItems > 0 && maxItems-len(accumulated) < requestedLimit {
				requestedLimit = maxItems - len(accumulated)
			}

			var err error
			page, err = fetch(ctx, query, offset, requestedLimit)
			if err != nil {
				return nil, err
			}
			state = stateAccumulate
		case stateAccumulate:
			accumulated = append(accumulated, page.Documents...)
			// Advance by the number of documents actually received, not by
			// the requested limit. A server returning short pages must not
			// cause skipped or duplicated fetches.
			offset += len(page.Documents)
			sigolo.Tracef("Received %d documents, offset is now %d", len(page.Documents), offset)
			state = stateCheckStop
		case stateCheckStop:
			switch {
			case len(page.Documents) == 0:
				state = stateDone
			case maxItems > 0 && len(accumulated) >= maxItems:
				state = stateDone
			case len(page.Documents) < requestedLimit:
				state = stateDone
			case page.Total != doc.TotalUnknown && offset >= page.Total:
				state = stateDone
			default:
				state = stateRequestPage
			}
		}
	}

	sigolo.Debugf("Fetched %d documents in total", len(accumulated))
	return accumulated, nil
}
