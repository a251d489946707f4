package operations

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

// FetchOptions selects the optional parts of each fetched record
type FetchOptions struct {
	Affiliation bool
	Publisher   bool
}

// FetchResult contains the results of a concurrent fetch
type FetchResult struct {
	Requested int
	DOIs      []metadata.DOIData // input order, failures left out
	Failed    []FetchError
}

// FetchError contains information about a DOI that could not be fetched
type FetchError struct {
	DOI string
	Err error
}

// Error implements the error interface
func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch DOI %s: %v", e.DOI, e.Err)
}

func (e FetchError) Unwrap() error {
	return e.Err
}

// FetchDOIs retrieves several DOIs concurrently. A failing DOI does not stop the others.
func (o *Operations) FetchDOIs(ctx context.Context, ids []string, opts FetchOptions) FetchResult {
	result := FetchResult{
		Requested: len(ids),
	}

	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	// each goroutine owns one slot, so no locking is needed
	records := make([]*metadata.DOIData, len(ids))
	errs := make([]error, len(ids))

	for i, id := range ids {
		g.Go(func() error {
			req := requests.NewGetDOI(id).
				WithAffiliation(opts.Affiliation).
				WithPublisher(opts.Publisher)

			doi, err := o.api.GetDOI(ctx, req)
			if err == nil && doi == nil {
				err = ErrNoRecord
			}
			if err != nil {
				o.logger.Warn().
					Err(err).
					Str("doi", id).
					Msg("Failed to get DOI")
				errs[i] = err
				return nil
			}

			records[i] = doi
			return nil
		})
	}

	_ = g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, FetchError{DOI: id, Err: errs[i]})
			continue
		}
		result.DOIs = append(result.DOIs, *records[i])
	}

	return result
}

// BatchDeleteResult contains the results of a batch delete operation
type BatchDeleteResult struct {
	Requested  int
	Successful []string
	Failed     []DeleteError
}

// DeleteError contains information about a failed delete operation
type DeleteError struct {
	DOI string
	Err error
}

// Error implements the error interface
func (e DeleteError) Error() string {
	return fmt.Sprintf("failed to delete DOI %s: %v", e.DOI, e.Err)
}

func (e DeleteError) Unwrap() error {
	return e.Err
}

// BatchDeleteDOIs deletes DOIs concurrently with proper error aggregation.
// Successful and Failed keep the input order.
func (o *Operations) BatchDeleteDOIs(ctx context.Context, ids []string) BatchDeleteResult {
	result := BatchDeleteResult{
		Requested: len(ids),
	}

	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	errs := make([]error, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			errs[i] = o.api.DeleteDOI(ctx, requests.NewDeleteDOI(id))
			return nil
		})
	}

	_ = g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, DeleteError{DOI: id, Err: errs[i]})
			continue
		}
		result.Successful = append(result.Successful, id)
	}

	return result
}
