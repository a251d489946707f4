package operations

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/datacite/datacite"
	"github.com/s0up4200/datacite/filter"
	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

// DefaultConcurrency is the number of requests FetchDOIs and DeleteDOIs run at once
const DefaultConcurrency = 5

var (
	// ErrStop can be returned from a harvest callback to end the harvest early without error
	ErrStop = errors.New("stop harvest")
	// ErrNoRecord is recorded for a fetch that returned neither a DOI nor an error
	ErrNoRecord = errors.New("no DOI returned")
)

// DeleteOptions contains options for deleting DOIs
type DeleteOptions struct {
	DryRun        bool
	ConfirmDelete bool
}

// Operations runs multi-request workflows on top of a DataCite API
type Operations struct {
	api         datacite.API
	logger      zerolog.Logger
	concurrency int
	formatter   *ConsoleFormatter
	out         io.Writer
	in          io.Reader
}

// Option configures Operations
type Option func(*Operations)

// WithConcurrency sets how many requests the batch operations run at once
func WithConcurrency(n int) Option {
	return func(o *Operations) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithOutput sets where dry runs and confirmation prompts are written
func WithOutput(w io.Writer) Option {
	return func(o *Operations) {
		o.out = w
	}
}

// WithInput sets where confirmation answers are read from
func WithInput(r io.Reader) Option {
	return func(o *Operations) {
		o.in = r
	}
}

// NewOperations creates a new Operations instance
func NewOperations(api datacite.API, logger zerolog.Logger, opts ...Option) *Operations {
	o := &Operations{
		api:         api,
		logger:      logger,
		concurrency: DefaultConcurrency,
		formatter:   NewConsoleFormatter(),
		out:         os.Stdout,
		in:          os.Stdin,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Formatter returns the console formatter used for dry runs
func (o *Operations) Formatter() *ConsoleFormatter {
	return o.formatter
}

// HarvestDOIs pages through a DOI search with cursor pagination and calls fn for
// every record, until the results run out or limit records were passed to fn.
// A limit of zero or less means no limit. It returns the number of records seen.
func (o *Operations) HarvestDOIs(ctx context.Context, req requests.ListDOIs, limit int, fn func(metadata.DOIData) error) (int, error) {
	if req.Cursor() == "" {
		req = req.WithCursor("1")
	}

	seen := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return seen, err
		}

		list, err := o.api.ListDOIs(ctx, req)
		if err != nil {
			return seen, fmt.Errorf("failed to harvest DOIs: %w", err)
		}

		o.logger.Debug().
			Int("page", page).
			Int("records", len(list.Data)).
			Int("total", list.Meta.Total).
			Msg("Harvested DOI page")

		for _, doi := range list.Data {
			if err := fn(doi); err != nil {
				if errors.Is(err, ErrStop) {
					return seen, nil
				}
				return seen, err
			}
			seen++
			if limit > 0 && seen >= limit {
				return seen, nil
			}
		}

		next := list.Links.NextCursor()
		if next == "" || len(list.Data) == 0 || next == req.Cursor() {
			return seen, nil
		}
		req = req.WithCursor(next)
	}
}

// SearchDOIs harvests a DOI search and keeps the records f accepts, up to limit
// matches. A nil filter accepts everything.
func (o *Operations) SearchDOIs(ctx context.Context, req requests.ListDOIs, f filter.Filter, limit int) ([]metadata.DOIData, error) {
	if f == nil {
		f = filter.All
	}

	var results []metadata.DOIData
	scanned, err := o.HarvestDOIs(ctx, req, 0, func(doi metadata.DOIData) error {
		if !f.Evaluate(doi) {
			return nil
		}
		results = append(results, doi)
		if limit > 0 && len(results) >= limit {
			return ErrStop
		}
		return nil
	})
	if err != nil {
		return results, err
	}

	o.logger.Info().
		Int("scanned", scanned).
		Int("matched", len(results)).
		Msgf("Found %d DOIs matching filter", len(results))
	return results, nil
}

// HarvestEvents pages through an event search with cursor pagination, like HarvestDOIs
func (o *Operations) HarvestEvents(ctx context.Context, req requests.ListEvents, limit int, fn func(metadata.EventData) error) (int, error) {
	if req.Cursor() == "" {
		req = req.WithCursor("1")
	}

	seen := 0
	for {
		if err := ctx.Err(); err != nil {
			return seen, err
		}

		list, err := o.api.ListEvents(ctx, req)
		if err != nil {
			return seen, fmt.Errorf("failed to harvest events: %w", err)
		}

		for _, event := range list.Data {
			if err := fn(event); err != nil {
				if errors.Is(err, ErrStop) {
					return seen, nil
				}
				return seen, err
			}
			seen++
			if limit > 0 && seen >= limit {
				return seen, nil
			}
		}

		next := list.Links.NextCursor()
		if next == "" || len(list.Data) == 0 || next == req.Cursor() {
			return seen, nil
		}
		req = req.WithCursor(next)
	}
}

// DeleteDOIs deletes draft DOIs. A dry run only prints what would be deleted.
func (o *Operations) DeleteDOIs(ctx context.Context, ids []string, opts DeleteOptions) (BatchDeleteResult, error) {
	if len(ids) == 0 {
		o.logger.Info().Msg("No DOIs to delete")
		return BatchDeleteResult{}, nil
	}

	if opts.DryRun {
		o.logger.Info().Msg("DRY RUN MODE - No DOIs will be deleted")
		fmt.Fprint(o.out, o.formatter.FormatDOIsToDelete(ids))
		return BatchDeleteResult{Requested: len(ids)}, nil
	}

	if opts.ConfirmDelete {
		fmt.Fprint(o.out, o.formatter.FormatDOIsToDelete(ids))
		if !o.confirmDeletion(len(ids)) {
			o.logger.Info().Msg("Deletion cancelled by user")
			return BatchDeleteResult{Requested: len(ids)}, nil
		}
	}

	result := o.BatchDeleteDOIs(ctx, ids)

	o.logger.Info().
		Int("deleted", len(result.Successful)).
		Int("failed", len(result.Failed)).
		Msg("Deletion complete")

	for _, failure := range result.Failed {
		o.logger.Error().
			Err(failure.Err).
			Str("doi", failure.DOI).
			Msg("Failed to delete DOI")
	}

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("failed to delete %d DOIs", len(result.Failed))
	}

	return result, nil
}

// confirmDeletion prompts the user for confirmation
func (o *Operations) confirmDeletion(count int) bool {
	fmt.Fprintf(o.out, "\nAre you sure you want to delete %d DOI(s)? [y/N]: ", count)

	response, _ := bufio.NewReader(o.in).ReadString('\n')
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
