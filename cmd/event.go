package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

// eventListFlags holds the flags of the event list command
type eventListFlags struct {
	query          string
	doi            string
	subjID         string
	objID          string
	prefixes       []string
	sourceIDs      []string
	relationTypeID []string
	yearMonth      string
	sort           string
	desc           bool
	pageSize       int
	all            bool
	limit          int
}

var eventFlags eventListFlags

// eventCmd groups the event commands
var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Inspect usage and citation events",
}

var eventGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventGet,
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search events",
	Long: `Search events linking DOIs to other works, e.g. citations from Crossref:
  datacite event list --doi 10.5438/0012 --source-id crossref --relation-type-id references`,
	Args: cobra.NoArgs,
	RunE: runEventList,
}

func init() {
	rootCmd.AddCommand(eventCmd)
	eventCmd.AddCommand(eventGetCmd, eventListCmd)

	f := eventListCmd.Flags()
	f.StringVarP(&eventFlags.query, "query", "q", "", "query string")
	f.StringVar(&eventFlags.doi, "doi", "", "events with this DOI as subject or object")
	f.StringVar(&eventFlags.subjID, "subj-id", "", "subject identifier")
	f.StringVar(&eventFlags.objID, "obj-id", "", "object identifier")
	f.StringSliceVar(&eventFlags.prefixes, "prefix", nil, "DOI prefixes")
	f.StringSliceVar(&eventFlags.sourceIDs, "source-id", nil, "event sources, e.g. crossref, datacite-usage")
	f.StringSliceVar(&eventFlags.relationTypeID, "relation-type-id", nil, "relation types, e.g. references, is-cited-by")
	f.StringVar(&eventFlags.yearMonth, "year-month", "", "occurrence month as YYYY-MM")
	f.StringVar(&eventFlags.sort, "sort", "", "sort field (relevance, obj-id, total, created, updated)")
	f.BoolVar(&eventFlags.desc, "desc", false, "sort descending")
	f.IntVar(&eventFlags.pageSize, "page-size", 0, "results per page (default from client.page_size)")
	f.BoolVar(&eventFlags.all, "all", false, "harvest every page with cursor pagination")
	f.IntVar(&eventFlags.limit, "limit", 0, "stop after this many events")
}

func runEventGet(cmd *cobra.Command, args []string) error {
	event, err := client.GetEvent(cmd.Context(), requests.NewGetEvent(args[0]))
	if err != nil {
		return err
	}
	return newOutputPrinter(cmd).Events([]metadata.EventData{*event})
}

// buildEventRequest turns the event list flags into a ListEvents request
func buildEventRequest(flags eventListFlags, defaultPageSize int) (requests.ListEvents, error) {
	req := requests.NewListEvents()

	if flags.query != "" {
		req = req.WithQuery(flags.query)
	}
	if flags.doi != "" {
		req = req.WithDOI(flags.doi)
	}
	if flags.subjID != "" {
		req = req.WithSubjID(flags.subjID)
	}
	if flags.objID != "" {
		req = req.WithObjID(flags.objID)
	}
	if len(flags.prefixes) > 0 {
		req = req.WithPrefix(flags.prefixes...)
	}
	if len(flags.sourceIDs) > 0 {
		sources := make([]metadata.EventSource, len(flags.sourceIDs))
		for i, s := range flags.sourceIDs {
			source, err := metadata.ParseEventSource(s)
			if err != nil {
				return req, fmt.Errorf("invalid --source-id: %w", err)
			}
			sources[i] = source
		}
		req = req.WithSourceID(sources...)
	}
	if len(flags.relationTypeID) > 0 {
		types := make([]metadata.EventRelationType, len(flags.relationTypeID))
		for i, s := range flags.relationTypeID {
			relationType, err := metadata.ParseEventRelationType(s)
			if err != nil {
				return req, fmt.Errorf("invalid --relation-type-id: %w", err)
			}
			types[i] = relationType
		}
		req = req.WithRelationTypeID(types...)
	}
	if flags.yearMonth != "" {
		req = req.WithYearMonth(flags.yearMonth)
	}
	if flags.sort != "" {
		opt, err := requests.ParseEventSortOption(flags.sort)
		if err != nil {
			return req, fmt.Errorf("invalid --sort: %w", err)
		}
		if flags.desc {
			req = req.WithSortDesc(opt)
		} else {
			req = req.WithSortAsc(opt)
		}
	}

	pageSize := flags.pageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize != 0 {
		req = req.WithPageSize(pageSize)
	}

	return req, req.Err()
}

func runEventList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, err := buildEventRequest(eventFlags, cfg.Client.PageSize)
	if err != nil {
		return err
	}

	var events []metadata.EventData
	if eventFlags.all {
		_, err := ops.HarvestEvents(ctx, req, eventFlags.limit, func(e metadata.EventData) error {
			events = append(events, e)
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		list, err := client.ListEvents(ctx, req)
		if err != nil {
			return err
		}
		events = list.Data
		if eventFlags.limit > 0 && len(events) > eventFlags.limit {
			events = events[:eventFlags.limit]
		}
		logger.Info().
			Int("total", list.Meta.Total).
			Int("shown", len(events)).
			Msg("Listed events")
	}

	return newOutputPrinter(cmd).Events(events)
}
