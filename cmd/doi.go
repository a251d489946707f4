package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/datacite/datacite"
	"github.com/s0up4200/datacite/filter"
	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/operations"
	"github.com/s0up4200/datacite/requests"
)

// doiListFlags holds the flags of the doi list command
type doiListFlags struct {
	query          string
	clientIDs      []string
	providerIDs    []string
	prefixes       []string
	states         []string
	resourceTypeID []string
	created        []int
	registered     []int
	sort           string
	desc           bool
	pageSize       int
	all            bool
	filterExpr     string
	preset         string
	limit          int
}

var (
	listFlags doiListFlags

	affiliation bool
	publisher   bool

	activitiesPage     int
	activitiesPageSize int

	inputFile string
	eventName string
	noConfirm bool
)

// doiCmd groups the DOI commands
var doiCmd = &cobra.Command{
	Use:   "doi",
	Short: "Search, inspect and manage DOIs",
}

var doiGetCmd = &cobra.Command{
	Use:   "get <doi>...",
	Short: "Show one or more DOIs",
	Long: `Fetch DOIs by identifier. Several DOIs are fetched concurrently, up to
client.concurrency requests at a time.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDOIGet,
}

var doiListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search DOIs",
	Long: `Search DOIs with the server-side filters below, optionally narrowed further
with a filter expression evaluated locally against each record.

Filter expressions use the expr language, e.g.:
  --filter 'resourceTypeGeneral == "Dataset" and citationCount > 10'
  --filter 'hasSubject("climate") and publicationYear >= 2020'
  --filter 'title contains "Schema" and created > yearsAgo(2)'

Use --all to follow cursor pagination through every result page.`,
	Args: cobra.NoArgs,
	RunE: runDOIList,
}

var doiActivitiesCmd = &cobra.Command{
	Use:   "activities <doi>",
	Short: "Show the change history of a DOI",
	Args:  cobra.ExactArgs(1),
	RunE:  runDOIActivities,
}

var doiCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a DOI from a JSON or YAML file (member only)",
	Long: `Create a DOI from a JSON or YAML file holding the DOI attributes.
Without an event the DOI is created as a draft. With --dry-run the request
body is printed instead of sent.`,
	Args: cobra.NoArgs,
	RunE: runDOICreate,
}

var doiUpdateCmd = &cobra.Command{
	Use:   "update <doi>",
	Short: "Update a DOI from a JSON or YAML file (member only)",
	Long: `Update a DOI with the attributes in a JSON or YAML file, or only change its
state with --event (publish, register or hide).`,
	Args: cobra.ExactArgs(1),
	RunE: runDOIUpdate,
}

var doiDeleteCmd = &cobra.Command{
	Use:   "delete <doi>...",
	Short: "Delete draft DOIs (member only)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDOIDelete,
}

func init() {
	rootCmd.AddCommand(doiCmd)
	doiCmd.AddCommand(doiGetCmd, doiListCmd, doiActivitiesCmd, doiCreateCmd, doiUpdateCmd, doiDeleteCmd)

	doiGetCmd.Flags().BoolVar(&affiliation, "affiliation", false, "include affiliation identifiers")
	doiGetCmd.Flags().BoolVar(&publisher, "publisher", false, "return the publisher as an object")

	f := doiListCmd.Flags()
	f.StringVarP(&listFlags.query, "query", "q", "", "Elasticsearch query string")
	f.StringSliceVar(&listFlags.clientIDs, "client-id", nil, "repository ids")
	f.StringSliceVar(&listFlags.providerIDs, "provider-id", nil, "provider ids")
	f.StringSliceVar(&listFlags.prefixes, "prefix", nil, "DOI prefixes")
	f.StringSliceVar(&listFlags.states, "state", nil, "states (draft, registered, findable; member only for the first two)")
	f.StringSliceVar(&listFlags.resourceTypeID, "resource-type-id", nil, "resource types, e.g. dataset")
	f.IntSliceVar(&listFlags.created, "created", nil, "creation years")
	f.IntSliceVar(&listFlags.registered, "registered", nil, "registration years")
	f.StringVar(&listFlags.sort, "sort", "", "sort field ("+sortNames()+")")
	f.BoolVar(&listFlags.desc, "desc", false, "sort descending")
	f.IntVar(&listFlags.pageSize, "page-size", 0, "results per page (default from client.page_size)")
	f.BoolVar(&listFlags.all, "all", false, "harvest every page with cursor pagination")
	f.StringVarP(&listFlags.filterExpr, "filter", "f", "", "filter expression evaluated on each record")
	f.StringVarP(&listFlags.preset, "preset", "p", "", "use a preset filter from config")
	f.IntVar(&listFlags.limit, "limit", 0, "stop after this many matching records")
	doiListCmd.MarkFlagsMutuallyExclusive("filter", "preset")

	doiActivitiesCmd.Flags().IntVar(&activitiesPage, "page", 0, "page number")
	doiActivitiesCmd.Flags().IntVar(&activitiesPageSize, "page-size", 0, "activities per page")

	doiCreateCmd.Flags().StringVar(&inputFile, "file", "", "JSON or YAML file with the DOI attributes")
	doiCreateCmd.Flags().StringVar(&eventName, "event", "", "state event: publish, register or hide")
	_ = doiCreateCmd.MarkFlagRequired("file")

	doiUpdateCmd.Flags().StringVar(&inputFile, "file", "", "JSON or YAML file with the changed attributes")
	doiUpdateCmd.Flags().StringVar(&eventName, "event", "", "state event: publish, register or hide")

	doiDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func sortNames() string {
	opts := requests.SortOptions()
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.String()
	}
	return strings.Join(names, ", ")
}

func runDOIGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := newOutputPrinter(cmd)

	if len(args) == 1 {
		req := requests.NewGetDOI(args[0]).WithAffiliation(affiliation).WithPublisher(publisher)
		doi, err := client.GetDOI(ctx, req)
		if err != nil {
			return err
		}
		return out.DOIs([]metadata.DOIData{*doi})
	}

	result := ops.FetchDOIs(ctx, args, operations.FetchOptions{
		Affiliation: affiliation,
		Publisher:   publisher,
	})
	if err := out.DOIs(result.DOIs); err != nil {
		return err
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("failed to fetch %d of %d DOIs", len(result.Failed), result.Requested)
	}
	return nil
}

// buildListRequest turns the list flags into a ListDOIs request
func buildListRequest(flags doiListFlags, defaultPageSize int) (requests.ListDOIs, error) {
	req := requests.NewListDOIs()

	if flags.query != "" {
		req = req.WithQueryString(flags.query)
	}
	if len(flags.clientIDs) > 0 {
		req = req.WithClientID(flags.clientIDs...)
	}
	if len(flags.providerIDs) > 0 {
		req = req.WithProviderID(flags.providerIDs...)
	}
	if len(flags.prefixes) > 0 {
		req = req.WithPrefix(flags.prefixes...)
	}
	if len(flags.states) > 0 {
		states := make([]metadata.DOIState, len(flags.states))
		for i, s := range flags.states {
			state, err := metadata.ParseDOIState(s)
			if err != nil {
				return req, fmt.Errorf("invalid --state: %w", err)
			}
			states[i] = state
		}
		req = req.WithState(states...)
	}
	if len(flags.resourceTypeID) > 0 {
		req = req.WithResourceTypeID(flags.resourceTypeID...)
	}
	if len(flags.created) > 0 {
		req = req.WithCreated(flags.created...)
	}
	if len(flags.registered) > 0 {
		req = req.WithRegistered(flags.registered...)
	}
	if flags.sort != "" {
		opt, err := requests.ParseSortOption(flags.sort)
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
	if flags.all {
		req = req.WithCursor("1")
	}

	return req, req.Err()
}

// resolveFilter returns the filter selected by --filter or --preset, or nil
func resolveFilter(manager *filter.Manager, expression, preset string) (filter.Filter, error) {
	switch {
	case expression != "":
		f, err := manager.Compile(expression)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	case preset != "":
		f, ok := manager.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return f, nil
	default:
		return nil, nil
	}
}

func runDOIList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, err := buildListRequest(listFlags, cfg.Client.PageSize)
	if err != nil {
		return err
	}

	f, err := resolveFilter(filters, listFlags.filterExpr, listFlags.preset)
	if err != nil {
		return err
	}

	var dois []metadata.DOIData
	if listFlags.all {
		dois, err = ops.SearchDOIs(ctx, req, f, listFlags.limit)
		if err != nil {
			return err
		}
	} else {
		list, err := client.ListDOIs(ctx, req)
		if err != nil {
			return err
		}
		dois = list.Data
		if f != nil {
			dois = filter.Apply(f, dois)
		}
		if listFlags.limit > 0 && len(dois) > listFlags.limit {
			dois = dois[:listFlags.limit]
		}
		logger.Info().
			Int("total", list.Meta.Total).
			Int("shown", len(dois)).
			Bool("has_next", list.Links.HasNext()).
			Msg("Listed DOIs")
	}

	return newOutputPrinter(cmd).DOIs(dois)
}

func runDOIActivities(cmd *cobra.Command, args []string) error {
	req := requests.NewGetDOIActivities(args[0])
	if activitiesPage > 0 {
		req = req.WithPage(activitiesPage)
	}
	if activitiesPageSize > 0 {
		req = req.WithPageSize(activitiesPageSize)
	}

	activities, err := client.GetDOIActivities(cmd.Context(), req)
	if err != nil {
		return err
	}
	return newOutputPrinter(cmd).Activities(activities.Data)
}

func parseEvent(name string) (metadata.DOIEvent, error) {
	if name == "" {
		return "", nil
	}
	event, err := metadata.ParseDOIEvent(name)
	if err != nil {
		return "", fmt.Errorf("invalid --event: %w", err)
	}
	return event, nil
}

func runDOICreate(cmd *cobra.Command, args []string) error {
	var input metadata.CreateDOIInput
	if err := readInputFile(inputFile, &input); err != nil {
		return err
	}

	event, err := parseEvent(eventName)
	if err != nil {
		return err
	}
	if event != "" {
		input.Event = event
	}

	req := requests.NewCreateDOI(input)

	if cfg.Safety.DryRun {
		body, err := req.Body()
		if err != nil {
			return err
		}
		logger.Info().Msg("DRY RUN MODE - DOI will not be created")
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return nil
	}

	doi, err := client.CreateDOI(cmd.Context(), req)
	if err != nil {
		return err
	}
	return newOutputPrinter(cmd).DOIs([]metadata.DOIData{*doi})
}

func runDOIUpdate(cmd *cobra.Command, args []string) error {
	if inputFile == "" && eventName == "" {
		return fmt.Errorf("either --file or --event is required")
	}

	var input metadata.DOIInput
	if inputFile != "" {
		if err := readInputFile(inputFile, &input); err != nil {
			return err
		}
	}

	event, err := parseEvent(eventName)
	if err != nil {
		return err
	}
	if event != "" {
		input.Event = event
	}

	req := requests.NewUpdateDOI(args[0], input)

	if cfg.Safety.DryRun {
		body, err := req.Body()
		if err != nil {
			return err
		}
		logger.Info().Str("doi", args[0]).Msg("DRY RUN MODE - DOI will not be updated")
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return nil
	}

	doi, err := client.UpdateDOI(cmd.Context(), req)
	if err != nil {
		return err
	}
	return newOutputPrinter(cmd).DOIs([]metadata.DOIData{*doi})
}

func runDOIDelete(cmd *cobra.Command, args []string) error {
	if client.Mode() != datacite.ModeMember && !cfg.Safety.DryRun {
		return fmt.Errorf("deleting DOIs requires member credentials (datacite.mode: member)")
	}

	_, err := ops.DeleteDOIs(cmd.Context(), args, operations.DeleteOptions{
		DryRun:        cfg.Safety.DryRun,
		ConfirmDelete: cfg.Safety.ConfirmDelete && !noConfirm,
	})
	return err
}
