package operations

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/s0up4200/datacite/datacite"
	"github.com/s0up4200/datacite/datacite/mocks"
	"github.com/s0up4200/datacite/filter"
	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

func newTestOperations(t *testing.T, opts ...Option) (*Operations, *mocks.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	return NewOperations(api, zerolog.Nop(), opts...), api
}

func doi(id string, citations int) metadata.DOIData {
	return metadata.DOIData{
		ID:   id,
		Type: "dois",
		Attributes: metadata.DOIAttributes{
			DOI:           id,
			Titles:        []metadata.Title{{Title: "Record " + id}},
			State:         metadata.DOIStateFindable,
			CitationCount: citations,
		},
	}
}

func page(next string, dois ...metadata.DOIData) *metadata.ListDOIData {
	return &metadata.ListDOIData{
		Data:  dois,
		Meta:  metadata.ListMeta{Total: 5},
		Links: metadata.ListLinks{Next: next},
	}
}

const nextLink = "https://api.datacite.org/dois?page%5Bcursor%5D="

func expectPages(api *mocks.MockAPI, t *testing.T) {
	pages := map[string]*metadata.ListDOIData{
		"1":  page(nextLink+"c2", doi("10.1/a", 0), doi("10.1/b", 2)),
		"c2": page(nextLink+"c3", doi("10.1/c", 1), doi("10.1/d", 0)),
		"c3": page("", doi("10.1/e", 4)),
	}
	api.EXPECT().
		ListDOIs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req requests.ListDOIs) (*metadata.ListDOIData, error) {
			p, ok := pages[req.Cursor()]
			if !assert.True(t, ok, "unexpected cursor %q", req.Cursor()) {
				return nil, errors.New("unexpected cursor")
			}
			return p, nil
		}).
		AnyTimes()
}

func TestHarvestDOIs(t *testing.T) {
	ops, api := newTestOperations(t)
	expectPages(api, t)

	var ids []string
	seen, err := ops.HarvestDOIs(context.Background(), requests.NewListDOIs().WithPageSize(2), 0, func(d metadata.DOIData) error {
		ids = append(ids, d.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
	assert.Equal(t, []string{"10.1/a", "10.1/b", "10.1/c", "10.1/d", "10.1/e"}, ids)
}

func TestHarvestDOIsLimit(t *testing.T) {
	ops, api := newTestOperations(t)
	expectPages(api, t)

	var ids []string
	seen, err := ops.HarvestDOIs(context.Background(), requests.NewListDOIs(), 3, func(d metadata.DOIData) error {
		ids = append(ids, d.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
	assert.Equal(t, []string{"10.1/a", "10.1/b", "10.1/c"}, ids)
}

func TestHarvestDOIsCallbackError(t *testing.T) {
	ops, api := newTestOperations(t)
	expectPages(api, t)

	boom := errors.New("boom")
	seen, err := ops.HarvestDOIs(context.Background(), requests.NewListDOIs(), 0, func(d metadata.DOIData) error {
		if d.ID == "10.1/b" {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, seen)
}

func TestHarvestDOIsAPIError(t *testing.T) {
	ops, api := newTestOperations(t)

	apiErr := &datacite.APIError{StatusCode: 500, Message: "Internal Server Error"}
	api.EXPECT().ListDOIs(gomock.Any(), gomock.Any()).Return(nil, apiErr)

	_, err := ops.HarvestDOIs(context.Background(), requests.NewListDOIs(), 0, func(metadata.DOIData) error { return nil })
	require.Error(t, err)

	var target *datacite.APIError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 500, target.StatusCode)
	assert.Contains(t, err.Error(), "failed to harvest DOIs")
}

func TestHarvestDOIsStopsOnRepeatedCursor(t *testing.T) {
	ops, api := newTestOperations(t)

	api.EXPECT().
		ListDOIs(gomock.Any(), gomock.Any()).
		Return(page(nextLink+"1", doi("10.1/a", 0)), nil).
		Times(1)

	seen, err := ops.HarvestDOIs(context.Background(), requests.NewListDOIs(), 0, func(metadata.DOIData) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestHarvestDOIsCancelled(t *testing.T) {
	ops, _ := newTestOperations(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ops.HarvestDOIs(ctx, requests.NewListDOIs(), 0, func(metadata.DOIData) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchDOIs(t *testing.T) {
	ops, api := newTestOperations(t)
	expectPages(api, t)

	f, err := filter.NewExprCompiler().Compile(`citationCount > 0`)
	require.NoError(t, err)

	results, err := ops.SearchDOIs(context.Background(), requests.NewListDOIs(), f, 0)
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"10.1/b", "10.1/c", "10.1/e"}, ids)
}

func TestSearchDOIsLimitAndNilFilter(t *testing.T) {
	ops, api := newTestOperations(t)
	expectPages(api, t)

	results, err := ops.SearchDOIs(context.Background(), requests.NewListDOIs(), nil, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "10.1/a", results[0].ID)
	assert.Equal(t, "10.1/b", results[1].ID)
}

func TestHarvestEvents(t *testing.T) {
	ops, api := newTestOperations(t)

	gomock.InOrder(
		api.EXPECT().
			ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req requests.ListEvents) (*metadata.ListEventData, error) {
				assert.Equal(t, "1", req.Cursor())
				return &metadata.ListEventData{
					Data:  []metadata.EventData{{ID: "e1"}, {ID: "e2"}},
					Links: metadata.ListLinks{Next: "https://api.datacite.org/events?page%5Bcursor%5D=next"},
				}, nil
			}),
		api.EXPECT().
			ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req requests.ListEvents) (*metadata.ListEventData, error) {
				assert.Equal(t, "next", req.Cursor())
				return &metadata.ListEventData{Data: []metadata.EventData{{ID: "e3"}}}, nil
			}),
	)

	var ids []string
	seen, err := ops.HarvestEvents(context.Background(), requests.NewListEvents().WithDOI("10.5438/0012"), 0, func(e metadata.EventData) error {
		ids = append(ids, e.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)
}

func TestFetchDOIs(t *testing.T) {
	ops, api := newTestOperations(t, WithConcurrency(2))

	missing := &datacite.APIError{StatusCode: 404, Message: "The resource you are looking for doesn't exist."}
	api.EXPECT().
		GetDOI(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req requests.GetDOI) (*metadata.DOIData, error) {
			id := strings.TrimPrefix(req.Endpoint(), "/dois/")
			if id == "10.1/missing" {
				return nil, missing
			}
			d := doi(id, 0)
			return &d, nil
		}).
		Times(4)

	result := ops.FetchDOIs(context.Background(), []string{"10.1/a", "10.1/missing", "10.1/b", "10.1/c"}, FetchOptions{})

	assert.Equal(t, 4, result.Requested)
	require.Len(t, result.DOIs, 3)
	assert.Equal(t, "10.1/a", result.DOIs[0].ID)
	assert.Equal(t, "10.1/b", result.DOIs[1].ID)
	assert.Equal(t, "10.1/c", result.DOIs[2].ID)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "10.1/missing", result.Failed[0].DOI)
	assert.ErrorIs(t, result.Failed[0], missing)
	assert.Contains(t, result.Failed[0].Error(), "failed to fetch DOI 10.1/missing")
}

func TestFetchDOIsEmpty(t *testing.T) {
	ops, _ := newTestOperations(t)
	result := ops.FetchDOIs(context.Background(), nil, FetchOptions{})
	assert.Zero(t, result.Requested)
	assert.Empty(t, result.DOIs)
}

func TestFetchDOIsNilRecord(t *testing.T) {
	ops, api := newTestOperations(t)

	api.EXPECT().
		GetDOI(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	result := ops.FetchDOIs(context.Background(), []string{"10.1/empty"}, FetchOptions{})

	assert.Empty(t, result.DOIs)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "10.1/empty", result.Failed[0].DOI)
	assert.ErrorIs(t, result.Failed[0], ErrNoRecord)
}

func TestFetchDOIsRespectsConcurrency(t *testing.T) {
	ops, api := newTestOperations(t, WithConcurrency(2))

	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	api.EXPECT().
		GetDOI(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, requests.GetDOI) (*metadata.DOIData, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			inFlight.Add(-1)
			d := doi("10.1/x", 0)
			return &d, nil
		}).
		Times(6)

	done := make(chan FetchResult)
	go func() {
		done <- ops.FetchDOIs(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, FetchOptions{})
	}()
	close(release)
	result := <-done

	assert.Len(t, result.DOIs, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestDeleteDOIs(t *testing.T) {
	ops, api := newTestOperations(t)

	denied := &datacite.APIError{StatusCode: 403, Message: "You are not authorized to access this resource."}
	api.EXPECT().
		DeleteDOI(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req requests.DeleteDOI) error {
			if req.Endpoint() == "/dois/10.1/findable" {
				return denied
			}
			return nil
		}).
		Times(3)

	result, err := ops.DeleteDOIs(context.Background(), []string{"10.1/a", "10.1/findable", "10.1/b"}, DeleteOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete 1 DOIs")

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, []string{"10.1/a", "10.1/b"}, result.Successful)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "10.1/findable", result.Failed[0].DOI)
	assert.ErrorIs(t, result.Failed[0], denied)
}

func TestDeleteDOIsDryRun(t *testing.T) {
	var out bytes.Buffer
	ops, _ := newTestOperations(t, WithOutput(&out))

	result, err := ops.DeleteDOIs(context.Background(), []string{"10.1/a", "10.1/b"}, DeleteOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Requested)
	assert.Empty(t, result.Successful)
	assert.Contains(t, out.String(), "DOIs to be deleted (2)")
	assert.Contains(t, out.String(), "10.1/b")
}

func TestDeleteDOIsConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		var out bytes.Buffer
		ops, _ := newTestOperations(t, WithOutput(&out), WithInput(strings.NewReader("n\n")))

		result, err := ops.DeleteDOIs(context.Background(), []string{"10.1/a"}, DeleteOptions{ConfirmDelete: true})
		require.NoError(t, err)
		assert.Empty(t, result.Successful)
		assert.Contains(t, out.String(), "Are you sure you want to delete 1 DOI(s)?")
	})

	t.Run("accepted", func(t *testing.T) {
		var out bytes.Buffer
		ops, api := newTestOperations(t, WithOutput(&out), WithInput(strings.NewReader("Y\n")))
		api.EXPECT().DeleteDOI(gomock.Any(), requests.NewDeleteDOI("10.1/a")).Return(nil)

		result, err := ops.DeleteDOIs(context.Background(), []string{"10.1/a"}, DeleteOptions{ConfirmDelete: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"10.1/a"}, result.Successful)
	})
}

func TestDeleteDOIsEmpty(t *testing.T) {
	ops, _ := newTestOperations(t)
	result, err := ops.DeleteDOIs(context.Background(), nil, DeleteOptions{})
	require.NoError(t, err)
	assert.Zero(t, result.Requested)
}
