package search

import (
	"context"
	"errors"
	"testing"

	algolia "github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct {
	res algolia.MultipleQueriesRes
	err error
}

func (s *stubQuerier) MultipleQueries(queries []algolia.IndexedQuery, strategy string, opts ...interface{}) (algolia.MultipleQueriesRes, error) {
	return s.res, s.err
}

func TestAlgoliaSearchGroupsHitsByIndex(t *testing.T) {
	client := &AlgoliaClient{client: &stubQuerier{res: algolia.MultipleQueriesRes{
		Results: []algolia.IndexedQueryRes{
			{QueryRes: algolia.QueryRes{Hits: []map[string]interface{}{
				{"objectID": "1", "name": "Climate Impact Forecasting"},
				{"objectID": "2", "name": "Green City"},
			}}},
			{QueryRes: algolia.QueryRes{Hits: []map[string]interface{}{
				{"objectID": "3", "title": "About Me", "signal": 4.0},
			}}},
		},
	}}}

	got, err := client.Search(context.Background(), "city", []IndexQuery{
		{Index: "projects", Hits: 2},
		{Index: "about", Hits: 1},
	})
	require.NoError(t, err)

	require.Len(t, got["projects"], 2)
	assert.Equal(t, "Climate Impact Forecasting", got["projects"][0].Title)
	// No signal field: position-derived scores, first hit highest.
	assert.Equal(t, 2.0, got["projects"][0].Score)
	assert.Equal(t, 1.0, got["projects"][1].Score)

	require.Len(t, got["about"], 1)
	assert.Equal(t, "About Me", got["about"][0].Title)
	assert.Equal(t, 4.0, got["about"][0].Score, "explicit signal field wins")
}

func TestAlgoliaSearchPropagatesFailure(t *testing.T) {
	client := &AlgoliaClient{client: &stubQuerier{err: errors.New("network down")}}

	_, err := client.Search(context.Background(), "q", []IndexQuery{{Index: "projects", Hits: 2}})
	assert.Error(t, err)
}
