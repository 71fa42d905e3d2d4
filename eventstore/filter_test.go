package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

func lookupFrom(payload map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := payload[key]
		return val, ok
	}
}

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
				assert.True(t, f.IsEmpty())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("LoanReturned", "BookLentToContact", "", "LoanReturned").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookLentToContact", "LoanReturned"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_dropped",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("BookID", "b-1"), eventstore.P("", "x"), eventstore.P("OwnerID", "")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []eventstore.FilterPredicate{eventstore.P("BookID", "b-1")}, f.Items()[0].Predicates())
				assert.False(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "multiple_items_with_all_predicates",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("InvitationSent").
					AndAllPredicatesOf(eventstore.P("SenderID", "a"), eventstore.P("RecipientID", "b")).
					OrMatching().
					AnyEventTypeOf("InvitationSent").
					AndAllPredicatesOf(eventstore.P("SenderID", "b"), eventstore.P("RecipientID", "a")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.True(t, f.Items()[0].AllPredicatesMustMatch())
				assert.Equal(t, "RecipientID", f.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "SenderID", f.Items()[0].Predicates()[1].Key())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_Filter_Matches(t *testing.T) {
	bookFilter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookAdded", "BookLentToContact").
		AndAnyPredicateOf(eventstore.P("BookID", "b-1")).
		OrMatching().
		AnyEventTypeOf("ContactAdded").
		AndAllPredicatesOf(eventstore.P("OwnerID", "o-1"), eventstore.P("LinkedUserID", "u-2")).
		Finalize()

	testCases := []struct {
		name      string
		filter    eventstore.Filter
		eventType string
		payload   map[string]string
		expected  bool
	}{
		{"empty filter matches everything", eventstore.BuildEventFilter().MatchingAnyEvent(), "Anything", nil, true},
		{"type and predicate match", bookFilter, "BookAdded", map[string]string{"BookID": "b-1"}, true},
		{"type matches but predicate not", bookFilter, "BookAdded", map[string]string{"BookID": "b-2"}, false},
		{"predicate matches but type not", bookFilter, "BookRemoved", map[string]string{"BookID": "b-1"}, false},
		{"all predicates match", bookFilter, "ContactAdded", map[string]string{"OwnerID": "o-1", "LinkedUserID": "u-2"}, true},
		{"only one of all predicates matches", bookFilter, "ContactAdded", map[string]string{"OwnerID": "o-1"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.filter.Matches(tc.eventType, lookupFrom(tc.payload)))
		})
	}
}

func Test_Filter_String(t *testing.T) {
	f := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookAdded").
		AndAnyPredicateOf(eventstore.P("OwnerID", "o-1"), eventstore.P("LenderID", "o-1")).
		Finalize()

	assert.Equal(t, "(BookAdded)[LenderID=o-1|OwnerID=o-1]", f.String())
	assert.Equal(t, "*", eventstore.BuildEventFilter().MatchingAnyEvent().String())
}

func Test_Union(t *testing.T) {
	books := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("BookAdded").AndAnyPredicateOf(eventstore.P("BookID", "b-1")).Finalize()
	contacts := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("ContactAdded").AndAnyPredicateOf(eventstore.P("OwnerID", "o-1")).Finalize()

	t.Run("keeps the items of all filters", func(t *testing.T) {
		// act
		union := eventstore.Union(books, contacts)

		// assert
		assert.Len(t, union.Items(), 2)
		assert.True(t, union.Matches("ContactAdded", lookupFrom(map[string]string{"OwnerID": "o-1"})))
		assert.True(t, union.Matches("BookAdded", lookupFrom(map[string]string{"BookID": "b-1"})))
	})

	t.Run("an empty filter widens the union to everything", func(t *testing.T) {
		// act
		union := eventstore.Union(books, eventstore.BuildEventFilter().MatchingAnyEvent())

		// assert
		assert.True(t, union.IsEmpty())
	})
}
