package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
)

func Test_BuildBookAddedToCatalog_Validation(t *testing.T) {
	tests := []struct {
		name        string
		bookID      string
		title       string
		authorName  string
		expectedErr error
	}{
		{
			name:        "valid_payload",
			bookID:      "b-1",
			title:       "Snow Crash",
			authorName:  "Neal Stephenson",
			expectedErr: nil,
		},
		{
			name:        "empty_book_id",
			bookID:      "",
			title:       "Snow Crash",
			authorName:  "Neal Stephenson",
			expectedErr: core.ErrEmptyBookIDSupplied,
		},
		{
			name:        "empty_title",
			bookID:      "b-1",
			title:       "",
			authorName:  "Neal Stephenson",
			expectedErr: core.ErrEmptyTitleSupplied,
		},
		{
			name:        "empty_author_name",
			bookID:      "b-1",
			title:       "Snow Crash",
			authorName:  "",
			expectedErr: core.ErrEmptyAuthorNameSupplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := core.BuildBookAddedToCatalog(tt.bookID, tt.title, tt.authorName, time.Now())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, core.BookAddedToCatalogEventType, event.EventType())
			assert.Equal(t, core.BookIDString(tt.bookID), event.BookID)
		})
	}
}

func Test_BuildAuthorAddedToCatalog_Validation(t *testing.T) {
	tests := []struct {
		name        string
		authorID    string
		authorName  string
		expectedErr error
	}{
		{
			name:        "valid_payload",
			authorID:    "a-1",
			authorName:  "Mark Twain",
			expectedErr: nil,
		},
		{
			name:        "empty_author_id",
			authorID:    "",
			authorName:  "Mark Twain",
			expectedErr: core.ErrEmptyAuthorIDSupplied,
		},
		{
			name:        "empty_author_name",
			authorID:    "a-1",
			authorName:  "",
			expectedErr: core.ErrEmptyAuthorNameSupplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := core.BuildAuthorAddedToCatalog(tt.authorID, tt.authorName, time.Now())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, core.AuthorAddedToCatalogEventType, event.EventType())
		})
	}
}

func Test_BuildRemovalEvents_Validation(t *testing.T) {
	t.Run("book_removed_requires_book_id", func(t *testing.T) {
		_, err := core.BuildBookRemovedFromCatalog("", time.Now())
		assert.ErrorIs(t, err, core.ErrEmptyBookIDSupplied)
	})

	t.Run("author_removed_requires_author_id", func(t *testing.T) {
		_, err := core.BuildAuthorRemovedFromCatalog("", time.Now())
		assert.ErrorIs(t, err, core.ErrEmptyAuthorIDSupplied)
	})
}

func Test_ToOccurredAt_NormalizesToUTCAndMicroseconds(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	input := time.Date(2025, 6, 1, 14, 30, 0, 123456789, location)

	occurredAt := core.ToOccurredAt(input)

	assert.Equal(t, time.UTC, occurredAt.Location())
	assert.Equal(t, 123456000, occurredAt.Nanosecond())
	assert.True(t, occurredAt.Equal(input.Truncate(time.Microsecond)))
}
