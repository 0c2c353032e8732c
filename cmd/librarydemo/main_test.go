package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/borrowing"
	"github.com/AntonStoeckl/library-circulation-go/core"
)

func Test_run_PrintsOutcomesStateAndJournal(t *testing.T) {
	// arrange
	cfg := Config{JournalPath: "-"}
	var stdout, stderr bytes.Buffer

	// act
	err := run(context.Background(), cfg, &stdout, &stderr)

	// assert
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "borrow user=1 book=1 -> ok")
	assert.Contains(t, output, "borrow user=2 book=1 -> rejected: "+core.ErrBookUnavailable.Error())
	assert.Contains(t, output, "borrow user=1 book=4 -> rejected: "+core.ErrBorrowLimitExceeded.Error())
	assert.Contains(t, output, "return user=2 book=2 -> rejected: "+core.ErrNotBorrowed.Error())
	assert.Contains(t, output, `"title": "Le Garçon et le Héron"`)
	assert.Contains(t, output, `"genre": "Other:Poetry"`)
	assert.Equal(t, len(script), strings.Count(output, `"event_type"`))

	assert.Contains(t, stderr.String(), borrowing.LogMsgOperationCompleted)
}

func Test_run_WritesJournalFile(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	cfg := Config{JournalPath: path}
	var stdout, stderr bytes.Buffer

	// act
	err := run(context.Background(), cfg, &stdout, &stderr)

	// assert
	require.NoError(t, err)

	written, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Len(t, strings.Split(strings.TrimSpace(string(written)), "\n"), len(script))
	assert.NotContains(t, stdout.String(), `"event_type"`)
}

func Test_run_CanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer

	// act
	err := run(ctx, Config{}, &stdout, &stderr)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_seedLibrary(t *testing.T) {
	// act
	books, registry, err := seedLibrary()

	// assert
	require.NoError(t, err)
	assert.Equal(t, len(seedBooks), books.Len())
	assert.Len(t, registry.List(), len(seedUsers))

	poetry, err := books.Get(5)
	require.NoError(t, err)
	assert.Equal(t, core.Other, poetry.Genre.Kind())
	assert.Equal(t, "Poetry", poetry.Genre.String())
}
