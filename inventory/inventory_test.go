package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/inventory"
)

func Test_Inventory_AddAndRemoveBook(t *testing.T) {
	// arrange
	inv := inventory.New()
	book1 := givenBook(t, 1, "Le Garçon et le Héron", "Hayao Miyazaki", core.GenreFiction)
	book2 := givenBook(t, 2, "Le Monde de Terpone", "Ayemou Yvan", core.GenreManga)

	require.NoError(t, inv.Add(book1))
	require.NoError(t, inv.Add(book2))

	got, err := inv.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Hayao Miyazaki", got.Author)
	assert.Len(t, inv.List(), 2)

	// act
	removed, err := inv.Remove(1)

	// assert
	require.NoError(t, err)
	assert.Equal(t, book1, removed, "removed record should equal the added one")
	_, err = inv.Get(1)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, []core.Book{book2}, inv.List())
	assert.Equal(t, 1, inv.Len())
}

func Test_Inventory_Add_RejectsDuplicateID(t *testing.T) {
	// arrange
	inv := inventory.New()
	original := givenBook(t, 1, "Original", "Author", core.GenreHistory)
	require.NoError(t, inv.Add(original))

	// act
	err := inv.Add(givenBook(t, 1, "Impostor", "Someone Else", core.GenreScience))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	got, getErr := inv.Get(1)
	require.NoError(t, getErr)
	assert.Equal(t, original, got, "the original record must not be overwritten")
	assert.Len(t, inv.List(), 1)
}

func Test_Inventory_UnknownIDsAreNotFound(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add(givenBook(t, 1, "Only Book", "Author", core.GenreBiography)))

	for _, unknown := range []core.BookID{0, 2, 99} {
		_, err := inv.Get(unknown)
		assert.ErrorIs(t, err, core.ErrBookNotFound)
		assert.ErrorIs(t, err, core.ErrNotFound)

		_, err = inv.Remove(unknown)
		assert.ErrorIs(t, err, core.ErrNotFound)

		err = inv.SetAvailability(unknown, false)
		assert.ErrorIs(t, err, core.ErrNotFound)
	}
}

func Test_Inventory_SetAvailability_IsIdempotent(t *testing.T) {
	// arrange
	inv := inventory.New()
	require.NoError(t, inv.Add(givenBook(t, 1, "Book", "Author", core.OtherGenre("Poetry"))))

	// act
	require.NoError(t, inv.SetAvailability(1, false))
	require.NoError(t, inv.SetAvailability(1, false))

	// assert
	got, err := inv.Get(1)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	require.NoError(t, inv.SetAvailability(1, true))
	got, err = inv.Get(1)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func Test_Inventory_List_KeepsInsertionOrderAfterRemoval(t *testing.T) {
	// arrange
	inv := inventory.New()
	for _, id := range []core.BookID{5, 3, 9, 1} {
		require.NoError(t, inv.Add(givenBook(t, id, "Title", "Author", core.GenreScience)))
	}

	// act
	_, err := inv.Remove(9)
	require.NoError(t, err)
	require.NoError(t, inv.Add(givenBook(t, 9, "Title", "Author", core.GenreScience)))

	// assert
	assert.Equal(t, []core.BookID{5, 3, 1, 9}, idsOf(inv.List()))
}

func Test_Inventory_Atomically_ReturnsCallbackError(t *testing.T) {
	// arrange
	inv := inventory.New()
	require.NoError(t, inv.Add(givenBook(t, 1, "Book", "Author", core.GenreFiction)))
	errStop := errors.New("stop")

	// act
	err := inv.Atomically(func(tx *inventory.Tx) error {
		if setErr := tx.SetAvailability(1, false); setErr != nil {
			return setErr
		}

		book, getErr := tx.Get(1)
		require.NoError(t, getErr)
		assert.False(t, book.IsAvailable, "writes inside the callback should be visible to it")

		return errStop
	})

	// assert
	assert.ErrorIs(t, err, errStop)
	got, getErr := inv.Get(1)
	require.NoError(t, getErr)
	assert.False(t, got.IsAvailable, "Atomically does not roll back, callers undo their own writes")
}

func givenBook(t *testing.T, id core.BookID, title, author string, genre core.Genre) core.Book {
	t.Helper()
	return core.BuildBook(id, title, author, genre)
}

func idsOf(books []core.Book) []core.BookID {
	ids := make([]core.BookID, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	return ids
}
