package controller

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/project/libraryapi/internal/entity"
	"github.com/project/libraryapi/internal/usecase/enrollment"
	"github.com/project/libraryapi/internal/usecase/library"
	"github.com/stretchr/testify/require"
)

// memoryBooks mirrors the store semantics of the postgres repository.
type memoryBooks struct {
	mu     sync.Mutex
	nextID int64
	books  []entity.Book
}

func newMemoryBooks(seed ...entity.Book) *memoryBooks {
	m := &memoryBooks{}
	for _, b := range seed {
		m.books = append(m.books, b)
		m.nextID = max(m.nextID, b.ID)
	}
	return m
}

func (m *memoryBooks) FindActiveByID(_ context.Context, id int64) (entity.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.books {
		if b.InInventory && b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, entity.ErrBookNotFound
}

func (m *memoryBooks) ListActive(_ context.Context, genre string) ([]entity.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]entity.Book, 0)
	for _, b := range m.books {
		if b.InInventory && (genre == entity.AllGenres || b.Genre == genre) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memoryBooks) Create(_ context.Context, book entity.Book) (entity.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	book.ID = m.nextID
	m.books = append(m.books, book)
	return book, nil
}

func (m *memoryBooks) UpdateGenre(_ context.Context, id int64, genre string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.books {
		if m.books[i].InInventory && m.books[i].ID == id {
			m.books[i].Genre = genre
			return nil
		}
	}
	return entity.ErrBookNotFound
}

func (m *memoryBooks) SoftRemove(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.books {
		if m.books[i].InInventory && m.books[i].ID == id {
			m.books[i].InInventory = false
			return true, nil
		}
	}
	return false, nil
}

func initInventoryFlow(t *testing.T) http.Handler {
	t.Helper()
	useCases := library.New(nil, newMemoryBooks(walden, rhythmScience, nature), enrollment.NewGenerator())
	return newHandler(t, useCases, useCases)
}

func TestInventoryFlow_createThenGet(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	rec := doRequest(h, http.MethodPost, "/books", `{"title":"Leaves of Grass","author":"Whitman","genre":"Poetry","numberOfPages":145}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeResponse[GetBookDetailsResponse](t, rec)
	require.Equal(t, int64(4), created.ID)
	require.Equal(t, "/books/4", rec.Header().Get("Location"))

	rec = doRequest(h, http.MethodGet, "/books/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created, decodeResponse[GetBookDetailsResponse](t, rec))
}

func TestInventoryFlow_updateGenre(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	rec := doRequest(h, http.MethodPut, "/books/2/genre", `"Electronic"`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(h, http.MethodGet, "/books/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[GetBookDetailsResponse](t, rec)
	require.Equal(t, "Electronic", got.Genre)
	require.Equal(t, rhythmScience.Title, got.Title)
	require.Equal(t, rhythmScience.NumberOfPages, got.NumberOfPages)

	rec = doRequest(h, http.MethodPut, "/books/999/genre", `"Electronic"`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryFlow_softRemove(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	for range 2 {
		rec := doRequest(h, http.MethodDelete, "/books/1", "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := doRequest(h, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(h, http.MethodPut, "/books/1/genre", `"Fiction"`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(h, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeResponse[GetBooksResponse](t, rec)
	require.Equal(t, 2, list.Count)
	for _, item := range list.Data {
		require.NotEqual(t, int64(1), item.ID)
	}
}

func TestInventoryFlow_rejectedBookIsNotStored(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	rec := doRequest(h, http.MethodPost, "/books",
		`{"title":"`+tooLongTitle+`","author":"Someone","genre":"Fiction","numberOfPages":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodGet, "/books", "")
	require.Equal(t, 3, decodeResponse[GetBooksResponse](t, rec).Count)
}

func TestInventoryFlow_filterByGenre(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	rec := doRequest(h, http.MethodGet, "/books?genre=Philosophy", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeResponse[GetBooksResponse](t, rec)
	require.Equal(t, "Philosophy", list.Genre)
	require.Equal(t, 2, list.Count)
	require.Len(t, list.Data, 2)
	require.Equal(t, []int64{1, 3}, []int64{list.Data[0].ID, list.Data[1].ID})

	rec = doRequest(h, http.MethodGet, "/books?genre=philosophy", "")
	require.Equal(t, 0, decodeResponse[GetBooksResponse](t, rec).Count)
}

func TestInventoryFlow_nonIntegerID(t *testing.T) {
	t.Parallel()

	h := initInventoryFlow(t)

	for _, id := range []string{"abc", "1.5", strconv.Itoa(0)} {
		rec := doRequest(h, http.MethodGet, "/books/"+id, "")
		require.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}
