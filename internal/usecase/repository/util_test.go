package repository

import (
	"errors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/libraryapi/internal/entity"
)

var errInternal = errors.New("internal error")

var bookColumns = []string{"id", "title", "author", "genre", "number_of_pages", "in_inventory"}

var seedBooks = []entity.Book{
	{ID: 1, Title: "Walden", Author: "Threau", Genre: "Philosophy", NumberOfPages: 322, InInventory: true},
	{ID: 2, Title: "Rhythm Science", Author: "DJ Spooky That Subliminal Kid", Genre: "Music", NumberOfPages: 180, InInventory: true},
	{ID: 3, Title: "Nature", Author: "Emerson", Genre: "Philosophy", NumberOfPages: 182, InInventory: true},
}

func bookRows(books ...entity.Book) *pgxmock.Rows {
	rows := pgxmock.NewRows(bookColumns)
	for _, b := range books {
		rows.AddRow(b.ID, b.Title, b.Author, b.Genre, b.NumberOfPages, b.InInventory)
	}
	return rows
}
