package entity

import "errors"

// AllGenres disables the genre filter of a book listing.
const AllGenres = "all"

const (
	MaxTitleLength  = 200
	MaxAuthorLength = 200
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidBook  = errors.New("invalid book")
)

type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	NumberOfPages int    `json:"numberOfPages"`
	InInventory   bool   `json:"inInventory"`
}

// BookList is a listing of active books together with the filter it was built for.
type BookList struct {
	Books []Book
	Genre string
	Count int
}
