package library

import (
	"context"

	"github.com/project/libraryapi/internal/entity"
)

type (
	BooksUseCase interface {
		ListBooks(ctx context.Context, genre string) (entity.BookList, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		AddBook(ctx context.Context, book entity.Book) (entity.Book, error)
		UpdateGenre(ctx context.Context, id int64, genre string) error
		RemoveBook(ctx context.Context, id int64) error
	}

	EnrollmentUseCase interface {
		Enroll(ctx context.Context, class, student string, numberOfDays int) (entity.Enrollment, error)
	}
)
