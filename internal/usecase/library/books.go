package library

import (
	"context"

	"github.com/project/libraryapi/internal/entity"
	"github.com/project/libraryapi/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) ListBooks(ctx context.Context, genre string) (entity.BookList, error) {
	genre = lo.Ternary(genre == "", entity.AllGenres, genre)

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("genre", genre))
	log.InfoListBooks(l.logger, "Start of listing books", traceID, genre)

	books, err := l.booksRepository.ListActive(ctx, genre)

	if log.ErrorListBooks(l.logger, err, "Failed listing books", traceID, genre) {
		span.RecordError(err)
		return entity.BookList{}, err
	}

	log.InfoListBooks(l.logger, "Listed the books", traceID, genre, len(books))
	return entity.BookList{
		Books: books,
		Genre: genre,
		Count: len(books),
	}, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))

	book, err := l.booksRepository.FindActiveByID(ctx, id)

	if log.ErrorGetBook(l.logger, err, "Failed get book", traceID, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoGetBook(l.logger, "Got the book", traceID, id)
	return book, nil
}

func (l *libraryImpl) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(l.logger, "Start of adding book", traceID, book.Title, book.Author)

	book.ID = 0
	book.InInventory = true
	created, err := l.booksRepository.Create(ctx, book)

	if log.ErrorAddBook(l.logger, err, "Failed adding book", traceID, book.Title, book.Author) {
		span.SetAttributes(attribute.String("book_title", book.Title))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.Int64("book_id", created.ID))
	log.InfoAddBook(l.logger, "Added the book", traceID, created.Title, created.Author, created.ID)
	return created, nil
}

func (l *libraryImpl) UpdateGenre(ctx context.Context, id int64, genre string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))
	log.InfoUpdateBookGenre(l.logger, "Start of updating genre", traceID, id, genre)

	err := l.booksRepository.UpdateGenre(ctx, id, genre)

	if log.ErrorUpdateBookGenre(l.logger, err, "Failed updating genre", traceID, id, genre) {
		span.RecordError(err)
	} else {
		log.InfoUpdateBookGenre(l.logger, "Updated the genre", traceID, id, genre)
	}

	return err
}

// RemoveBook takes the book out of inventory. A book that is missing or
// already removed is not an error.
func (l *libraryImpl) RemoveBook(ctx context.Context, id int64) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))

	removed, err := l.booksRepository.SoftRemove(ctx, id)

	if log.ErrorRemoveBook(l.logger, err, "Failed removing book", traceID, id) {
		span.RecordError(err)
		return err
	}

	if !removed {
		log.WarnRemoveBook(l.logger, "No active book to remove", traceID, id)
		return nil
	}

	log.InfoRemoveBook(l.logger, "Removed the book", traceID, id)
	return nil
}
