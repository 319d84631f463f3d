package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	// registers the postgres dialect for goqu
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/libraryapi/internal/entity"
	"github.com/project/libraryapi/pkg/logger"
	"go.uber.org/zap"
)

const ErrStringDataRightTruncation = "22001"

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"
	colID           = "id"
	colTitle        = "title"
	colAuthor       = "author"
	colGenre        = "genre"
	colPages        = "number_of_pages"
	colInInventory  = "in_inventory"
)

var _ BooksRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

func (p *postgresRepository) FindActiveByID(ctx context.Context, id int64) (entity.Book, error) {
	if id <= 0 {
		return entity.Book{}, entity.ErrBookNotFound
	}

	const query = `
SELECT id, title, author, genre, number_of_pages, in_inventory
FROM books
WHERE in_inventory AND id = $1
`
	var book entity.Book
	err := p.db.QueryRow(ctx, query, id).
		Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.NumberOfPages, &book.InInventory)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if logger.CheckError(err, p.logger, "can not select book", zap.Int64("book_id", id), zap.Error(err)) {
		return entity.Book{}, fmt.Errorf("select book %d: %w", id, err)
	}

	return book, nil
}

func (p *postgresRepository) ListActive(ctx context.Context, genre string) ([]entity.Book, error) {
	query, args, err := buildListQuery(genre)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if logger.CheckError(err, p.logger, "can not list books", zap.String("genre", genre), zap.Error(err)) {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var book entity.Book

		if err = rows.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.NumberOfPages, &book.InInventory); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}

		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func buildListQuery(genre string) (string, []any, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Prepared(true).
		Select(colID, colTitle, colAuthor, colGenre, colPages, colInInventory).
		Where(goqu.C(colInInventory).IsTrue()).
		Order(goqu.C(colID).Asc())

	if genre != entity.AllGenres {
		ds = ds.Where(goqu.C(colGenre).Eq(genre))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build list query: %w", err)
	}

	return query, args, nil
}

func (p *postgresRepository) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO books (title, author, genre, number_of_pages, in_inventory)
VALUES ($1, $2, $3, $4, TRUE)
RETURNING id
`
	result := entity.Book{
		Title:         book.Title,
		Author:        book.Author,
		Genre:         book.Genre,
		NumberOfPages: book.NumberOfPages,
		InInventory:   true,
	}

	err := p.db.QueryRow(ctx, query, book.Title, book.Author, book.Genre, book.NumberOfPages).Scan(&result.ID)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == ErrStringDataRightTruncation {
			return entity.Book{}, fmt.Errorf("book %q is too long: %w", book.Title, entity.ErrInvalidBook)
		}

		logger.CheckError(err, p.logger, "can not insert book", zap.String("book_title", book.Title), zap.Error(err))
		return entity.Book{}, fmt.Errorf("insert book: %w", err)
	}

	return result, nil
}

func (p *postgresRepository) UpdateGenre(ctx context.Context, id int64, genre string) error {
	if id <= 0 {
		return entity.ErrBookNotFound
	}

	const query = `
UPDATE books SET genre = $1
WHERE in_inventory AND id = $2
`
	tag, err := p.db.Exec(ctx, query, genre, id)
	if logger.CheckError(err, p.logger, "can not update genre", zap.Int64("book_id", id), zap.Error(err)) {
		return fmt.Errorf("update genre of book %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

// SoftRemove takes the book out of inventory and reports whether an active book was found.
func (p *postgresRepository) SoftRemove(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	const query = `
UPDATE books SET in_inventory = FALSE
WHERE in_inventory AND id = $1
`
	tag, err := p.db.Exec(ctx, query, id)
	if logger.CheckError(err, p.logger, "can not remove book", zap.Int64("book_id", id), zap.Error(err)) {
		return false, fmt.Errorf("remove book %d: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}
