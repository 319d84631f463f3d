package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/libraryapi/internal/entity"
)

type (
	BooksRepository interface {
		FindActiveByID(ctx context.Context, id int64) (entity.Book, error)
		ListActive(ctx context.Context, genre string) ([]entity.Book, error)
		Create(ctx context.Context, book entity.Book) (entity.Book, error)
		UpdateGenre(ctx context.Context, id int64, genre string) error
		SoftRemove(ctx context.Context, id int64) (bool, error)
	}

	// DataBase is the part of pgxpool.Pool the repository needs.
	DataBase interface {
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	}
)
