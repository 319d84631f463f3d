package library

import (
	"context"

	"github.com/google/uuid"
	"github.com/project/libraryapi/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/mock_usecases.go -package=mocks

type (
	BooksRepository interface {
		FindActiveByID(ctx context.Context, id int64) (entity.Book, error)
		ListActive(ctx context.Context, genre string) ([]entity.Book, error)
		Create(ctx context.Context, book entity.Book) (entity.Book, error)
		UpdateGenre(ctx context.Context, id int64, genre string) error
		SoftRemove(ctx context.Context, id int64) (bool, error)
	}

	IDGenerator interface {
		NewID() uuid.UUID
	}
)

var _ BooksUseCase = (*libraryImpl)(nil)
var _ EnrollmentUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger          *zap.Logger
	booksRepository BooksRepository
	idGenerator     IDGenerator
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	idGenerator IDGenerator,
) *libraryImpl {
	return &libraryImpl{
		logger:          logger,
		booksRepository: booksRepository,
		idGenerator:     idGenerator,
	}
}
