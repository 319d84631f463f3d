package controller

import (
	"context"
	"net/http"
	"time"

	gateway "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/project/libraryapi/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

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

type implementation struct {
	logger            *zap.Logger
	booksUseCase      BooksUseCase
	enrollmentUseCase EnrollmentUseCase
	now               func() time.Time
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	enrollmentUseCase EnrollmentUseCase,
) *implementation {
	return &implementation{
		logger:            logger,
		booksUseCase:      booksUseCase,
		enrollmentUseCase: enrollmentUseCase,
		now:               time.Now,
	}
}

type route struct {
	method  string
	pattern string
	handler gateway.HandlerFunc
}

func (i *implementation) routes() []route {
	return []route{
		{http.MethodGet, "/books", i.GetBooks},
		{http.MethodPost, "/books", i.AddBook},
		{http.MethodGet, "/books/{id}", i.GetBook},
		{http.MethodDelete, "/books/{id}", i.RemoveBook},
		{http.MethodPut, "/books/{id}/genre", i.UpdateGenre},
		{http.MethodGet, "/status", i.GetStatus},
		{http.MethodGet, "/blogs/{year}/{month}/{day}", i.GetBlogPosts},
		{http.MethodGet, "/employees", i.GetEmployees},
		{http.MethodGet, "/whoami", i.WhoAmI},
		{http.MethodPost, "/enrollments", i.AddEnrollment},
	}
}

// Handler builds the HTTP surface of the service: every route plus request tracing.
func (i *implementation) Handler() (http.Handler, error) {
	mux := gateway.NewServeMux(gateway.WithRoutingErrorHandler(routingErrorHandler))

	for _, r := range i.routes() {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, err
		}
	}

	return Tracing(mux), nil
}
