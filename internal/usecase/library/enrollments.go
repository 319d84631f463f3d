package library

import (
	"context"

	"github.com/project/libraryapi/internal/entity"
	"github.com/project/libraryapi/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) Enroll(ctx context.Context, class, student string, numberOfDays int) (entity.Enrollment, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	enrollment := entity.Enrollment{
		ID:           l.idGenerator.NewID(),
		Class:        class,
		Student:      student,
		NumberOfDays: numberOfDays,
	}

	span.SetAttributes(attribute.String("enrollment_id", enrollment.ID.String()))
	log.InfoEnroll(l.logger, "Enrolled the student", traceID, class, student, enrollment.ID.String())
	return enrollment, nil
}
