package impl

import (
	"io"
	"log/slog"
	"time"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountID() entity.AccountID {
	return entity.AccountID(uuid.Must(uuid.NewV7()))
}

func newJobID() entity.JobID {
	return entity.JobID(uuid.Must(uuid.NewV7()))
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
