package sl

import (
	"log/slog"

	"github.com/google/uuid"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// UUID creates a slog.Attr holding the employee identifier.
func UUID(id uuid.UUID) slog.Attr {
	return slog.String("uuid", id.String())
}
