package nlp

import (
	"log/slog"
)

// failsoft runs fn and returns its result, or fallback if fn panics.
// All exported analysis functions route through it so the never-throws
// contract is structural rather than convention.
func failsoft[T any](op string, fallback T, fn func() T) (out T) {
	out = fallback
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[NLP] analysis failed, returning default",
				slog.String("op", op),
				slog.Any("panic", r))
		}
	}()
	return fn()
}
