package tensor

import "github.com/pkg/errors"

// Error kinds. Every failing operation wraps exactly one of these, so callers
// can branch with errors.Is.
var (
	ErrShape          = errors.New("shape mismatch")
	ErrIndex          = errors.New("index out of range")
	ErrNotImplemented = errors.New("not implemented")
	ErrDecode         = errors.New("decode failed")
)

// ShapeErrorf returns an error wrapping ErrShape.
func ShapeErrorf(format string, args ...any) error {
	return errors.WithMessagef(ErrShape, format, args...)
}

// IndexErrorf returns an error wrapping ErrIndex.
func IndexErrorf(format string, args ...any) error {
	return errors.WithMessagef(ErrIndex, format, args...)
}

// NotImplementedf returns an error wrapping ErrNotImplemented.
func NotImplementedf(format string, args ...any) error {
	return errors.WithMessagef(ErrNotImplemented, format, args...)
}
