package content

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile means the single profile record failed validation.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrUnsupportedFormat means the content file extension is not recognised.
	ErrUnsupportedFormat = errors.New("unsupported content format")
	// ErrDuplicateKey means a record repeats the key of an earlier record.
	ErrDuplicateKey = errors.New("duplicate key")
)

// RecordError reports one rejected list record.
type RecordError struct {
	Section string
	Index   int
	Key     string
	Err     error
}

func (e *RecordError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s[%d] %q: %v", e.Section, e.Index, e.Key, e.Err)
	}
	return fmt.Sprintf("%s[%d]: %v", e.Section, e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
