package compress

import (
	"errors"
	"fmt"
)

var (
	// ErrDecompressionFailed is returned when a payload declared compressed
	// is not valid raw DEFLATE data.
	ErrDecompressionFailed = errors.New("zlib decompress error")

	// ErrInflatedTooLarge is returned by [InflateLimit] when the output would
	// exceed the caller's cap. It also matches [ErrDecompressionFailed].
	ErrInflatedTooLarge = fmt.Errorf("%w: inflated size limit exceeded", ErrDecompressionFailed)
)
