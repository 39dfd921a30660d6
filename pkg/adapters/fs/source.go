package fs

import (
	"fmt"
	"io"
	"os"
)

// DefaultSourceLimit bounds the size of a file read by ReadSource.
const DefaultSourceLimit int64 = 1 << 30

// ReadSource returns the bytes of a user-selected file, refusing directories
// and files larger than limit (DefaultSourceLimit when limit <= 0).
func ReadSource(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultSourceLimit
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%s is %d bytes, limit is %d", path, info.Size(), limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s grew past the limit of %d bytes while reading", path, limit)
	}
	return data, nil
}
