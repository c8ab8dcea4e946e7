// Package stdin provides utilities for handling piped input
package stdin

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// MaxInputSize is the maximum size of input to process (100KB). Hook payloads
// are small; anything larger is misuse and gets truncated rather than buffered.
const MaxInputSize = 100 * 1024

// IsPiped returns true if stdin has piped input
func IsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// Read reads all content from stdin up to MaxInputSize
func Read() (string, error) {
	return ReadFrom(os.Stdin)
}

// ReadFrom reads all content from the given reader up to MaxInputSize
func ReadFrom(r io.Reader) (string, error) {
	var sb strings.Builder
	reader := bufio.NewReader(r)
	buf := make([]byte, 4096)
	totalRead := 0

	for totalRead < MaxInputSize {
		n, err := reader.Read(buf)
		if n > 0 {
			// Don't exceed max size
			if totalRead+n > MaxInputSize {
				n = MaxInputSize - totalRead
			}
			sb.Write(buf[:n])
			totalRead += n
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return sb.String(), err
		}
	}

	return sb.String(), nil
}
