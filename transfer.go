package filebackend

import (
	"bufio"
	"io"
	"os"
)

// FileTransfer is a read-once response body over an open file handle,
// bounded to the byte count captured when the response headers were
// decided. The bound keeps the body consistent with the content-length
// header even if the file grows while the body is being sent.
type FileTransfer struct {
	file   *os.File
	reader *io.LimitedReader
	length int64
}

func newFileTransfer(file *os.File, limit int64) *FileTransfer {
	return &FileTransfer{
		file:   file,
		reader: &io.LimitedReader{R: bufio.NewReader(file), N: limit},
		length: limit,
	}
}

// Read fills p with body bytes. It returns io.EOF once the transfer
// limit is reached, regardless of how much of the file remains.
// Underlying read failures are returned as is, never masked.
func (t *FileTransfer) Read(p []byte) (int, error) {
	return t.reader.Read(p)
}

// Length returns the total number of bytes the transfer will deliver,
// fixed at construction.
func (t *FileTransfer) Length() int64 {
	return t.length
}

// Remaining returns the number of bytes left to read.
func (t *FileTransfer) Remaining() int64 {
	return t.reader.N
}

// Close releases the underlying file handle. The host must call it when
// abandoning a transfer early; reading to EOF alone does not release the
// handle.
func (t *FileTransfer) Close() error {
	return t.file.Close()
}
