package filebackend

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func openTransferFile(t *testing.T, contents string) (*os.File, string) {
	t.Helper()
	name := filepath.Join(t.TempDir(), "file.bin")
	if err := os.WriteFile(name, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	return f, name
}

func TestTransferReadsWholeFile(t *testing.T) {
	f, _ := openTransferFile(t, "hello world")
	transfer := newFileTransfer(f, 11)
	defer transfer.Close()

	body, err := io.ReadAll(transfer)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello world" {
		t.Fatalf("Body is %s", body)
	}
	if transfer.Remaining() != 0 {
		t.Fatalf("Remaining is %d", transfer.Remaining())
	}
}

func TestTransferNeverExceedsLimit(t *testing.T) {
	f, _ := openTransferFile(t, "hello world")
	transfer := newFileTransfer(f, 5)
	defer transfer.Close()

	body, err := io.ReadAll(transfer)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello" {
		t.Fatalf("Body is %s", body)
	}
}

// The limit is captured at decision time: a file growing mid-transfer
// must not push more bytes than the content-length promised.
func TestTransferIgnoresConcurrentGrowth(t *testing.T) {
	f, name := openTransferFile(t, "hello")
	transfer := newFileTransfer(f, 5)
	defer transfer.Close()

	grower, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := grower.WriteString(" world"); err != nil {
		t.Fatal(err)
	}
	grower.Close()

	body, err := io.ReadAll(transfer)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello" {
		t.Fatalf("Body is %s", body)
	}
}

func TestTransferLength(t *testing.T) {
	f, _ := openTransferFile(t, "hello")
	transfer := newFileTransfer(f, 5)
	defer transfer.Close()

	if transfer.Length() != 5 {
		t.Fatalf("Length is %d", transfer.Length())
	}
	if _, err := io.CopyN(io.Discard, transfer, 2); err != nil {
		t.Fatal(err)
	}
	if transfer.Length() != 5 {
		t.Fatalf("Length after reading is %d", transfer.Length())
	}
	if transfer.Remaining() != 3 {
		t.Fatalf("Remaining after reading is %d", transfer.Remaining())
	}
}

func TestTransferSurfacesReadFailure(t *testing.T) {
	f, _ := openTransferFile(t, "hello")
	transfer := newFileTransfer(f, 5)
	transfer.Close()

	if _, err := io.ReadAll(transfer); err == nil {
		t.Fatal("Read after close did not error")
	}
}
