package container

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

// buildSection encodes one section the way Decoder.Section expects to
// read it: a checksum, a chunk count, then that many (length, compressed
// bytes) chunks.
func buildSection(t *testing.T, chunks [][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(0)) // checksum, unchecked
	_ = binary.Write(&buf, binary.LittleEndian, int32(len(chunks)))

	for _, c := range chunks {
		var zbuf bytes.Buffer
		zw := zlib.NewWriter(&zbuf)
		if _, err := zw.Write(c); err != nil {
			t.Fatalf("zlib write: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("zlib close: %v", err)
		}
		_ = binary.Write(&buf, binary.LittleEndian, int32(zbuf.Len()))
		buf.Write(zbuf.Bytes())
	}
	return buf.Bytes()
}

func TestDecoderReadsTwoSections(t *testing.T) {
	header := []byte("header payload bytes")
	commands := []byte("commands payload bytes, a bit longer this time")

	var raw bytes.Buffer
	raw.Write(buildSection(t, [][]byte{header}))
	raw.Write(buildSection(t, [][]byte{commands}))

	dec := New(bytes.NewReader(raw.Bytes()))
	defer dec.Close()

	if err := dec.NewSection(); err != nil {
		t.Fatalf("NewSection (header): %v", err)
	}
	gotHeader, err := dec.Section()
	if err != nil {
		t.Fatalf("Section (header): %v", err)
	}
	if !bytes.Equal(gotHeader, header) {
		t.Errorf("header mismatch: got %q, want %q", gotHeader, header)
	}

	if err := dec.NewSection(); err != nil {
		t.Fatalf("NewSection (commands): %v", err)
	}
	gotCommands, err := dec.Section()
	if err != nil {
		t.Fatalf("Section (commands): %v", err)
	}
	if !bytes.Equal(gotCommands, commands) {
		t.Errorf("commands mismatch: got %q, want %q", gotCommands, commands)
	}

	if err := dec.NewSection(); err != ErrNoMoreSections {
		t.Errorf("expected ErrNoMoreSections after both sections, got %v", err)
	}
}

func TestDecoderMultiChunkSection(t *testing.T) {
	raw := buildSection(t, [][]byte{[]byte("first "), []byte("second "), []byte("third")})

	dec := New(bytes.NewReader(raw))
	defer dec.Close()
	if err := dec.NewSection(); err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	got, err := dec.Section()
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if want := "first second third"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
