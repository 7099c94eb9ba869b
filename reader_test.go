package rope

import (
	"io"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	s := "Hello, wörld! " + strings.Repeat("ab☺", 30)
	r, err := Insert(New(s), 5, "XYZ")
	if err != nil {
		t.Fatal(err)
	}
	want := r.String()
	b, err := io.ReadAll(r.Reader())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(b) != want {
		t.Errorf("reader returned %q, want %q", string(b), want)
	}
}

func TestReaderSmallBuffer(t *testing.T) {
	r := Concat(New("Hello"), Concat(Rope{}, New(" World")))
	p := make([]byte, 3)
	var out []byte
	if n, err := r.Reader().Read(p[:0]); n != 0 || err != nil {
		t.Fatalf("expected empty read to return 0, nil")
	}
	rd := r.Reader()
	for {
		n, err := rd.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if string(out) != "Hello World" {
		t.Errorf("unexpected read result %q", string(out))
	}
	if _, err := (Rope{}).Reader().Read(p); err != io.EOF {
		t.Errorf("expected EOF for void rope, got %v", err)
	}
}
