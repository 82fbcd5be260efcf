package httpx

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestOpenIndex(t *testing.T) {
	fs := memfs.New()
	if _, _, err := openIndex(fs); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if err := util.WriteFile(fs, indexPage, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, fi, err := openIndex(fs)
	if err != nil {
		t.Fatalf("openIndex: %v", err)
	}
	defer f.Close()
	if fi.Size() != 5 {
		t.Fatalf("size got=%d want=5", fi.Size())
	}
}
