package listing

import (
	"strings"
	"testing"

	"github.com/Roneo412/httpsync/internal/testutil"
)

func TestParse_SimpleListing(t *testing.T) {
	page := testutil.ListingHTML("a.txt", "sub/", "b.bin")

	entries, err := Parse(strings.NewReader(page), "http://host:8000/docs/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	if entries[0].Name != "a.txt" || entries[0].IsDir {
		t.Errorf("entries[0] = %+v, want file a.txt", entries[0])
	}
	if entries[0].URL != "http://host:8000/docs/a.txt" {
		t.Errorf("entries[0].URL = %q", entries[0].URL)
	}

	if entries[1].Name != "sub/" || !entries[1].IsDir {
		t.Errorf("entries[1] = %+v, want directory sub/", entries[1])
	}
	if entries[1].URL != "http://host:8000/docs/sub/" {
		t.Errorf("entries[1].URL = %q", entries[1].URL)
	}
}

func TestParse_ParentLinksExcluded(t *testing.T) {
	page := `<html><body>
<a href="../">..</a>
<a href="../other/">../other</a>
<a href="a.txt">a.txt</a>
</body></html>`

	entries, err := Parse(strings.NewReader(page), "http://host/dir/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1: %+v", len(entries), entries)
	}
	if entries[0].Name != "a.txt" {
		t.Errorf("entries[0].Name = %q, want a.txt", entries[0].Name)
	}
}

func TestParse_HrefResolution(t *testing.T) {
	tests := []struct {
		name    string
		href    string
		pageURL string
		want    string
	}{
		{"relative", "file.txt", "http://host/dir/", "http://host/dir/file.txt"},
		{"absolute path", "/other/file.txt", "http://host/dir/", "http://host/other/file.txt"},
		{"absolute url", "http://mirror/file.txt", "http://host/dir/", "http://mirror/file.txt"},
		{"fragment stripped", "file.txt#frag", "http://host/dir/", "http://host/dir/file.txt"},
		{"query kept by resolution", "file.txt?v=1", "http://host/dir/", "http://host/dir/file.txt?v=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := `<a href="` + tt.href + `">x</a>`
			entries, err := Parse(strings.NewReader(page), tt.pageURL)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("len(entries) = %d, want 1", len(entries))
			}
			if entries[0].URL != tt.want {
				t.Errorf("URL = %q, want %q", entries[0].URL, tt.want)
			}
		})
	}
}

func TestParse_NestedAnchorText(t *testing.T) {
	page := `<a href="sub/"><b>su</b>b/</a>`

	entries, err := Parse(strings.NewReader(page), "http://host/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Name != "sub/" {
		t.Errorf("Name = %q, want sub/", entries[0].Name)
	}
	if !entries[0].IsDir {
		t.Error("IsDir = false, want true")
	}
}

func TestParse_AnchorsWithoutHrefSkipped(t *testing.T) {
	page := `<a name="top">a.txt</a><a href="b.txt">b.txt</a>`

	entries, err := Parse(strings.NewReader(page), "http://host/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "b.txt" {
		t.Fatalf("entries = %+v, want only b.txt", entries)
	}
}

func TestParse_Restartable(t *testing.T) {
	page := testutil.ListingHTML("a.txt", "b.txt")

	first, err := Parse(strings.NewReader(page), "http://host/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := Parse(strings.NewReader(page), "http://host/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entries[%d] differ: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	entries, err := Parse(strings.NewReader(""), "http://host/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
