package progress

import (
	"errors"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.DirCreated("m/sub")
	c.FileDownloaded("m/a.txt", 10)
	c.FileDownloaded("m/b.txt", 5)
	c.FileCurrent("m/c.txt")
	c.Error("m/d.txt", errors.New("boom"))

	stats := c.Snapshot()
	if stats.DirsCreated != 1 {
		t.Errorf("DirsCreated = %d, want 1", stats.DirsCreated)
	}
	if stats.FilesDownloaded != 2 {
		t.Errorf("FilesDownloaded = %d, want 2", stats.FilesDownloaded)
	}
	if stats.BytesDownloaded != 15 {
		t.Errorf("BytesDownloaded = %d, want 15", stats.BytesDownloaded)
	}
	if stats.FilesCurrent != 1 {
		t.Errorf("FilesCurrent = %d, want 1", stats.FilesCurrent)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()
	c.FileDownloaded("a", 1)
	c.Reset()

	if stats := c.Snapshot(); stats != (Stats{}) {
		t.Errorf("stats after Reset = %+v, want zero", stats)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := NewCollector()
	c.FileCurrent("a")

	snap := c.Snapshot()
	c.FileCurrent("b")

	if snap.FilesCurrent != 1 {
		t.Errorf("snapshot mutated: FilesCurrent = %d", snap.FilesCurrent)
	}
}
