package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherInitialScanDeliversFullBacklog(t *testing.T) {
	root := t.TempDir()

	// More files than the event channel buffers, so delivery has to
	// survive a consumer that only starts reading after startup.
	const n = 300
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(root, fmt.Sprintf("doc-%03d.pdf", i))
		if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		want[path] = struct{}{}
	}
	// Neither of these may be emitted.
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hidden.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}, InitialScan: true}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	got := make(map[string]struct{}, n)
	deadline := time.After(10 * time.Second)
	for len(got) < n {
		select {
		case path := <-evCh:
			if _, ok := want[path]; !ok {
				t.Fatalf("unexpected path emitted: %s", path)
			}
			got[path] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out with %d of %d files delivered", len(got), n)
		}
	}
}

func TestWatcherEmitsCreatedFile(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	path := filepath.Join(root, "id-card.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	deadline := time.After(10 * time.Second)
	for {
		select {
		case got := <-evCh:
			if got == path {
				return
			}
		case <-deadline:
			t.Fatalf("file %s never emitted", path)
		}
	}
}
