package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStoreInDir(t.TempDir())

	if err := store.Load(); err != nil {
		t.Fatalf("Load() of missing file error = %v, want nil", err)
	}
	if store.Session() == nil {
		t.Fatal("Session() = nil after Load")
	}
	if len(store.Session().Likes) != 0 {
		t.Error("fresh session should have no likes")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreInDir(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := store.Session()
	s.Like(dish("Ramen", "Japanese", 15), time.Now())
	s.SetNote("Ramen", "extra nori")
	s.AddReview("Thai Villa", 4, "good")

	if err := store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewStoreInDir(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error = %v", err)
	}

	got := reloaded.Session()
	if !got.Liked("Ramen") {
		t.Error("reloaded session lost the like")
	}
	if got.XP != XPPerLike {
		t.Errorf("reloaded XP = %d, want %d", got.XP, XPPerLike)
	}
	if got.Note("Ramen") != "extra nori" {
		t.Errorf("reloaded note = %q", got.Note("Ramen"))
	}
	if _, count := got.CommunityRating("Thai Villa"); count != 1 {
		t.Errorf("reloaded review count = %d, want 1", count)
	}
}

func TestStoreSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "session.json")
	store := NewStore(path)

	if err := store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("session file not created: %v", err)
	}
}

func TestSnapshotIsolatedFromLiveSession(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreInDir(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	store.Session().Like(dish("Ramen", "Japanese", 15), time.Now())
	snap := store.Snapshot()

	// Mutations after the snapshot must not leak into it.
	store.Session().Like(dish("Pad Thai", "Thai", 12), time.Now())
	store.Session().SetNote("Ramen", "late note")

	if snap.Liked("Pad Thai") {
		t.Error("snapshot sees a like recorded after it was taken")
	}
	if snap.Note("Ramen") != "" {
		t.Error("snapshot sees a note recorded after it was taken")
	}

	if err := store.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	reloaded := NewStoreInDir(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Session().Liked("Pad Thai") {
		t.Error("saved file contains state from after the snapshot")
	}
	if !reloaded.Session().Liked("Ramen") {
		t.Error("saved file lost the snapshotted like")
	}
}

func TestConcurrentLikesAndSnapshotSaves(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreInDir(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := range 50 {
		name := fmt.Sprintf("Dish %d", i)
		store.Session().Like(dish(name, "Fusion", 10), time.Now())

		snap := store.Snapshot()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.SaveSnapshot(snap); err != nil {
				t.Errorf("SaveSnapshot() error = %v", err)
			}
		}()
	}
	wg.Wait()

	reloaded := NewStoreInDir(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if len(reloaded.Session().Likes) == 0 {
		t.Error("no likes survived the concurrent saves")
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultStoreFilename)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if err := store.Load(); err == nil {
		t.Error("Load() of corrupt file should fail")
	}
}
