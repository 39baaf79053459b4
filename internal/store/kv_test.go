package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"agencysite/internal/core"
)

// exerciseKV runs the behaviour every driver must share.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, KeyProjects); err != nil || ok {
		t.Fatalf("Get on empty store = (ok=%v, err=%v), expected (false, nil)", ok, err)
	}

	if err := kv.Set(ctx, KeyProjects, `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := kv.Get(ctx, KeyProjects)
	if err != nil || !ok || value != `[{"id":"1"}]` {
		t.Errorf("Get after Set = (%q, %v, %v)", value, ok, err)
	}

	if err := kv.Set(ctx, KeyProjects, `[]`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if value, _, _ := kv.Get(ctx, KeyProjects); value != `[]` {
		t.Errorf("Get after overwrite = %q, expected []", value)
	}

	if err := kv.Delete(ctx, KeyProjects); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, KeyProjects); ok {
		t.Error("key should be absent after Delete")
	}
	if err := kv.Delete(ctx, KeyProjects); err != nil {
		t.Errorf("Delete of absent key should not fail: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}
	exerciseKV(t, kv)
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, "language", "ar"); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if value, ok, _ := reopened.Get(ctx, "language"); !ok || value != "ar" {
		t.Errorf("reopened Get = (%q, %v), expected (ar, true)", value, ok)
	}
}

func TestFileKV_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), FilePermission); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileKV(path); err == nil {
		t.Error("NewFileKV should fail on a corrupt document")
	}
}

func TestFileKV_RequiresPath(t *testing.T) {
	if _, err := NewFileKV(""); err == nil {
		t.Error("NewFileKV should require a path")
	}
}

func TestFileKV_CancelledContext(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := kv.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get with cancelled context error = %v, expected context.Canceled", err)
	}
}

func TestSQLiteKV(t *testing.T) {
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV failed: %v", err)
	}
	defer kv.Close()

	exerciseKV(t, kv)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, KeyAdminToken, "tok"); err != nil {
		t.Fatal(err)
	}
	kv.Close()

	reopened, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if value, ok, _ := reopened.Get(ctx, KeyAdminToken); !ok || value != "tok" {
		t.Errorf("reopened Get = (%q, %v), expected (tok, true)", value, ok)
	}
}

type failingKV struct {
	*MemoryKV
	failSet bool
	gets    int
}

func (f *failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.gets++
	return f.MemoryKV.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("backing store unavailable")
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func TestCachedKV(t *testing.T) {
	cached, err := NewCachedKV(NewMemoryKV(), 4)
	if err != nil {
		t.Fatal(err)
	}
	exerciseKV(t, cached)
}

func TestCachedKV_ServesReadsFromCache(t *testing.T) {
	ctx := context.Background()
	backing := &failingKV{MemoryKV: NewMemoryKV()}
	if err := backing.MemoryKV.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	cached, err := NewCachedKV(backing, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if value, ok, _ := cached.Get(ctx, "k"); !ok || value != "v" {
			t.Fatalf("Get = (%q, %v), expected (v, true)", value, ok)
		}
	}
	if backing.gets != 1 {
		t.Errorf("backing store read %d times, expected 1", backing.gets)
	}
}

func TestCachedKV_FailedWriteInvalidates(t *testing.T) {
	ctx := context.Background()
	backing := &failingKV{MemoryKV: NewMemoryKV()}
	cached, err := NewCachedKV(backing, 4)
	if err != nil {
		t.Fatal(err)
	}

	if err := cached.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	backing.failSet = true
	if err := cached.Set(ctx, "k", "v2"); err == nil {
		t.Fatal("expected Set to fail")
	}

	if value, _, _ := cached.Get(ctx, "k"); value != "v1" {
		t.Errorf("Get after failed write = %q, expected the durable value v1", value)
	}
}

// gatedKV blocks the first Get after reading the backing value, until release
// is closed.
type gatedKV struct {
	*MemoryKV
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := g.MemoryKV.Get(ctx, key)
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return value, ok, err
}

func TestCachedKV_ReadRacingDeleteDoesNotResurrect(t *testing.T) {
	ctx := context.Background()
	backing := &gatedKV{
		MemoryKV: NewMemoryKV(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	if err := backing.MemoryKV.Set(ctx, KeyAdminToken, "old-token"); err != nil {
		t.Fatal(err)
	}

	cached, err := NewCachedKV(backing, 4)
	if err != nil {
		t.Fatal(err)
	}

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		_, _, _ = cached.Get(ctx, KeyAdminToken)
	}()
	<-backing.entered

	deleteDone := make(chan error, 1)
	go func() {
		deleteDone <- cached.Delete(ctx, KeyAdminToken)
	}()

	close(backing.release)
	<-readDone
	if err := <-deleteDone; err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if value, ok, _ := cached.Get(ctx, KeyAdminToken); ok {
		t.Errorf("Get after Delete = (%q, true), expected the key to be absent", value)
	}
}

func TestCachedKV_ReadRacingSetServesNewValue(t *testing.T) {
	ctx := context.Background()
	backing := &gatedKV{
		MemoryKV: NewMemoryKV(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	if err := backing.MemoryKV.Set(ctx, KeyProjects, "v1"); err != nil {
		t.Fatal(err)
	}

	cached, err := NewCachedKV(backing, 4)
	if err != nil {
		t.Fatal(err)
	}

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		_, _, _ = cached.Get(ctx, KeyProjects)
	}()
	<-backing.entered

	setDone := make(chan error, 1)
	go func() {
		setDone <- cached.Set(ctx, KeyProjects, "v2")
	}()

	close(backing.release)
	<-readDone
	if err := <-setDone; err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if value, _, _ := cached.Get(ctx, KeyProjects); value != "v2" {
		t.Errorf("Get after Set = %q, expected v2", value)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		cfg     core.StorageConfig
		wantErr bool
	}{
		{"memory", core.StorageConfig{Driver: core.StorageDriverMemory}, false},
		{"file", core.StorageConfig{Driver: core.StorageDriverFile, Path: filepath.Join(dir, "s.json")}, false},
		{"file cached", core.StorageConfig{Driver: core.StorageDriverFile, Path: filepath.Join(dir, "c.json"), CacheSize: 8}, false},
		{"sqlite", core.StorageConfig{Driver: core.StorageDriverSQLite, Path: filepath.Join(dir, "s.db")}, false},
		{"unknown", core.StorageConfig{Driver: "etcd"}, true},
		{"file without path", core.StorageConfig{Driver: core.StorageDriverFile}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, closer, err := Open(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("Open() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer closer.Close()
			exerciseKV(t, kv)
		})
	}
}
