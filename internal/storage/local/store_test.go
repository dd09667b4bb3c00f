package local

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store == nil {
		t.Fatal("NewStore() returned nil")
	}
	if store.basePath != tmpDir {
		t.Errorf("basePath = %v, want %v", store.basePath, tmpDir)
	}
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "subdir", "nested")

	if _, err := NewStore(newDir); err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	info, err := os.Stat(newDir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory, got file")
	}
}

func TestStore_Save_Load(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	type testData struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := testData{Name: "test", Value: 42}

	if err := store.Save("slot1", original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var loaded testData
	if err := store.Load("slot1", &loaded); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded != original {
		t.Errorf("loaded = %+v, want %+v", loaded, original)
	}
}

func TestStore_Save_Overwrites(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	if err := store.Save("slot", map[string]int{"v": 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save("slot", map[string]int{"v": 2}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var loaded map[string]int
	if err := store.Load("slot", &loaded); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded["v"] != 2 {
		t.Errorf("v = %d; want 2", loaded["v"])
	}
}

func TestStore_Load_NotFound(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	var out map[string]int
	if err := store.Load("missing", &out); err != ErrNotFound {
		t.Errorf("Load() error = %v; want ErrNotFound", err)
	}
}

func TestStore_Load_CorruptJSON(t *testing.T) {
	tmpDir := t.TempDir()
	store, _ := NewStore(tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "bad.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	var out map[string]int
	err := store.Load("bad", &out)
	if err == nil {
		t.Fatal("Load() should fail on corrupt JSON")
	}
	if err == ErrNotFound {
		t.Error("corrupt JSON should not look like a missing slot")
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	store.Save("slot", map[string]int{"v": 1})

	if err := store.Delete("slot"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Exists("slot") {
		t.Error("slot should not exist after Delete()")
	}
	if err := store.Delete("slot"); err != ErrNotFound {
		t.Errorf("Delete() twice error = %v; want ErrNotFound", err)
	}
}

func TestStore_Exists(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	if store.Exists("slot") {
		t.Error("Exists() = true before Save()")
	}
	store.Save("slot", 1)
	if !store.Exists("slot") {
		t.Error("Exists() = false after Save()")
	}
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	store, _ := NewStore(tmpDir)

	if err := store.Save("slot", map[string]int{"v": 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
