package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/pages.yaml":      {Data: []byte("pages: []\n")},
		"data/extra/note.yaml": {Data: []byte("a: 1\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestNotInitialized 测试未初始化时的访问
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/pages.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/pages.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/pages.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/pages.yaml", "pages: []\n", false},
		{"带 ./ 前缀", "./data/pages.yaml", "pages: []\n", false},
		{"子目录", "data/extra/note.yaml", "a: 1\n", false},
		{"未知前缀", "assets/pages.yaml", "", true},
		{"不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndReadDir(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/pages.yaml") {
		t.Error("Exists(data/pages.yaml) = false")
	}
	if Exists("data/nope.yaml") {
		t.Error("Exists(data/nope.yaml) = true")
	}

	entries, err := ReadDir("data/extra")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "note.yaml" {
		t.Errorf("ReadDir(data/extra) = %v", entries)
	}
}
