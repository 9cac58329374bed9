package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "video")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_FileInTheWay(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "audio")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := CreateDirectoryIfNotExists(filePath); err == nil {
		t.Error("Expected error when a file occupies the directory path")
	}
}

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if !IsDirectory(dir) {
		t.Errorf("Expected %s to be a directory", dir)
	}
	if IsDirectory(file) {
		t.Errorf("Expected %s not to be a directory", file)
	}
	if IsDirectory(filepath.Join(dir, "missing")) {
		t.Error("Expected missing path not to be a directory")
	}
	if IsDirectory("") {
		t.Error("Expected empty path not to be a directory")
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if !filepath.IsAbs(downloadsDir) {
		t.Errorf("Expected an absolute path, got: %s", downloadsDir)
	}
}

func TestOpenFolder_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	err := OpenFolder(missing)
	if err == nil {
		t.Fatal("Expected error for missing folder, got nil")
	}

	var notFound *FolderNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected FolderNotFoundError, got %T: %v", err, err)
	}
	if notFound.Path != missing {
		t.Errorf("Expected path %s, got %s", missing, notFound.Path)
	}
}

func TestOpenFolder_RunsFileManager(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skipf("unsupported OS %s", runtime.GOOS)
	}

	var gotName string
	var gotArgs []string
	original := runCommand
	runCommand = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}
	t.Cleanup(func() { runCommand = original })

	dir := t.TempDir()
	if err := OpenFolder(dir); err != nil {
		t.Fatalf("OpenFolder failed: %v", err)
	}

	expected := map[string]string{
		OSLinux:   XDGOpenCommand,
		OSDarwin:  OpenCommand,
		OSWindows: ExplorerCommand,
	}[runtime.GOOS]
	if gotName != expected {
		t.Errorf("Expected command %s, got %s", expected, gotName)
	}

	abs, _ := filepath.Abs(dir)
	if len(gotArgs) != 1 || gotArgs[0] != abs {
		t.Errorf("Expected args [%s], got %v", abs, gotArgs)
	}
}
