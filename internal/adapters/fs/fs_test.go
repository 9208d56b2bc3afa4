package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/plugindev/internal/adapters/fs"
	"go.trai.ch/plugindev/internal/core/domain"
)

func TestWalker_WalkFiles(t *testing.T) { //nolint:cyclop // Test complexity is acceptable
	// Create temp directory structure
	// tmp/
	//   .git/
	//     config
	//   ignored/
	//     file
	//   src/
	//     main.go
	//   README.md

	tmpDir, err := os.MkdirTemp("", "walker_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup in test

	// Create .git directory
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("git config"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create ignored directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "ignored"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "ignored", "file"), []byte("ignored content"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create src directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "src", "main.go"), []byte("package main"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create README.md
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Readme"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	walker := fs.NewWalker()
	ignores := []string{"ignored"}

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, ignores) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[rel] = true
	}

	// Assertions
	if files[".git/config"] {
		t.Error("expected .git/config to be skipped")
	}
	if files["ignored/file"] {
		t.Error("expected ignored/file to be skipped")
	}
	if !files["src/main.go"] {
		t.Error("expected src/main.go to be found")
	}
	if !files["README.md"] {
		t.Error("expected README.md to be found")
	}
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "hasher_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) //nolint:errcheck // Best effort cleanup in test

	content := []byte("hello world")
	n, writeErr := tmpFile.Write(content)
	if writeErr != nil {
		t.Fatal(writeErr)
	}
	_ = n
	_ = tmpFile.Close()

	walker := fs.NewWalker()
	hasher := fs.NewHasher(walker)

	hash1, err := hasher.ComputeFileHash(tmpFile.Name())
	if err != nil {
		t.Fatalf("ComputeFileHash failed: %v", err)
	}

	if hash1 == 0 {
		t.Error("expected non-zero hash")
	}

	// Verify determinism
	hash2, err := hasher.ComputeFileHash(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}

	if hash1 != hash2 {
		t.Error("expected deterministic hash")
	}
}

func TestHasher_ComputeInputHash(t *testing.T) {
	srcDir := t.TempDir()
	mojoFile := filepath.Join(srcDir, "com", "example", "GreetMojo.java")
	if err := os.MkdirAll(filepath.Dir(mojoFile), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mojoFile, []byte("class GreetMojo {}"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	base := func() *domain.DescriptorInputs {
		return &domain.DescriptorInputs{
			Plugin: domain.Plugin{
				GAV:        domain.NewGAV("com.example", "greet-maven-plugin", "1.0.0"),
				Name:       "greet-maven-plugin",
				GoalPrefix: "greet",
			},
			Dependencies: []domain.DependencyDescriptor{
				{Group: "org.apache.commons", Artifact: "commons-lang3", Version: "3.12", Extension: "jar"},
			},
			Upstream: []domain.UpstreamProjectDescriptor{
				{Group: "com.example", Artifact: "core", ClassesDir: "/ws/core/build/classes/java/main"},
			},
			SourceDirs: []string{srcDir, filepath.Join(srcDir, "missing")},
		}
	}

	hash1, err := hasher.ComputeInputHash(base())
	if err != nil {
		t.Fatalf("ComputeInputHash failed: %v", err)
	}

	again, err := hasher.ComputeInputHash(base())
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != again {
		t.Error("expected deterministic hash")
	}

	mutations := map[string]func(*domain.DescriptorInputs){
		"plugin version": func(in *domain.DescriptorInputs) { in.Plugin.GAV = in.Plugin.GAV.WithVersion("1.0.1") },
		"goal prefix":    func(in *domain.DescriptorInputs) { in.Plugin.GoalPrefix = "hello" },
		"help package":   func(in *domain.DescriptorInputs) { in.HelpPackage = "com.example.help" },
		"dependency":     func(in *domain.DescriptorInputs) { in.Dependencies[0].Version = "3.13.0" },
		"upstream sources": func(in *domain.DescriptorInputs) {
			in.Upstream[0].SourcesDir = "/ws/core/src/main/java"
		},
	}
	for name, mutate := range mutations {
		in := base()
		mutate(in)
		hash, err := hasher.ComputeInputHash(in)
		if err != nil {
			t.Fatal(err)
		}
		if hash == hash1 {
			t.Errorf("expected hash to change when %s changes", name)
		}
	}

	if writeErr := os.WriteFile(mojoFile, []byte("class GreetMojo { int x; }"), 0o600); writeErr != nil { //nolint:gosec // Test file permissions
		t.Fatal(writeErr)
	}
	hash2, err := hasher.ComputeInputHash(base())
	if err != nil {
		t.Fatal(err)
	}
	if hash1 == hash2 {
		t.Error("expected hash to change when source content changes")
	}
}

func TestWalker_WalkExt(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"A.java", "b/B.java", "b/notes.txt"} {
		path := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil { //nolint:gosec // Test file permissions
			t.Fatal(err)
		}
	}

	var got []string
	for path := range fs.NewWalker().WalkExt(tmpDir, ".java") {
		rel, _ := filepath.Rel(tmpDir, path)
		got = append(got, rel)
	}

	want := []string{"A.java", filepath.Join("b", "B.java")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}
