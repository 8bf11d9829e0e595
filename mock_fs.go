package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

type mockFileInfo struct {
	name      string
	timestamp time.Time
	isDir     bool
	isLink    bool
	size      int64
}

func (f mockFileInfo) Name() string { return f.name }
func (f mockFileInfo) Size() int64  { return f.size }
func (f mockFileInfo) Mode() fs.FileMode {
	if f.isLink {
		return fs.ModeSymlink
	}
	if f.isDir {
		return fs.ModeDir | fs.ModePerm
	}
	return fs.ModePerm
}
func (f mockFileInfo) ModTime() time.Time { return f.timestamp }
func (f mockFileInfo) IsDir() bool        { return f.isDir }
func (f mockFileInfo) Sys() any           { return nil }

// mockSource fakes the SFTP side: a directory tree, file contents, symlinks,
// and injectable read/open failures.
type mockSource struct {
	dirs     map[string][]os.FileInfo
	files    map[string]string
	links    map[string]string
	readErrs map[string]error
	openErrs map[string]error
}

func newMockSource() *mockSource {
	return &mockSource{
		dirs:     make(map[string][]os.FileInfo),
		files:    make(map[string]string),
		links:    make(map[string]string),
		readErrs: make(map[string]error),
		openErrs: make(map[string]error),
	}
}

// resolve rewrites a path whose prefix is a symlink to the link target, one
// level deep, which is all the tests need.
func (m *mockSource) resolve(filePath string) string {
	for linkPath, target := range m.links {
		if filePath == linkPath {
			return target
		}
		if strings.HasPrefix(filePath, linkPath+"/") {
			return target + strings.TrimPrefix(filePath, linkPath)
		}
	}
	return filePath
}

func (m *mockSource) ReadDir(dirPath string) ([]os.FileInfo, error) {
	if readErr, ok := m.readErrs[dirPath]; ok {
		return nil, readErr
	}
	infos, ok := m.dirs[m.resolve(dirPath)]
	if !ok {
		return nil, fmt.Errorf("no such directory: %s", dirPath)
	}
	return infos, nil
}

func (m *mockSource) Stat(filePath string) (os.FileInfo, error) {
	resolved := m.resolve(filePath)
	if _, ok := m.dirs[resolved]; ok {
		return mockFileInfo{name: baseName(resolved), isDir: true}, nil
	}
	if content, ok := m.files[resolved]; ok {
		return mockFileInfo{name: baseName(resolved), size: int64(len(content))}, nil
	}
	return nil, fmt.Errorf("no such file: %s", filePath)
}

func (m *mockSource) ReadLink(filePath string) (string, error) {
	target, ok := m.links[filePath]
	if !ok {
		return "", fmt.Errorf("not a link: %s", filePath)
	}
	return target, nil
}

func (m *mockSource) Open(filePath string) (io.ReadCloser, error) {
	if openErr, ok := m.openErrs[filePath]; ok {
		return nil, openErr
	}
	content, ok := m.files[m.resolve(filePath)]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", filePath)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func baseName(filePath string) string {
	parts := strings.Split(filePath, "/")
	return parts[len(parts)-1]
}
