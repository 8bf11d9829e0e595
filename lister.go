package main

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// FileEntry describes one regular file found during the source walk. Path is
// relative to the walk root and slash-separated, and unique within a listing.
type FileEntry struct {
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// remoteFS is the slice of the SFTP client the lister needs. Kept narrow so
// tests can stub directory layouts without a server.
type remoteFS interface {
	ReadDir(dirPath string) ([]os.FileInfo, error)
	Stat(filePath string) (os.FileInfo, error)
	ReadLink(filePath string) (string, error)
}

type ListerOptions struct {
	FollowSymlinks bool
	Exclude        []string
}

// listRecursive walks the subtree under root and returns an entry for every
// regular file, in walk order. Symlinks are skipped unless FollowSymlinks is
// set; when following, directories are tracked by resolved path so link
// cycles terminate instead of looping. Any unreadable directory aborts the
// whole walk with a ListingError.
func listRecursive(rfs remoteFS, root string, opts ListerOptions) ([]FileEntry, error) {
	var exclude *regexp.Regexp
	if len(opts.Exclude) != 0 {
		// TODO: joining patterns into one alternation is fine for a handful
		// of exclusions, revisit if configs grow large
		regexStr := strings.Join(opts.Exclude, "|")
		compiled, compileErr := regexp.Compile(regexStr)
		if compileErr != nil {
			return nil, fmt.Errorf("invalid exclude pattern: %w", compileErr)
		}
		exclude = compiled
	}

	root = path.Clean(root)
	entries := make([]FileEntry, 0)
	seen := make(map[string]bool)
	visitedDirs := map[string]bool{root: true}

	var walk func(dirPath string) error
	walk = func(dirPath string) error {
		infos, readErr := rfs.ReadDir(dirPath)
		if readErr != nil {
			return &ListingError{Path: dirPath, Err: readErr}
		}
		for _, info := range infos {
			fullPath := path.Join(dirPath, info.Name())

			if info.Mode()&os.ModeSymlink != 0 {
				if !opts.FollowSymlinks {
					log.Debug(fmt.Sprintf("%s is a symlink, skipping", fullPath))
					continue
				}
				target, linkErr := rfs.ReadLink(fullPath)
				if linkErr != nil {
					return &ListingError{Path: fullPath, Err: linkErr}
				}
				if !path.IsAbs(target) {
					target = path.Join(dirPath, target)
				}
				resolved, statErr := rfs.Stat(fullPath)
				if statErr != nil {
					return &ListingError{Path: fullPath, Err: statErr}
				}
				if resolved.IsDir() {
					target = path.Clean(target)
					if visitedDirs[target] {
						log.Debug(fmt.Sprintf("%s already visited via %s, skipping", fullPath, target))
						continue
					}
					visitedDirs[target] = true
					if walkErr := walk(fullPath); walkErr != nil {
						return walkErr
					}
					continue
				}
				info = resolved
			}

			if info.IsDir() {
				// a followed symlink may have reached this directory first
				if visitedDirs[fullPath] {
					log.Debug(fmt.Sprintf("%s already visited, skipping", fullPath))
					continue
				}
				visitedDirs[fullPath] = true
				if walkErr := walk(fullPath); walkErr != nil {
					return walkErr
				}
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			relPath := relativeTo(root, fullPath)
			if seen[relPath] {
				continue
			}
			if exclude != nil && exclude.MatchString(relPath) {
				log.Debug(fmt.Sprintf("%s matches exclusion list, skipping", relPath))
				continue
			}
			seen[relPath] = true
			entries = append(entries, FileEntry{
				Path:       relPath,
				Size:       info.Size(),
				ModifiedAt: info.ModTime(),
			})
		}
		return nil
	}

	if walkErr := walk(root); walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

func relativeTo(root, fullPath string) string {
	fullPath = path.Clean(fullPath)
	if root == "." {
		return strings.TrimPrefix(fullPath, "/")
	}
	rel := strings.TrimPrefix(fullPath, root)
	return strings.TrimPrefix(rel, "/")
}
