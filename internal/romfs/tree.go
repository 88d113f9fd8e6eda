// Package romfs builds the ROM browser's directory tree from the device's
// storage mounts, filtered to the supported ROM extensions.
package romfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
)

// RootPath is the synthetic root node's path. Back navigation stops here.
const RootPath = "/"

// Node is one filesystem entry in the browser tree. Directory children are
// built eagerly at scan time; a directory that ends up with no ROM file
// anywhere below it is pruned and never appears.
type Node struct {
	Name     string
	Path     string
	IsFile   bool
	Children []*Node
}

// Scanner walks the configured mount roots. The zero value is not usable;
// construct with NewScanner.
type Scanner struct {
	roots    []string
	matchers []glob.Glob
}

// NewScanner compiles one case-insensitive matcher per allowed extension.
// Extensions are given with their leading dot (".gba").
func NewScanner(mountRoots, extensions []string) (*Scanner, error) {
	s := &Scanner{roots: mountRoots}
	for _, ext := range extensions {
		g, err := glob.Compile("*" + strings.ToLower(ext))
		if err != nil {
			return nil, fmt.Errorf("compiling extension pattern %q: %w", ext, err)
		}
		s.matchers = append(s.matchers, g)
	}
	return s, nil
}

// Scan builds a fresh tree. The synthetic root's children are the mount roots
// that exist and contain at least one ROM file. Unreadable directories are
// skipped with a warning; the scan itself never fails.
func (s *Scanner) Scan() *Node {
	root := &Node{Name: "root", Path: RootPath}

	for i, mount := range s.roots {
		if _, err := os.Stat(mount); err != nil {
			continue
		}
		child := &Node{
			Name:     fmt.Sprintf("%s SD%d/", glyph.SDCard, i+1),
			Path:     mount,
			Children: s.scanDir(mount),
		}
		if len(child.Children) > 0 {
			root.Children = append(root.Children, child)
		}
	}
	return root
}

func (s *Scanner) scanDir(dir string) []*Node {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.WithError(err).WithField("dir", dir).Warn("Skipping unreadable directory")
		return nil
	}

	var nodes []*Node
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			child := &Node{
				Name:     fmt.Sprintf("%s %s/", glyph.Folder, entry.Name()),
				Path:     path,
				Children: s.scanDir(path),
			}
			// Empty directory subtrees are pruned bottom-up.
			if len(child.Children) > 0 {
				nodes = append(nodes, child)
			}
			continue
		}
		if entry.Type().IsRegular() && s.matchesROM(entry.Name()) {
			nodes = append(nodes, &Node{
				Name:   fmt.Sprintf("%s %s", glyph.File, entry.Name()),
				Path:   path,
				IsFile: true,
			})
		}
	}
	return nodes
}

func (s *Scanner) matchesROM(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range s.matchers {
		if m.Match(lower) {
			return true
		}
	}
	return false
}
