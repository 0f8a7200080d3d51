// Package javasrc builds a class hierarchy from Java source files.
//
// Sources are parsed with tree-sitter; only extends clauses of classes are
// read. Superclass names are resolved the way javac would for the common
// cases (nested classes, single-type and on-demand imports, the same
// package, java.lang) against every class declared under the scanned
// roots. The resulting provider speaks source names, so it is meant to be
// used with remapper.SideSource.
package javasrc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"reflection-remapper/hierarchy"
)

// Scan parses every .java file under roots and returns the superclass
// edges of the classes declared there. A root may also be a single file.
func Scan(ctx context.Context, roots ...string) (*hierarchy.Static, error) {
	paths, err := javaFiles(roots)
	if err != nil {
		return nil, err
	}

	files := make([]*sourceFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			f, err := parseFile(path, src)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return link(files)
}

func javaFiles(roots []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.HasSuffix(path, ".java") {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	return paths, nil
}

// link resolves every extends clause against the classes declared in all
// files. The first declaration of a class wins.
func link(files []*sourceFile) (*hierarchy.Static, error) {
	declared := make(map[string]struct{})

	for _, f := range files {
		for _, name := range f.declared {
			declared[name] = struct{}{}
		}
	}

	parents := make(map[string]string)

	for _, f := range files {
		for _, d := range f.classes {
			if _, dup := parents[d.binary]; dup {
				log.WithFields(log.Fields{
					"class": d.binary,
					"file":  f.path,
				}).Warn("class declared more than once, keeping first declaration")

				continue
			}

			parents[d.binary] = f.superclassOf(d, declared)
		}
	}

	log.WithFields(log.Fields{
		"files":   len(files),
		"classes": len(parents),
	}).Debug("scanned java sources")

	return hierarchy.NewStatic(parents)
}
