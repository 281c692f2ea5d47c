package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielpatrickdp/soulscan/internal/token"
)

// #region options

// Options controls which files a walk reads.
type Options struct {
	MaxFileBytes int64
	Extensions   []string
	SkipDirs     []string
}

// DefaultOptions covers the usual frontend sources and skips build output.
func DefaultOptions() Options {
	return Options{
		MaxFileBytes: 1 << 20,
		Extensions:   []string{".css", ".scss", ".tsx", ".jsx", ".ts", ".js", ".vue", ".html"},
		SkipDirs:     []string{"node_modules", ".git", ".next", "dist", "build"},
	}
}

// #endregion options

// #region walk

// Walk reads every matching file under root and tokenizes it. Files that
// cannot be read are returned with Err set rather than aborting the walk.
// Files over the size cap are skipped. Paths are relative to root and come
// back in lexical order.
func Walk(ctx context.Context, root string, opts Options) ([]token.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return []token.File{readFile(root, filepath.Base(root), opts)}, nil
	}

	exts := toSet(opts.Extensions)
	skip := toSet(opts.SkipDirs)

	var files []token.File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			files = append(files, token.File{Path: rel, Err: walkErr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if opts.MaxFileBytes > 0 {
			if fi, err := d.Info(); err == nil && fi.Size() > opts.MaxFileBytes {
				return nil
			}
		}
		files = append(files, readFile(path, rel, opts))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func readFile(path, rel string, opts Options) token.File {
	data, err := os.ReadFile(path)
	if err != nil {
		return token.File{Path: rel, Err: fmt.Errorf("read: %w", err)}
	}
	if opts.MaxFileBytes > 0 && int64(len(data)) > opts.MaxFileBytes {
		return token.File{Path: rel, Err: fmt.Errorf("read: %d bytes exceeds cap of %d", len(data), opts.MaxFileBytes)}
	}
	return token.File{Path: rel, Tokens: Tokenize(rel, string(data))}
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it] = true
	}
	return out
}

// #endregion walk
