// Package aspectfile parses the artifact files produced by the dependency
// aspect into domain records.
package aspectfile

import (
	"encoding/json"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AspectParser = (*FileParser)(nil)

// record is the wire form of one aspect artifact file.
type record struct {
	Label            string   `json:"label"`
	Sources          []string `json:"sources"`
	Deps             []string `json:"deps"`
	GeneratedSources []string `json:"generated_sources"`
}

type cacheEntry struct {
	modTime int64
	size    int64
	info    *domain.PackageInfo
}

const parseCacheSize = 4096

// FileParser reads aspect artifact files from disk. Parsed records are
// cached per path and revalidated by modification time and size, so
// repeated resolutions after a flush do not re-read unchanged artifacts.
type FileParser struct {
	cache *lru.Cache[string, cacheEntry]
}

// NewFileParser creates a parser with a bounded parse cache.
func NewFileParser() (*FileParser, error) {
	cache, err := lru.New[string, cacheEntry](parseCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create parse cache")
	}
	return &FileParser{cache: cache}, nil
}

// LoadFiles parses the artifact files at the given paths, preserving path
// order. A missing or malformed file aborts the load.
func (p *FileParser) LoadFiles(paths []string) (*domain.AspectInfos, error) {
	infos := domain.NewAspectInfos()
	for _, path := range paths {
		info, err := p.loadFile(path)
		if err != nil {
			return nil, err
		}
		infos.Put(info)
	}
	return infos, nil
}

func (p *FileParser) loadFile(path string) (*domain.PackageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat aspect artifact"), "path", path)
	}

	if entry, ok := p.cache.Get(path); ok {
		if entry.modTime == stat.ModTime().UnixNano() && entry.size == stat.Size() {
			return entry.info, nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // paths come from the build tool
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read aspect artifact"), "path", path)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse aspect artifact"), "path", path)
	}

	info, err := toPackageInfo(rec)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	p.cache.Add(path, cacheEntry{
		modTime: stat.ModTime().UnixNano(),
		size:    stat.Size(),
		info:    info,
	})
	return info, nil
}

func toPackageInfo(rec record) (*domain.PackageInfo, error) {
	label, err := domain.ParseLabel(rec.Label)
	if err != nil {
		return nil, err
	}

	deps := make([]domain.Label, 0, len(rec.Deps))
	for _, raw := range rec.Deps {
		dep, err := domain.ParseLabel(raw)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}

	return domain.NewPackageInfo(label, rec.Sources, deps, rec.GeneratedSources), nil
}
