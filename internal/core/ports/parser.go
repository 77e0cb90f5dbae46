package ports

import (
	"context"

	"go.trai.ch/bim/internal/core/domain"
)

// AspectParser converts aspect artifact files into per-target records.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type AspectParser interface {
	// LoadFiles parses the artifact files at the given paths. A missing or
	// malformed file is an I/O failure, not a per-target miss.
	LoadFiles(paths []string) (*domain.AspectInfos, error)
}

// TransformFunc converts raw artifact paths into consumable artifact paths.
// Paths whose conversion fails are dropped from the returned slice; the
// transform never fails as a whole.
type TransformFunc func(ctx context.Context, paths []string) []string
