// Package aspect implements the aspect cache manager: it runs the Bazel
// build-info aspect for requested targets, caches the per-target records,
// memoizes wildcard expansions and falls back to the last successfully
// computed record when a fresh run produces nothing for a target.
package aspect

import (
	"strings"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

// VariantKind selects one of the two aspect output conventions.
type VariantKind string

const (
	// VariantLegacy consumes directly parseable artifact files.
	VariantLegacy VariantKind = "legacy"
	// VariantModern consumes intellij-info artifacts that need an
	// in-process transform before parsing.
	VariantModern VariantKind = "modern"
)

// ErrUnknownVariant is returned for a variant name that is neither legacy
// nor modern.
var ErrUnknownVariant = zerr.New("unknown aspect variant")

// lineMarker prefixes artifact paths in the build tool's output stream.
const lineMarker = ">>>"

// Variant is the strategy value describing how one aspect version is
// invoked and how its output is recognized and post-processed. It is built
// once from configuration and passed by value.
type Variant struct {
	kind      VariantKind
	aspectDir string
	transform ports.TransformFunc
}

// NewVariant builds the strategy for the given kind. aspectDir is the
// on-disk location of the aspect definition, injected as a repository
// override. transform is required for the modern variant and ignored for
// the legacy one.
func NewVariant(kind VariantKind, aspectDir string, transform ports.TransformFunc) (Variant, error) {
	switch kind {
	case VariantLegacy, VariantModern:
		return Variant{kind: kind, aspectDir: aspectDir, transform: transform}, nil
	default:
		return Variant{}, zerr.With(ErrUnknownVariant, "variant", string(kind))
	}
}

// Kind returns the variant kind.
func (v Variant) Kind() VariantKind {
	return v.kind
}

// BuildArgs returns the full argument list for one aspect invocation:
// the build subcommand, the variant's aspect options and the single target.
func (v Variant) BuildArgs(target domain.Label) []string {
	args := append([]string{"build"}, v.options()...)
	return append(args, target.String())
}

func (v Variant) options() []string {
	if v.kind == VariantLegacy {
		return []string{
			"--override_repository=local_bim_aspect=" + v.aspectDir,
			"--aspects=@local_bim_aspect//:bim_info.bzl%bim_info_aspect",
			"-k",
			"--output_groups=json-files,classpath-jars,-_,-defaults",
			"--experimental_show_artifacts",
		}
	}
	return []string{
		"--nobuild_event_binary_file_path_conversion",
		"--noexperimental_run_validations",
		"--aspects=@intellij_aspect//:intellij_info_bundled.bzl%intellij_info_aspect",
		"--override_repository=intellij_aspect=" + v.aspectDir,
		"--output_groups=intellij-info-generic,intellij-info-java-direct-deps,intellij-resolve-java-direct-deps",
		"--experimental_show_artifacts",
	}
}

// artifactSuffix is the file suffix artifact lines must carry.
func (v Variant) artifactSuffix() string {
	if v.kind == VariantLegacy {
		return domain.ArtifactSuffix
	}
	return domain.IntellijInfoSuffix
}

// LineFilter recognizes artifact lines in the raw tool output: the line
// must start with the output-stream marker and end with the variant's
// artifact suffix. The marker is stripped from kept lines.
func (v Variant) LineFilter() ports.LineFilter {
	suffix := v.artifactSuffix()
	return func(line string) (string, bool) {
		if !strings.HasPrefix(line, lineMarker) || !strings.HasSuffix(line, suffix) {
			return "", false
		}
		return strings.TrimPrefix(line, lineMarker), true
	}
}

// Transform returns the post-processing step for matched artifact paths,
// or nil when the artifacts are directly consumable.
func (v Variant) Transform() ports.TransformFunc {
	if v.kind == VariantLegacy {
		return nil
	}
	return v.transform
}
