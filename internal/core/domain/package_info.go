package domain

import "iter"

const (
	// ArtifactSuffix is the file suffix of directly consumable aspect
	// artifacts.
	ArtifactSuffix = ".bim-build.json"

	// IntellijInfoSuffix is the file suffix of intellij-info artifacts that
	// require a transform step before they can be parsed.
	IntellijInfoSuffix = ".intellij-info.txt"
)

// PackageInfo is the parsed aspect record for one literal target. It is
// produced by the metadata parser from aspect artifact files and never
// mutated afterwards; refreshing a target means inserting a new record under
// the same label.
type PackageInfo struct {
	label            Label
	sources          []string
	deps             []Label
	generatedSources []string
}

// NewPackageInfo constructs an immutable PackageInfo, copying all slices.
func NewPackageInfo(label Label, sources []string, deps []Label, generatedSources []string) *PackageInfo {
	return &PackageInfo{
		label:            label,
		sources:          append([]string(nil), sources...),
		deps:             append([]Label(nil), deps...),
		generatedSources: append([]string(nil), generatedSources...),
	}
}

// Label returns the owning target label.
func (p *PackageInfo) Label() Label {
	return p.label
}

// Sources returns the workspace-relative source file paths, in aspect order.
func (p *PackageInfo) Sources() []string {
	return append([]string(nil), p.sources...)
}

// Deps returns the dependency target labels.
func (p *PackageInfo) Deps() []Label {
	return append([]Label(nil), p.deps...)
}

// GeneratedSources returns the workspace-relative generated source directories.
func (p *PackageInfo) GeneratedSources() []string {
	return append([]string(nil), p.generatedSources...)
}

// AspectInfos is an insertion-ordered collection of per-target aspect
// records, keyed by label. Insertion order equals resolution order.
type AspectInfos struct {
	order   []Label
	byLabel map[Label]*PackageInfo
}

// NewAspectInfos creates an empty collection.
func NewAspectInfos() *AspectInfos {
	return &AspectInfos{
		byLabel: make(map[Label]*PackageInfo),
	}
}

// Put inserts or replaces the record for its label. A replaced label keeps
// its original position in the iteration order.
func (a *AspectInfos) Put(info *PackageInfo) {
	if _, exists := a.byLabel[info.Label()]; !exists {
		a.order = append(a.order, info.Label())
	}
	a.byLabel[info.Label()] = info
}

// Get returns the record for the given label, or nil if absent.
func (a *AspectInfos) Get(label Label) *PackageInfo {
	return a.byLabel[label]
}

// Len returns the number of records.
func (a *AspectInfos) Len() int {
	return len(a.byLabel)
}

// Labels returns the labels in insertion order.
func (a *AspectInfos) Labels() []Label {
	return append([]Label(nil), a.order...)
}

// Walk returns an iterator over the records in insertion order.
func (a *AspectInfos) Walk() iter.Seq[*PackageInfo] {
	return func(yield func(*PackageInfo) bool) {
		for _, label := range a.order {
			if !yield(a.byLabel[label]) {
				return
			}
		}
	}
}

// ByPackage returns the records whose labels live in the given
// workspace-relative package path, in insertion order.
func (a *AspectInfos) ByPackage(pkgPath string) []*PackageInfo {
	var infos []*PackageInfo
	for _, label := range a.order {
		if label.PackagePath() == pkgPath {
			infos = append(infos, a.byLabel[label])
		}
	}
	return infos
}
