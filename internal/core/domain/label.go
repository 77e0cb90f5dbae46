// Package domain contains the core domain models for Bazel workspace import:
// target labels, per-target aspect records, the discovered package tree and
// the dependency-respecting import order.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// WildcardSuffix marks a label that expands to every target in a package.
const WildcardSuffix = "*"

// Label is a canonical Bazel target label such as //projects/libs/apple or
// //projects/libs/apple:api. Labels are immutable value objects; the
// underlying string is interned because dependency lists repeat the same
// labels across many packages.
type Label struct {
	v InternedString
}

// ParseLabel validates and canonicalizes a target label string.
func ParseLabel(s string) (Label, error) {
	if !strings.HasPrefix(s, "//") {
		return Label{}, zerr.With(ErrInvalidLabel, "label", s)
	}
	body := strings.TrimPrefix(s, "//")
	if body == "" {
		return Label{}, zerr.With(ErrInvalidLabel, "label", s)
	}
	pkg, target, hasTarget := strings.Cut(body, ":")
	if strings.HasPrefix(pkg, "/") || strings.HasSuffix(pkg, "/") {
		return Label{}, zerr.With(ErrInvalidLabel, "label", s)
	}
	if hasTarget && target == "" {
		return Label{}, zerr.With(ErrInvalidLabel, "label", s)
	}
	return Label{v: NewInternedString(s)}, nil
}

// MustParseLabel is ParseLabel for statically known labels; it panics on error.
func MustParseLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the canonical label string.
func (l Label) String() string {
	return l.v.String()
}

// IsZero reports whether the label is the zero value.
func (l Label) IsZero() bool {
	return l.v.String() == ""
}

// IsWildcard reports whether the label expands to all targets in a package.
func (l Label) IsWildcard() bool {
	return strings.HasSuffix(l.v.String(), WildcardSuffix)
}

// IsPackageDefault reports whether the label names a package without an
// explicit target part, e.g. //projects/libs/apple.
func (l Label) IsPackageDefault() bool {
	return !strings.Contains(l.v.String(), ":")
}

// ToWildcard converts a package-default label into the wildcard form that
// picks up every target in the package's BUILD file.
func (l Label) ToWildcard() Label {
	if l.IsWildcard() {
		return l
	}
	s := l.v.String()
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	return Label{v: NewInternedString(s + ":" + WildcardSuffix)}
}

// PackagePath returns the workspace-relative package path of the label,
// e.g. "projects/libs/apple" for //projects/libs/apple:api.
func (l Label) PackagePath() string {
	s := strings.TrimPrefix(l.v.String(), "//")
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	return s
}

// TargetName returns the target part of the label. For a package-default
// label it returns the last path segment, matching Bazel's shorthand rules.
func (l Label) TargetName() string {
	s := strings.TrimPrefix(l.v.String(), "//")
	if i := strings.Index(s, ":"); i >= 0 {
		return s[i+1:]
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
