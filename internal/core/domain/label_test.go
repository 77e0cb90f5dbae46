package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/bim/internal/core/domain"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "package default", in: "//projects/libs/apple"},
		{name: "explicit target", in: "//projects/libs/apple:api"},
		{name: "wildcard", in: "//projects/libs/apple:*"},
		{name: "missing slashes", in: "projects/libs/apple", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "bare slashes", in: "//", wantErr: true},
		{name: "trailing slash", in: "//projects/", wantErr: true},
		{name: "empty target", in: "//projects:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := domain.ParseLabel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got label %q", tt.in, l)
				}
				if !errors.Is(err, domain.ErrInvalidLabel) {
					t.Errorf("expected ErrInvalidLabel, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.String() != tt.in {
				t.Errorf("expected %q, got %q", tt.in, l.String())
			}
		})
	}
}

func TestLabel_Wildcard(t *testing.T) {
	l := domain.MustParseLabel("//a/b:*")
	if !l.IsWildcard() {
		t.Error("expected wildcard label")
	}

	lit := domain.MustParseLabel("//a/b:x")
	if lit.IsWildcard() {
		t.Error("did not expect wildcard label")
	}
}

func TestLabel_ToWildcard(t *testing.T) {
	pkg := domain.MustParseLabel("//a/b")
	if !pkg.IsPackageDefault() {
		t.Fatal("expected package-default label")
	}
	if got := pkg.ToWildcard().String(); got != "//a/b:*" {
		t.Errorf("expected //a/b:*, got %q", got)
	}

	// Converting an explicit target replaces the target part.
	if got := domain.MustParseLabel("//a/b:x").ToWildcard().String(); got != "//a/b:*" {
		t.Errorf("expected //a/b:*, got %q", got)
	}
}

func TestLabel_PackagePathAndTargetName(t *testing.T) {
	l := domain.MustParseLabel("//projects/libs/apple:api")
	if got := l.PackagePath(); got != "projects/libs/apple" {
		t.Errorf("unexpected package path %q", got)
	}
	if got := l.TargetName(); got != "api" {
		t.Errorf("unexpected target name %q", got)
	}

	// Package-default labels borrow the last path segment as target name.
	short := domain.MustParseLabel("//projects/libs/apple")
	if got := short.TargetName(); got != "apple" {
		t.Errorf("unexpected target name %q", got)
	}
}
