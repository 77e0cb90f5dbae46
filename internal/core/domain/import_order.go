package domain

import (
	"go.trai.ch/zerr"
)

// visitation states for the import order traversal.
const (
	colorUnvisited = 0
	colorVisiting  = 1
	colorDone      = 2
)

// ResolveImportOrder produces the sequence in which the selected packages
// must be materialized as projects: every package appears after all packages
// it depends on, and the workspace root is always the first element.
//
// A dependency edge from package P to package Q exists when any record
// resolved under P's targets lists a dependency label owned by Q. Packages
// with no dependency relationship keep the caller-supplied selection order.
// A cycle among the selected packages is a structural error.
func ResolveImportOrder(root *PackageNode, selected []*PackageNode, infos *AspectInfos) ([]*PackageNode, error) {
	if root == nil || !root.IsWorkspaceRoot() {
		return nil, ErrNotWorkspaceRoot
	}

	// The root is the logical predecessor of everything else and is emitted
	// by construction, not by graph membership.
	ordered := make([]*PackageNode, 0, len(selected)+1)
	ordered = append(ordered, root)

	ownerByPackage := make(map[string]*PackageNode, len(selected))
	for _, node := range selected {
		if node.IsWorkspaceRoot() {
			continue
		}
		ownerByPackage[node.Path()] = node
	}

	deps := dependencyEdges(selected, infos, ownerByPackage)

	visited := make(map[*PackageNode]int, len(selected))
	var path []*PackageNode

	var visit func(node *PackageNode) error
	visit = func(node *PackageNode) error {
		visited[node] = colorVisiting
		path = append(path, node)

		for _, dep := range deps[node] {
			switch visited[dep] {
			case colorVisiting:
				return cycleError(path, dep)
			case colorUnvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[node] = colorDone
		path = path[:len(path)-1]
		ordered = append(ordered, node)
		return nil
	}

	for _, node := range selected {
		if node.IsWorkspaceRoot() {
			continue
		}
		if visited[node] == colorUnvisited {
			if err := visit(node); err != nil {
				return nil, err
			}
		}
	}

	return ordered, nil
}

// dependencyEdges maps each selected package to the selected packages it
// depends on. Edge targets are kept in selection order so that traversal is
// deterministic.
func dependencyEdges(selected []*PackageNode, infos *AspectInfos, ownerByPackage map[string]*PackageNode) map[*PackageNode][]*PackageNode {
	deps := make(map[*PackageNode][]*PackageNode, len(selected))
	for _, node := range selected {
		if node.IsWorkspaceRoot() {
			continue
		}

		owners := make(map[*PackageNode]bool)
		if infos != nil {
			for _, info := range infos.ByPackage(node.Path()) {
				for _, dep := range info.Deps() {
					owner := ownerByPackage[dep.PackagePath()]
					if owner != nil && owner != node {
						owners[owner] = true
					}
				}
			}
		}

		var edges []*PackageNode
		for _, candidate := range selected {
			if owners[candidate] {
				edges = append(edges, candidate)
			}
		}
		deps[node] = edges
	}
	return deps
}

// cycleError constructs an error carrying the cycle path metadata.
func cycleError(path []*PackageNode, dep *PackageNode) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].Label().String() + " -> "
	}
	cyclePath += dep.Label().String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}
