package domain

import (
	"path"
	"slices"
	"strings"
)

// LeafDenylist lists tooling packages that are installed only to compute
// leaves and never belong to the user's environment.
var LeafDenylist = []string{"conda-tree", "pip", "conda"}

// Package is an installed package.
type Package struct {
	Name    string
	Version string
}

// String renders the package as a name==version pin. Packages without a
// version render as the bare name.
func (p Package) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "==" + p.Version
}

// ParsePackage reads a name==version pin.
func ParsePackage(s string) Package {
	name, version, _ := strings.Cut(strings.TrimSpace(s), "==")
	return Package{Name: name, Version: version}
}

// PackageLines splits a layer document into its non-empty, non-comment lines.
func PackageLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseExplicitLock extracts name and version from the URLs of a
// `conda list --explicit` document. Build strings are dropped.
func ParseExplicitLock(text string) []Package {
	var pkgs []Package
	for _, line := range PackageLines(text) {
		base := path.Base(line)
		base = strings.TrimSuffix(base, ".tar.bz2")
		base = strings.TrimSuffix(base, ".conda")
		// name-version-build, where name may itself contain dashes.
		parts := strings.Split(base, "-")
		if len(parts) < 3 {
			continue
		}
		pkgs = append(pkgs, Package{
			Name:    strings.Join(parts[:len(parts)-2], "-"),
			Version: parts[len(parts)-2],
		})
	}
	return pkgs
}

// PackageSet returns the sorted name==version pins of pkgs.
func PackageSet(pkgs []Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.String())
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Leaves returns the installed packages no other installed package depends
// on, skipping LeafDenylist. depends maps a package name to the names it
// requires. The result keeps the order of packages.
func Leaves(packages []Package, depends map[string][]string) []Package {
	required := make(map[string]struct{})
	for _, p := range packages {
		for _, dep := range depends[p.Name] {
			if dep != p.Name {
				required[dep] = struct{}{}
			}
		}
	}

	var leaves []Package
	for _, p := range packages {
		if _, ok := required[p.Name]; ok {
			continue
		}
		if slices.Contains(LeafDenylist, p.Name) {
			continue
		}
		leaves = append(leaves, p)
	}
	return leaves
}

// PinLeaves resolves leaf names against the installed packages, keeping
// names without a known version unpinned. Denylisted names are dropped.
func PinLeaves(names []string, installed []Package) []Package {
	versions := make(map[string]string, len(installed))
	for _, p := range installed {
		versions[p.Name] = p.Version
	}
	var out []Package
	for _, name := range names {
		if slices.Contains(LeafDenylist, name) {
			continue
		}
		out = append(out, Package{Name: name, Version: versions[name]})
	}
	return out
}
