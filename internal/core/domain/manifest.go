package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// ManifestRepository is the repository block of a package manifest.
type ManifestRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Manifest is the subset of a bower.json the workspace cares about.
type Manifest struct {
	Name            string              `json:"name"`
	Repository      *ManifestRepository `json:"repository,omitempty"`
	Dependencies    map[string]string   `json:"dependencies,omitempty"`
	DevDependencies map[string]string   `json:"devDependencies,omitempty"`
}

// ParseManifest decodes a bower.json document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GitURL returns the repository URL when the manifest declares a git repository.
func (m *Manifest) GitURL() (string, bool) {
	if m.Repository == nil || m.Repository.Type != string(OriginGit) || m.Repository.URL == "" {
		return "", false
	}
	return m.Repository.URL, true
}

// Descriptors returns the descriptors of every declared dependency and
// devDependency, ordered by dependency name and without duplicates.
func (m *Manifest) Descriptors() []string {
	seen := make(map[string]struct{}, len(m.Dependencies)+len(m.DevDependencies))
	var out []string
	for _, deps := range []map[string]string{m.Dependencies, m.DevDependencies} {
		names := make([]string, 0, len(deps))
		for name := range deps {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			descriptor := DependencyDescriptor(name, deps[name])
			if _, ok := seen[descriptor]; ok {
				continue
			}
			seen[descriptor] = struct{}{}
			out = append(out, descriptor)
		}
	}
	return out
}

// DependencyDescriptor turns a manifest dependency entry into a descriptor
// the stager understands. Bare version ranges are bound to the dependency
// name as name#range; any other source (owner/repo, URL, package name) is
// forwarded verbatim.
func DependencyDescriptor(name, source string) string {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return name
	case isVersionRange(source):
		return name + "#" + source
	default:
		return source
	}
}

func isVersionRange(s string) bool {
	if s == "latest" {
		return true
	}
	if strings.ContainsAny(s[:1], "0123456789^~<>=*") {
		return true
	}
	return len(s) > 1 && s[0] == 'v' && s[1] >= '0' && s[1] <= '9'
}
