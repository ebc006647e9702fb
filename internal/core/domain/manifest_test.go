package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wcw/internal/core/domain"
)

func TestDependencyDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		dep    string
		source string
		want   string
	}{
		{"empty source", "polymer", "", "polymer"},
		{"caret range", "polymer", "^1.0.0", "polymer#^1.0.0"},
		{"tilde range", "polymer", "~1.2", "polymer#~1.2"},
		{"exact version", "polymer", "1.4.0", "polymer#1.4.0"},
		{"v prefixed", "polymer", "v1", "polymer#v1"},
		{"latest", "polymer", "latest", "polymer#latest"},
		{"wildcard", "polymer", "*", "polymer#*"},
		{"package name", "core", "C", "C"},
		{"owner repo", "x", "org/x", "org/x"},
		{"git url", "x", "https://example.com/x.git", "https://example.com/x.git"},
		{"word starting with v", "x", "vendor/x", "vendor/x"},
		{"surrounding space", "polymer", " ^1.0.0 ", "polymer#^1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DependencyDescriptor(tt.dep, tt.source))
		})
	}
}

func TestManifest_Descriptors(t *testing.T) {
	m := &domain.Manifest{
		Dependencies: map[string]string{
			"b": "org/b",
			"a": "^1.0.0",
		},
		DevDependencies: map[string]string{
			"b":    "org/b",
			"test": "org/test",
		},
	}

	assert.Equal(t, []string{"a#^1.0.0", "org/b", "org/test"}, m.Descriptors())
	assert.Empty(t, (&domain.Manifest{}).Descriptors())
}

func TestManifest_GitURL(t *testing.T) {
	tests := []struct {
		name   string
		repo   *domain.ManifestRepository
		want   string
		wantOK bool
	}{
		{"no repository", nil, "", false},
		{"git", &domain.ManifestRepository{Type: "git", URL: "https://example.com/a.git"}, "https://example.com/a.git", true},
		{"svn", &domain.ManifestRepository{Type: "svn", URL: "https://example.com/a"}, "", false},
		{"git without url", &domain.ManifestRepository{Type: "git"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := (&domain.Manifest{Repository: tt.repo}).GitURL()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, url)
		})
	}
}

func TestParseManifest(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{
		"name": "a",
		"repository": {"type": "git", "url": "https://example.com/a.git"},
		"dependencies": {"b": "org/b"},
		"main": "a.html"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "a", m.Name)
	assert.Equal(t, map[string]string{"b": "org/b"}, m.Dependencies)

	url, ok := m.GitURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a.git", url)

	_, err = domain.ParseManifest([]byte(`{"name":`))
	require.Error(t, err)
}
