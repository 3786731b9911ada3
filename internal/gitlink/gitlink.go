// Package gitlink decomposes git repository references of the form
// "git+<url>@<ref>#subdirectory=<path>" into their parts.
package gitlink

import (
	"strings"

	"osa-filters/internal/types"
)

// defaultVersion is the ref assumed when a repo string carries none.
const defaultVersion = "master"

// Parse decomposes a git repo string into name, version, plugin path,
// and cleaned URL. Parsing is tolerant: a repo string with no usable
// path segments yields an empty name rather than an error.
func Parse(repo string) types.GitLink {
	url := repo
	if idx := strings.Index(url, "git+"); idx >= 0 {
		url = url[idx+len("git+"):]
	}

	version := defaultVersion
	if idx := strings.Index(url, "@"); idx >= 0 {
		version = url[idx+1:]
		url = url[:idx]
	}

	fragments := strings.Split(version, "#")
	version = fragments[0]

	pluginPath := ""
	if len(fragments) > 1 {
		last := fragments[len(fragments)-1]
		if idx := strings.Index(last, "subdirectory="); idx >= 0 {
			pluginPath = last[idx+len("subdirectory="):]
			if amp := strings.Index(pluginPath, "&"); amp >= 0 {
				pluginPath = pluginPath[:amp]
			}
		}
	}

	name := baseName(url)
	name = strings.ToLower(strings.SplitN(name, ".git", 2)[0])

	return types.GitLink{
		Name:       name,
		Version:    version,
		PluginPath: pluginPath,
		URL:        url,
		Original:   repo,
	}
}

// ParseName returns just the repository name of a git repo string.
func ParseName(repo string) string {
	return Parse(repo).Name
}

// baseName returns the final path segment of a URL, ignoring a
// trailing slash.
func baseName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
