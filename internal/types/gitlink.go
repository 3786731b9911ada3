package types

// GitLink is the decomposed form of a git repository reference as it
// appears in playbook variables, e.g.
// "git+https://opendev.org/openstack/nova@stable/2024.1#subdirectory=plugins".
type GitLink struct {
	Name       string `yaml:"name" json:"name"`
	Version    string `yaml:"version" json:"version"`
	PluginPath string `yaml:"plugin_path,omitempty" json:"plugin_path,omitempty"`
	URL        string `yaml:"url" json:"url"`
	Original   string `yaml:"original" json:"original"`
}
