package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// RequestFile is the on-disk shape of a lock request.
// The module protocol's JSON argument file decodes into the same struct.
type RequestFile struct {
	Zypper  string   `yaml:"zypper"`
	Name    NameList `yaml:"name"`
	State   string   `yaml:"state"`
	PkgType string   `yaml:"pkgtype"`
	Repo    string   `yaml:"repo"`
	Message string   `yaml:"message"`

	CheckMode        bool `yaml:"check_mode"`
	AnsibleCheckMode bool `yaml:"_ansible_check_mode"`
}

// NameList accepts either a sequence of names or a single string.
// A string is split on commas.
type NameList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*n = splitNames(s)
		return nil
	}

	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*n = names
	return nil
}

func splitNames(s string) NameList {
	names := NameList{}
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
