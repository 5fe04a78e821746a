package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validDomainChars matches only alphanumeric characters, hyphens, and periods.
var validDomainChars = regexp.MustCompile(`^[a-zA-Z0-9.\-]+$`)

// ValidateDomain checks that a root domain looks like a registrable hostname:
//   - At least one dot separating labels (e.g. "example.com")
//   - Only alphanumeric characters, hyphens, and periods
//   - First character alphanumeric, last character not a hyphen or period
func ValidateDomain(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("domain is required")
	}

	if !strings.Contains(name, ".") {
		return fmt.Errorf("domain %q must contain at least one dot (e.g. example.com)", name)
	}

	if !validDomainChars.MatchString(name) {
		return fmt.Errorf("domain %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and periods are allowed)", name)
	}

	first := name[0]
	if !isAlphanumeric(first) {
		return fmt.Errorf("domain must start with an alphanumeric character, got %q", string(first))
	}

	last := name[len(name)-1]
	if last == '-' || last == '.' {
		return fmt.Errorf("domain must not end with a hyphen or period, got %q", string(last))
	}

	return nil
}

// ValidateProjectName checks that a project name is usable in file paths and
// resource tags: non-empty, and free of path separators and whitespace.
func ValidateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("project name %q must not contain path separators", name)
	}
	if strings.ContainsAny(name, " \t") {
		return fmt.Errorf("project name %q must not contain whitespace", name)
	}
	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
