package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Policy decides whether a parsed command may be launched. It runs before
// the process is started.
type Policy interface {
	Check(program string, args []string) error
}

// AllowAll permits every command.
type AllowAll struct{}

func (AllowAll) Check(string, []string) error { return nil }

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(program string, args []string) error

func (f PolicyFunc) Check(program string, args []string) error { return f(program, args) }

// ListPolicy enforces the whitelist/blacklist kept in settings. An entry
// such as "git push" matches any command whose leading tokens are git and
// push; the program token is compared by base name. Blacklist entries win.
// With a non-empty whitelist, anything not listed is rejected.
type ListPolicy struct {
	Whitelist []string
	Blacklist []string
}

func (p ListPolicy) Check(program string, args []string) error {
	tokens := normalizeTokens(append([]string{program}, args...))
	if len(tokens) > 0 {
		tokens[0] = filepath.Base(tokens[0])
	}

	if entry, ok := firstMatch(p.Blacklist, tokens); ok {
		return &ExecError{
			Kind:    KindRejected,
			Program: program,
			Message: fmt.Sprintf("command rejected: %q is blacklisted", entry),
		}
	}
	if !hasEntries(p.Whitelist) {
		return nil
	}
	if _, ok := firstMatch(p.Whitelist, tokens); ok {
		return nil
	}
	return &ExecError{
		Kind:    KindRejected,
		Program: program,
		Message: fmt.Sprintf("command rejected: %s is not whitelisted", program),
	}
}

func firstMatch(entries, tokens []string) (string, bool) {
	for _, entry := range entries {
		want := normalizeTokens(strings.Fields(entry))
		if len(want) == 0 || len(want) > len(tokens) {
			continue
		}
		want[0] = filepath.Base(want[0])
		matched := true
		for i := range want {
			if want[i] != tokens[i] {
				matched = false
				break
			}
		}
		if matched {
			return entry, true
		}
	}
	return "", false
}

func hasEntries(entries []string) bool {
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			return true
		}
	}
	return false
}

// normalizeTokens folds lookalike unicode to NFKC and lower-cases, so a
// fullwidth "ｒｍ" cannot slip past an "rm" entry.
func normalizeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(norm.NFKC.String(t))
	}
	return out
}
