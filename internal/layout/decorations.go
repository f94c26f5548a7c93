package layout

import (
	"strings"
	"unicode"
)

// DecorationKind classifies one token of a ref decoration.
type DecorationKind int

const (
	DecorationHead DecorationKind = iota
	DecorationTag
	DecorationRemote
	DecorationBranch
)

// String returns a string representation of the decoration kind.
func (k DecorationKind) String() string {
	switch k {
	case DecorationHead:
		return "head"
	case DecorationTag:
		return "tag"
	case DecorationRemote:
		return "remote"
	case DecorationBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Decoration is a classified ref decoration. Name is empty for head markers
// and holds the tag name for tags and the stripped branch name otherwise.
type Decoration struct {
	Kind DecorationKind
	Name string
}

const (
	headToken   = "HEAD"
	tagToken    = "tag"
	originToken = "origin"

	remotesPrefix = "remotes/"
	originPrefix  = "origin/"
)

// Primary branch names pinned to lane 0.
const (
	BranchMain   = "main"
	BranchMaster = "master"
)

// IsPrimaryBranch reports whether name is main or master.
func IsPrimaryBranch(name string) bool {
	return name == BranchMain || name == BranchMaster
}

// ParseDecorations tokenizes raw decorations such as "HEAD -> main",
// "origin/main" or "tag: v1.0" and classifies every token.
func ParseDecorations(refs []string) []Decoration {
	var out []Decoration
	for _, raw := range refs {
		tokens := tokenizeRef(raw)
		for i := 0; i < len(tokens); i++ {
			tok := tokens[i]
			switch {
			case tok == headToken:
				out = append(out, Decoration{Kind: DecorationHead})
			case tok == tagToken:
				// "tag: v1.0" names the tag in the following token.
				if i+1 < len(tokens) {
					i++
					out = append(out, Decoration{Kind: DecorationTag, Name: tokens[i]})
				}
			case tok == originToken:
				// Bare remote name, nothing to place.
			case strings.HasPrefix(tok, remotesPrefix) || strings.HasPrefix(tok, originPrefix):
				name := strings.TrimPrefix(strings.TrimPrefix(tok, remotesPrefix), originPrefix)
				// origin/HEAD is the remote's default branch, not the checkout.
				if name != "" && name != headToken {
					out = append(out, Decoration{Kind: DecorationRemote, Name: name})
				}
			default:
				out = append(out, Decoration{Kind: DecorationBranch, Name: tok})
			}
		}
	}
	return out
}

// tokenizeRef splits on whitespace, colons, commas and "->" arrows.
func tokenizeRef(raw string) []string {
	raw = strings.ReplaceAll(raw, "->", " ")
	return strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':' || r == ','
	})
}

// BranchNames returns the deduplicated names that steer lane allocation, in
// decoration order: local branches, remote branches and tags alike. The
// first entry is the commit's primary branch name.
func BranchNames(refs []string) []string {
	return refNames(refs, true)
}

// BranchRefs is BranchNames without tag names.
func BranchRefs(refs []string) []string {
	return refNames(refs, false)
}

func refNames(refs []string, withTags bool) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, d := range ParseDecorations(refs) {
		switch d.Kind {
		case DecorationBranch, DecorationRemote:
		case DecorationTag:
			if !withTags {
				continue
			}
		default:
			continue
		}
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		names = append(names, d.Name)
	}
	return names
}

// HasHead reports whether refs mark the current checkout.
func HasHead(refs []string) bool {
	for _, d := range ParseDecorations(refs) {
		if d.Kind == DecorationHead {
			return true
		}
	}
	return false
}

// TagNames returns the tag names carried by refs.
func TagNames(refs []string) []string {
	var names []string
	for _, d := range ParseDecorations(refs) {
		if d.Kind == DecorationTag {
			names = append(names, d.Name)
		}
	}
	return names
}
