package layout

import "strings"

// FieldSeparator separates the fields of one log record.
const FieldSeparator = "|"

// ParseLog parses raw log text into commits, one record per line in the form
// "hash|parent hashes|ref decorations|subject". Blank lines and lines without a
// hash are dropped; input order is preserved.
func ParseLog(raw string) []Commit {
	lines := strings.Split(raw, "\n")
	commits := make([]Commit, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, ok := ParseRecord(line)
		if !ok {
			continue
		}
		commits = append(commits, c)
	}

	return commits
}

// ParseRecord parses a single log record. It returns false when the record
// has no hash.
func ParseRecord(line string) (Commit, bool) {
	// The subject is the last field and may itself contain separators.
	fields := strings.SplitN(line, FieldSeparator, 4)
	for len(fields) < 4 {
		fields = append(fields, "")
	}

	hash := strings.TrimSpace(fields[0])
	if hash == "" {
		return Commit{}, false
	}

	message := strings.TrimSpace(fields[3])
	if message == "" {
		message = NoMessage
	}

	return Commit{
		Hash:    hash,
		Parents: strings.Fields(fields[1]),
		Refs:    splitRefs(fields[2]),
		Message: message,
	}, true
}

func splitRefs(field string) []string {
	refs := []string{}
	for _, r := range strings.Split(field, ",") {
		if r = strings.TrimSpace(r); r != "" {
			refs = append(refs, r)
		}
	}
	return refs
}

// FormatRecord renders a commit back into the log record form accepted by
// ParseRecord.
func FormatRecord(c Commit) string {
	return strings.Join([]string{
		c.Hash,
		strings.Join(c.Parents, " "),
		strings.Join(c.Refs, ", "),
		c.Message,
	}, FieldSeparator)
}
