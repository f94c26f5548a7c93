package layout

// BranchTips maps every local or remote branch name found in the decorations of commits to
// the hash carrying it. Logs list newest commits first, so the first
// decoration of a name wins.
func BranchTips(commits []Commit) map[string]string {
	tips := make(map[string]string)
	for _, c := range commits {
		for _, name := range BranchRefs(c.Refs) {
			if _, ok := tips[name]; !ok {
				tips[name] = c.Hash
			}
		}
	}
	return tips
}

// HeadCommit returns the hash of the commit decorated with HEAD.
func HeadCommit(commits []Commit) (string, bool) {
	for _, c := range commits {
		if HasHead(c.Refs) {
			return c.Hash, true
		}
	}
	return "", false
}
