package paneltext

// InList reports whether needle exactly matches any of candidates. No case
// folding, no trimming. Callers use it to branch on known literal values
// such as entity-domain strings.
func InList(needle string, candidates ...string) bool {
	for _, c := range candidates {
		if needle == c {
			return true
		}
	}
	return false
}
