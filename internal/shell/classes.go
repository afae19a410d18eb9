package shell

import "strings"

// CN merges class lists, dropping empty entries and exact duplicates while
// keeping first-seen order.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
