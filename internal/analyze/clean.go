package analyze

import "strings"

func CleanUnicode(input string) string {
	if input == "" {
		return input
	}

	for _, u := range unicode {
		input = strings.ReplaceAll(input, u, " ")
	}
	input = strings.Join(strings.Fields(input), " ")

	return input
}

// CleanAnimeName drops the season suffix of a card title.
func CleanAnimeName(input string) string {
	before, _, _ := strings.Cut(input, " الموسم")
	return strings.TrimSpace(before)
}
