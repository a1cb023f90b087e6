package dispatchers

import (
	"slices"
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	// Initialize first column
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}

	// Initialize first row
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands finds keys and aliases under node similar to input.
// Transparent groups are searched as part of node's own level. It returns
// up to maxResults suggestions, closest first.
func FindSimilarCommands(input string, t *Tree, node NodeID, maxResults int) []string {
	if t == nil || t.Node(node) == nil {
		return nil
	}

	const maxDistance = 3

	seen := make(map[string]bool)
	var suggestions []suggestion

	for _, cid := range t.Visible(node) {
		child := t.Node(cid)
		for _, name := range append([]string{child.Key}, child.Aliases...) {
			if seen[name] {
				continue
			}
			seen[name] = true
			dist := levenshtein(input, name)
			if dist <= maxDistance && dist > 0 {
				suggestions = append(suggestions, suggestion{name: name, distance: dist})
			}
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}

	return result
}

// VisibleKeys lists the distinct keys reachable one word below node,
// sorted, at most maxResults of them.
func VisibleKeys(t *Tree, node NodeID, maxResults int) []string {
	if t == nil || t.Node(node) == nil {
		return nil
	}

	seen := make(map[string]bool)
	var keys []string
	for _, cid := range t.Visible(node) {
		key := t.Node(cid).Key
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if maxResults > 0 && len(keys) > maxResults {
		keys = keys[:maxResults]
	}
	return keys
}

// CollectAllCommands returns the distinct space-joined paths of every
// command in the tree, sorted. Siblings sharing a path appear once.
func CollectAllCommands(t *Tree) []string {
	if t == nil {
		return nil
	}

	var commands []string
	for i := 0; i < t.Len(); i++ {
		n := t.Node(NodeID(i))
		if n.Kind == KindCommand {
			commands = append(commands, strings.Join(t.Path(n.ID), " "))
		}
	}
	sort.Strings(commands)
	return slices.Compact(commands)
}
