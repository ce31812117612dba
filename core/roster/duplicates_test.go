package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	dir := NewDirectory()
	dir.Put(&Team{Code: "A", Name: "A", Players: []Player{{ID: 10}, {ID: 5}}})
	dir.Put(&Team{Code: "B", Name: "B", Players: []Player{{ID: 5}, {ID: 7}}})
	dir.Put(&Team{Code: "C", Name: "C", Players: []Player{{ID: 7}, {ID: 10}}})

	before := dir.Clone()
	dups := FindDuplicates(dir)

	require.Len(t, dups, 3)
	assert.Equal(t, Duplicate{ID: 10, Teams: []string{"A", "C"}}, dups[0])
	assert.Equal(t, Duplicate{ID: 5, Teams: []string{"A", "B"}}, dups[1])
	assert.Equal(t, Duplicate{ID: 7, Teams: []string{"B", "C"}}, dups[2])
	assert.Equal(t, "10: A, C\n5: A, B\n7: B, C", dups.String())
	assert.Equal(t, []string{"A", "B"}, dups.Map()[5])

	// Read-only scan.
	assert.Equal(t, before, dir)
}

func TestFindDuplicates_None(t *testing.T) {
	dir := NewDirectory()
	dir.Put(&Team{Code: "A", Name: "A", Players: []Player{{ID: 1}}})

	assert.Empty(t, FindDuplicates(dir))
	assert.Equal(t, "", FindDuplicates(dir).String())
}
