package news

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	tradeName   = regexp.MustCompile(`•\s([A-ZÁÉÍÓÚÄÖÜÂÊÎÔÛÀÈÌÒÙa-z'\.\-]+\s[A-Z][a-z]+)`)
	teamBlocks  = regexp.MustCompile(`\* \* \*`)
	signingName = regexp.MustCompile(`•\s([A-Z][\p{L}\p{N}_\.' -]+?)\s(?:agrees|joins|arrives)`)
	draftPick   = regexp.MustCompile(`\d+\.\s(.+?)\s+—?\s?(?:Draft|–)`)
	draftID     = regexp.MustCompile(`"player_id":\s?(\d+)`)
)

// Bullet words that the trade pattern picks up but are not names.
var tradeStopWords = map[string]struct{}{
	"official": {},
	"related":  {},
}

// DraftPick is a drafted player with the id published alongside the pick.
type DraftPick struct {
	Name string
	ID   int
}

// ExtractTrades returns the distinct player names in a trade tracker page, sorted.
func ExtractTrades(text string) []string {
	set := make(map[string]struct{})
	for _, m := range tradeName.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if _, stop := tradeStopWords[strings.ToLower(name)]; stop {
			continue
		}
		set[name] = struct{}{}
	}
	return sortedKeys(set)
}

// ExtractSignings returns the distinct players listed under "Additions" in a
// free-agency page, sorted. Team sections are separated by "* * *".
func ExtractSignings(text string) []string {
	set := make(map[string]struct{})
	for _, block := range teamBlocks.Split(text, -1) {
		if !strings.Contains(block, "Additions") {
			continue
		}
		for _, m := range signingName.FindAllStringSubmatch(block, -1) {
			set[m[1]] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// ExtractDraft pairs the pick names of a draft results page with the player
// ids embedded in the page, in page order. Extra names or ids are ignored.
func ExtractDraft(text string) []DraftPick {
	names := draftPick.FindAllStringSubmatch(text, -1)
	ids := draftID.FindAllStringSubmatch(text, -1)

	n := min(len(names), len(ids))
	picks := make([]DraftPick, 0, n)
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id, err := strconv.Atoi(ids[i][1])
		if err != nil {
			continue
		}
		name := names[i][1]
		// a repeated name keeps its first position and takes the later id
		if at, ok := seen[name]; ok {
			picks[at].ID = id
			continue
		}
		seen[name] = len(picks)
		picks = append(picks, DraftPick{Name: name, ID: id})
	}
	return picks
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
