package porter

import (
	"fmt"
	"strings"
)

// LiRule selects the fallback step 2 applies when no table suffix matches.
//
// The rule was published as a pattern that expects the literal text "li4"
// where an end-of-word anchor after "li" was clearly meant. LiRuleLiteral keeps
// that behaviour, so on normalized input the fallback never fires.
// LiRuleAnchored deletes a final "li" instead.
type LiRule int

const (
	LiRuleLiteral LiRule = iota
	LiRuleAnchored
)

func (r LiRule) String() string {
	switch r {
	case LiRuleLiteral:
		return "literal"
	case LiRuleAnchored:
		return "anchored"
	}
	return fmt.Sprintf("LiRule(%d)", int(r))
}

// ParseLiRule maps "literal" or "anchored" to a LiRule.
func ParseLiRule(s string) (LiRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "literal", "":
		return LiRuleLiteral, nil
	case "anchored":
		return LiRuleAnchored, nil
	}
	return LiRuleLiteral, fmt.Errorf("unknown li rule %q", s)
}

// liEnding reports whether c may precede a deletable "li".
func liEnding(c byte) bool {
	return strings.IndexByte("cdeghkmnrt", c) >= 0
}

// deleteLiteralLi removes the first "li4" that follows a li-ending letter with
// at least one more letter before it.
func deleteLiteralLi(word string) string {
	for i := 2; i+3 <= len(word); i++ {
		if word[i:i+3] == "li4" && liEnding(word[i-1]) {
			return word[:i] + word[i+3:]
		}
	}
	return word
}

// deleteAnchoredLi removes a final "li" under the same precondition.
func deleteAnchoredLi(word string) string {
	i := len(word) - 2
	if i >= 2 && word[i:] == "li" && liEnding(word[i-1]) {
		return word[:i]
	}
	return word
}

func (r LiRule) fallback(word string) string {
	if r == LiRuleAnchored {
		return deleteAnchoredLi(word)
	}
	return deleteLiteralLi(word)
}
