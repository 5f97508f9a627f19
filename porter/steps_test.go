package porter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffixTableOrder(t *testing.T) {
	for name, table := range map[string]*suffixTable{"step2": step2Table, "step3": step3Table, "step4": step4Table} {
		for i := 1; i < len(table.keys); i++ {
			assert.GreaterOrEqual(t, len(table.keys[i-1]), len(table.keys[i]),
				"%s: %q sorted before longer %q", name, table.keys[i-1], table.keys[i])
		}
		assert.Len(t, table.repl, len(table.keys), name)
	}

	// equal lengths keep declaration order
	assert.Equal(t, []string{"alize", "icate", "iciti"}, step3Table.keys[2:5])
}

func TestSuffixTableApply(t *testing.T) {
	tests := []struct {
		name  string
		table *suffixTable
		g     guard
		word  string
		want  string
		found bool
	}{
		{"longest wins", step3Table, inR1, "relational", "relate", true},
		{"guard rejects all", step3Table, inR1, "rational", "rational", false},
		{"shorter key after guard", step4Table, inR2, "agreement", "agreem", true},
		{"empty stem rejected", step2Table, nonEmptyStem, "bli", "bli", false},
		{"nil guard", step2Table, nil, "bli", "ble", true},
		{"no key", step4Table, inR2, "caress", "caress", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tt.table.apply(tt.word, tt.g)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestSuffixTableDuplicate(t *testing.T) {
	assert.Panics(t, func() { newDeletionTable("al", "ic", "al") })
}

func TestCollapseDouble(t *testing.T) {
	tests := []struct {
		word  string
		want  string
		found bool
	}{
		{"hopp", "hop", true},
		{"runn", "run", true},
		{"fall", "fall", false},
		{"hiss", "hiss", false},
		{"fizz", "fizz", false},
		{"t", "t", false},
	}

	for _, tt := range tests {
		got, found := collapseDouble(tt.word)
		assert.Equal(t, tt.want, got, "collapseDouble(%q)", tt.word)
		assert.Equal(t, tt.found, found, "collapseDouble(%q)", tt.word)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name string
		step func(string) string
		in   string
		want string
	}{
		{"step0", step0, "cat's", "cat"},
		{"step0", step0, "cats'", "cats"},
		{"step0", step0, "cat's'", "cat"},
		{"step0", step0, "cat", "cat"},

		{"step1a", step1a, "caresses", "caress"},
		{"step1a", step1a, "ponies", "poni"},
		{"step1a", step1a, "tied", "ti"},
		{"step1a", step1a, "caress", "caress"},
		{"step1a", step1a, "gas", "ga"},
		{"step1a", step1a, "bus", "bus"},
		{"step1a", step1a, "s", "s"},

		{"step1b", step1b, "agreed", "agree"},
		{"step1b", step1b, "feed", "fe"},
		{"step1b", step1b, "sing", "sing"},
		{"step1b", step1b, "conflated", "conflate"},
		{"step1b", step1b, "troubled", "trouble"},
		{"step1b", step1b, "sized", "size"},
		{"step1b", step1b, "tanning", "tan"},
		{"step1b", step1b, "fizzed", "fizz"},
		{"step1b", step1b, "failing", "fail"},
		{"step1b", step1b, "filing", "file"},
		{"step1b", step1b, "exceedingly", "exceed"},

		{"step1c", step1c, "happy", "happi"},
		{"step1c", step1c, "cry", "cri"},
		{"step1c", step1c, "by", "by"},
		{"step1c", step1c, "sa\x01", "sa\x01"},
		{"step1c", step1c, "spr\x01", "spri"},

		{"step3", step3, "formative", "formative"},
		{"step3", step3, "demonstrative", "demonstr"},
		{"step3", step3, "hopeful", "hope"},
		{"step3", step3, "electriciti", "electric"},

		{"step4", step4, "revival", "reviv"},
		{"step4", step4, "conditional", "condition"},
		{"step4", step4, "triplic", "triplic"},

		{"step5", step5, "hope", "hope"},
		{"step5", step5, "relate", "relat"},
		{"step5", step5, "controll", "control"},
		{"step5", step5, "controlle", "control"},
		{"step5", step5, "fall", "fall"},
		{"step5", step5, "e", "e"},
		{"step5", step5, "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step(tt.in), "%s(%q)", tt.name, tt.in)
	}
}

func TestStep2Fallback(t *testing.T) {
	tests := []struct {
		word     string
		literal  string
		anchored string
	}{
		{"gentli4", "gent", "gentli4"},
		{"warmli", "warmli", "warm"},
		{"vileli", "vileli", "vile"},
		{"bali", "bali", "bali"},
		{"tli", "tli", "tli"},
		{"differentli", "different", "different"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.literal, step2(tt.word, LiRuleLiteral), "step2(%q, literal)", tt.word)
		assert.Equal(t, tt.anchored, step2(tt.word, LiRuleAnchored), "step2(%q, anchored)", tt.word)
	}
}

func TestDeleteLi(t *testing.T) {
	literal := map[string]string{
		"abcli4x": "abcx",
		"cli4":    "cli4",
		"abli4":   "abli4",
		"cheli":   "cheli",
	}
	for in, want := range literal {
		assert.Equal(t, want, deleteLiteralLi(in), "deleteLiteralLi(%q)", in)
	}

	anchored := map[string]string{
		"cheli":   "che",
		"gentli":  "gent",
		"ali":     "ali",
		"bali":    "bali",
		"abcli4x": "abcli4x",
	}
	for in, want := range anchored {
		assert.Equal(t, want, deleteAnchoredLi(in), "deleteAnchoredLi(%q)", in)
	}
}
