// Package busexpand expands Verilog bus range expressions into ordered
// lists of scalar references.
//
// A bus expression carries zero or more bracketed groups; each group
// holds one or more comma-separated segments of the form a, a:b, or
// a:b:s. Expansion walks the groups left to right and zips them to the
// longest group's length, cycling shorter groups, which matches the
// connectivity semantics of assignments like x[1:0] = y[3:0].
package busexpand

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hdlkit/verilog/internal/numlex"
)

// The two grammars differ only in whether a comma separates segments:
// the no-comma form treats commas as ordinary text.
var (
	fullLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Text", Pattern: `[^\[\]:,]+`},
	})
	simpleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Text", Pattern: `[^\[\]:]+`},
	})
)

// Split expands a full bus expression, including comma-separated
// segments and strides. Malformed input yields a best-effort
// expansion, never an error.
func Split(bus string) []string {
	return expand(bus, fullLexer, true)
}

// SplitNoComma expands the restricted prefix[a:b]suffix form. Commas
// are ordinary text here, so signal names containing commas pass
// through intact.
func SplitNoComma(bus string) []string {
	return expand(bus, simpleLexer, false)
}

// Expansion state inside a bracketed group.
type state uint8

const (
	outside state = iota
	expectBegin
	expectEnd
	expectStride
)

// segment accumulates one a:b:s range while scanning.
type segment struct {
	beg, end, step int64
	begSet         bool
	endSet         bool
	stepSet        bool
	raw            string // Fallback when beg is not a recognizable number
}

func (sg *segment) reset() {
	*sg = segment{}
}

// flush appends the segment's index sequence. Iteration runs from beg
// to end inclusive, descending when beg >= end, with the stride
// applied directly in the direction of travel.
func (sg *segment) flush(indices []string) []string {
	if !sg.begSet {
		if sg.raw != "" {
			indices = append(indices, sg.raw)
		}
		return indices
	}
	if !sg.endSet {
		sg.end = sg.beg
	}
	if !sg.stepSet || sg.step < 1 {
		sg.step = 1
	}
	if sg.beg >= sg.end {
		for i := sg.beg; i >= sg.end; i -= sg.step {
			indices = append(indices, strconv.FormatInt(i, 10))
			if i < math.MinInt64+sg.step {
				break
			}
		}
	} else {
		for i := sg.beg; i <= sg.end; i += sg.step {
			indices = append(indices, strconv.FormatInt(i, 10))
			if i > math.MaxInt64-sg.step {
				break
			}
		}
	}
	return indices
}

func expand(bus string, def lexer.Definition, commas bool) []string {
	if !strings.Contains(bus, "[") {
		return []string{bus}
	}
	lx, err := def.Lex("", strings.NewReader(bus))
	if err != nil {
		return []string{bus}
	}
	syms := def.Symbols()
	lbracket := syms["LBracket"]
	rbracket := syms["RBracket"]
	colon := syms["Colon"]
	comma := syms["Comma"]

	// pretexts[g] is the text before group g's indices; pretexts has
	// one more entry than groups, the tail after the final bracket.
	// Brackets themselves live in the pretexts, so a group expands as
	// "…[" + index + "]…".
	pretexts := []string{""}
	var groups [][]string
	var cur []string
	var sg segment
	st := outside

	for {
		tok, lerr := lx.Next()
		if lerr != nil || tok.EOF() {
			break
		}
		switch {
		case tok.Type == lbracket:
			pretexts[len(pretexts)-1] += tok.Value
			sg.reset()
			st = expectBegin

		case tok.Type == colon && st != outside:
			if st < expectStride {
				st++
			}

		case tok.Type == rbracket && st != outside:
			cur = sg.flush(cur)
			groups = append(groups, cur)
			cur = nil
			pretexts = append(pretexts, tok.Value)
			st = outside

		case commas && tok.Type == comma && st != outside:
			cur = sg.flush(cur)
			sg.reset()
			st = expectBegin

		case st == expectBegin:
			if v, ok := tokenValue(tok.Value); ok {
				sg.beg, sg.begSet = v, true
			} else {
				sg.raw = tok.Value
			}

		case st == expectEnd:
			if v, ok := tokenValue(tok.Value); ok {
				sg.end, sg.endSet = v, true
			}

		case st == expectStride:
			if v, ok := tokenValue(tok.Value); ok {
				sg.step, sg.stepSet = v, true
			}

		default:
			pretexts[len(pretexts)-1] += tok.Value
		}
	}

	if len(groups) == 0 {
		return []string{strings.Join(pretexts, "")}
	}

	// Zip groups to the longest one, cycling the shorter ones.
	longest := 0
	for g, indices := range groups {
		if len(indices) == 0 {
			groups[g] = []string{""}
			indices = groups[g]
		}
		if len(indices) > longest {
			longest = len(indices)
		}
	}
	out := make([]string, 0, longest)
	for i := 0; i < longest; i++ {
		var b strings.Builder
		for g, indices := range groups {
			b.WriteString(pretexts[g])
			b.WriteString(indices[i%len(indices)])
		}
		b.WriteString(pretexts[len(groups)])
		out = append(out, b.String())
	}
	return out
}

// tokenValue interprets a segment position as a Verilog numeric
// literal, so based forms like 'h1f are legal as endpoints.
func tokenValue(text string) (int64, bool) {
	l, ok := numlex.Scan(text)
	if !ok {
		return 0, false
	}
	return int64(l.Uint64()), true
}
