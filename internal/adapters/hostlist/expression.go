package hostlist

import (
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/zerr"
)

// MaxHostsPerRange bounds the expansion of a single expression.
const MaxHostsPerRange = 64 * 1024

// Expand returns the host names described by expr, e.g.
// "n[000-002,005],g[1-2]-ib" yields n000 n001 n002 n005 g1-ib g2-ib.
// Names are separated by commas or whitespace outside brackets; several
// bracket groups in one name expand as a cartesian product.
func Expand(expr string) ([]string, error) {
	words, err := splitWords(expr)
	if err != nil {
		return nil, zerr.With(err, "expression", expr)
	}

	var hosts []string
	for _, word := range words {
		names, err := expandWord(word)
		if err != nil {
			return nil, zerr.With(err, "expression", expr)
		}
		if len(hosts)+len(names) > MaxHostsPerRange {
			return nil, zerr.With(tooLarge(), "expression", expr)
		}
		hosts = append(hosts, names...)
	}
	return hosts, nil
}

// splitWords splits expr on commas and whitespace at bracket depth zero.
func splitWords(expr string) ([]string, error) {
	var words []string
	depth := 0
	start := 0
	for i, r := range expr {
		switch {
		case r == '[':
			if depth > 0 {
				return nil, invalid("nested bracket")
			}
			depth++
		case r == ']':
			if depth == 0 {
				return nil, invalid("unmatched closing bracket")
			}
			depth--
		case depth == 0 && (r == ',' || unicode.IsSpace(r)):
			if i > start {
				words = append(words, expr[start:i])
			}
			start = i + len(string(r))
		}
	}
	if depth != 0 {
		return nil, invalid("unterminated bracket")
	}
	if start < len(expr) {
		words = append(words, expr[start:])
	}
	return words, nil
}

// expandWord expands the first bracket group of word and recurses on the rest.
func expandWord(word string) ([]string, error) {
	open := strings.IndexByte(word, '[')
	if open < 0 {
		return []string{word}, nil
	}
	end := strings.IndexByte(word[open:], ']') + open

	prefix := word[:open]
	values, err := expandRanges(word[open+1 : end])
	if err != nil {
		return nil, err
	}
	suffixes, err := expandWord(word[end+1:])
	if err != nil {
		return nil, err
	}
	if len(values)*len(suffixes) > MaxHostsPerRange {
		return nil, tooLarge()
	}

	names := make([]string, 0, len(values)*len(suffixes))
	for _, v := range values {
		for _, s := range suffixes {
			names = append(names, prefix+v+s)
		}
	}
	return names, nil
}

// expandRanges expands "000-002,005" into zero-padded numbers. The width of
// each range comes from its lower bound.
func expandRanges(list string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(list, ",") {
		loStr, hiStr, isRange := strings.Cut(part, "-")
		if !isRange {
			hiStr = loStr
		}
		lo, err := parseBound(loStr)
		if err != nil {
			return nil, err
		}
		hi, err := parseBound(hiStr)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, invalid("range upper bound below lower bound")
		}
		if len(out)+(hi-lo+1) > MaxHostsPerRange {
			return nil, tooLarge()
		}

		width := len(loStr)
		for n := lo; n <= hi; n++ {
			out = append(out, pad(n, width))
		}
	}
	return out, nil
}

func parseBound(s string) (int, error) {
	if s == "" {
		return 0, invalid("empty range bound")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, invalid("non-numeric range bound")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidHostExpression.Error()), "bound", s)
	}
	return n, nil
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

func invalid(reason string) error {
	return zerr.With(domain.ErrInvalidHostExpression, "reason", reason)
}

func tooLarge() error {
	return invalid("expands to more than " + strconv.Itoa(MaxHostsPerRange) + " hosts")
}
