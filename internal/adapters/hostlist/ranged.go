package hostlist

import (
	"cmp"
	"strconv"
	"strings"
)

// host is a name split into a prefix and an optional trailing number.
type host struct {
	name   string
	prefix string
	num    int
	width  int
	// numbered is false for names without a trailing number.
	numbered bool
}

// padded reports whether the number carries leading zeros.
func (h host) padded() bool {
	return h.width > len(strconv.Itoa(h.num))
}

func parseHost(name string) host {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return host{name: name, prefix: name}
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return host{name: name, prefix: name}
	}
	return host{
		name:     name,
		prefix:   name[:i],
		num:      n,
		width:    len(name) - i,
		numbered: true,
	}
}

// compareHosts orders by prefix, un-numbered names first, then by number and width.
func compareHosts(a, b host) int {
	if c := strings.Compare(a.prefix, b.prefix); c != 0 {
		return c
	}
	if a.numbered != b.numbered {
		if a.numbered {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.num, b.num); c != 0 {
		return c
	}
	return cmp.Compare(a.width, b.width)
}

// group is a run of adjacent numbered hosts sharing a prefix and a
// compatible width. A natural group renders its numbers unpadded; once a
// zero-padded host joins, every member is rendered at that host's width.
type group struct {
	prefix  string
	width   int
	natural bool
	// minWidth is the narrowest member seen so far.
	minWidth int
	nums     []int
}

func (g *group) accepts(h host) bool {
	if !h.numbered || h.prefix != g.prefix {
		return false
	}
	if g.natural {
		if !h.padded() {
			return true
		}
		// Padding narrower members would print names that were never given.
		return h.width <= g.minWidth
	}
	return h.width == g.width
}

func (g *group) add(h host) {
	if len(g.nums) == 0 || h.width < g.minWidth {
		g.minWidth = h.width
	}
	g.nums = append(g.nums, h.num)
	if h.padded() {
		g.natural = false
		g.width = h.width
	}
}

func (g *group) format(n int) string {
	if g.natural {
		return strconv.Itoa(n)
	}
	return pad(n, g.width)
}

func (g *group) String() string {
	if len(g.nums) == 1 {
		return g.prefix + g.format(g.nums[0])
	}

	var b strings.Builder
	b.WriteString(g.prefix)
	b.WriteByte('[')
	for i := 0; i < len(g.nums); {
		j := i
		for j+1 < len(g.nums) && g.nums[j+1] == g.nums[j]+1 {
			j++
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(g.format(g.nums[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(g.format(g.nums[j]))
		}
		i = j + 1
	}
	b.WriteByte(']')
	return b.String()
}

// Compress folds adjacent names sharing a prefix into bracketed ranges:
// n000,n001,n002,n005 becomes n[000-002,005]. Order is preserved; only
// neighbours are merged.
func Compress(names []string) string {
	parts := make([]string, 0, len(names))
	var cur *group
	flush := func() {
		if cur != nil {
			parts = append(parts, cur.String())
			cur = nil
		}
	}

	for _, name := range names {
		h := parseHost(name)
		if cur != nil && cur.accepts(h) {
			cur.add(h)
			continue
		}
		flush()
		if !h.numbered {
			parts = append(parts, h.name)
			continue
		}
		cur = &group{prefix: h.prefix, width: h.width, natural: !h.padded()}
		cur.add(h)
	}
	flush()

	return strings.Join(parts, ",")
}
