// Package canonical turns JSON5 text into its canonical formatted form.
//
// Canonical form is a pure function of the input document and Options: every
// object has its keys reordered (pinned top keys first, then the rest sorted
// or in source order), the tree is indented one Indent unit per level, and the
// text ends with exactly one newline.
package canonical

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/mpyw/prettyjson5/internal/json5"
)

// ErrInvalidDocument is returned when the input is not valid JSON5.
var ErrInvalidDocument = errors.New("invalid JSON5 document")

// Indent is one level of indentation.
type Indent struct {
	unit string
}

// Spaces returns an indent of n spaces. Negative counts are treated as zero.
func Spaces(n int) Indent {
	return Indent{unit: strings.Repeat(" ", max(n, 0))}
}

// Literal returns an indent that repeats s verbatim, such as "\t".
func Literal(s string) Indent {
	return Indent{unit: s}
}

// ParseIndent interprets a flag value: a decimal integer is a count of
// spaces, anything else is used verbatim.
func ParseIndent(s string) Indent {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return Spaces(n)
	}

	return Literal(s)
}

// Unit returns the text written once per nesting level.
func (i Indent) Unit() string {
	return i.unit
}

// Options controls canonical formatting.
type Options struct {
	Indent      Indent
	EnsureASCII bool
	SortKeys    bool
	// TopKeys are placed first in every object, in this order.
	TopKeys []string
}

// DefaultOptions returns two-space indentation with sorted keys.
func DefaultOptions() Options {
	return Options{
		Indent:   Spaces(2),
		SortKeys: true,
	}
}

// Canonicalize parses raw and renders it in canonical form.
func Canonicalize(raw string, opts Options) (string, error) {
	doc, err := json5.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc = Reorder(doc, opts)

	text := json5.Encode(doc, json5.EncodeOptions{
		Indent:      opts.Indent.Unit(),
		EnsureASCII: opts.EnsureASCII,
	})

	return text + "\n", nil
}

// Reorder returns v with the keys of every object, at every depth, arranged
// according to opts. Input values are not modified.
func Reorder(v json5.Value, opts Options) json5.Value {
	r := reorderer{
		rank:     topKeyRank(opts.TopKeys),
		sortKeys: opts.SortKeys,
	}

	return r.value(v)
}

type reorderer struct {
	rank     map[string]int
	sortKeys bool
}

// topKeyRank maps each pinned key to its first position in keys.
func topKeyRank(keys []string) map[string]int {
	rank := make(map[string]int, len(keys))
	for i, k := range lo.Uniq(keys) {
		rank[k] = i
	}

	return rank
}

func (r reorderer) value(v json5.Value) json5.Value {
	switch v := v.(type) {
	case *json5.Object:
		return r.object(v)
	case json5.Array:
		out := make(json5.Array, len(v))
		for i, elem := range v {
			out[i] = r.value(elem)
		}

		return out
	default:
		return v
	}
}

func (r reorderer) object(o *json5.Object) *json5.Object {
	members := make([]json5.Member, len(o.Members))
	for i, m := range o.Members {
		members[i] = json5.Member{Key: m.Key, Value: r.value(m.Value)}
	}

	before, after := lo.FilterReject(members, func(m json5.Member, _ int) bool {
		_, pinned := r.rank[m.Key]
		return pinned
	})

	slices.SortStableFunc(before, func(a, b json5.Member) int {
		return r.rank[a.Key] - r.rank[b.Key]
	})

	if r.sortKeys {
		slices.SortStableFunc(after, func(a, b json5.Member) int {
			return strings.Compare(a.Key, b.Key)
		})
	}

	return &json5.Object{Members: append(before, after...)}
}
