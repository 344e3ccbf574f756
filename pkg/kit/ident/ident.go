// Package ident derives stable, human-readable identifiers for choices
// and actions so the same list produces the same IDs on every run.
package ident

import (
	"strconv"
	"strings"
)

// MaxSlugLen bounds the slug portion of a generated identifier.
const MaxSlugLen = 20

// Fallback is the slug used when the input has no alphanumeric characters.
const Fallback = "item"

// MakeID builds a positional identifier of the form "kind:index:slug".
// Index keeps IDs unique within one list even when two entries share a
// name; the slug keeps them readable.
func MakeID(kind string, index int, text string) string {
	var b strings.Builder
	b.Grow(len(kind) + len(text) + 8)
	b.WriteString(kind)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(index))
	b.WriteByte(':')
	b.WriteString(Slug(text))

	return b.String()
}

// MakeNamedID builds a name-only identifier of the form "kind:slug" for
// entries addressed by name rather than by position.
func MakeNamedID(kind, name string) string {
	return kind + ":" + Slug(name)
}

// Slug normalizes text into a lowercase token safe to embed in an
// identifier. Whitespace, underscores, and any other non-alphanumeric
// characters become hyphens, runs of hyphens collapse to one, and the
// result is clamped to MaxSlugLen with no leading or trailing hyphen.
// Text with no alphanumeric characters at all slugs to Fallback.
func Slug(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))

	pendingHyphen := false

	for _, r := range lowered {
		if !isAlnum(r) {
			// Collapse every separator run, whatever it is made
			// of, into a single hyphen.
			if b.Len() > 0 {
				pendingHyphen = true
			}

			continue
		}

		if pendingHyphen {
			b.WriteByte('-')

			pendingHyphen = false
		}

		b.WriteRune(r)

		if b.Len() >= MaxSlugLen {
			break
		}
	}

	slug := b.String()
	if len(slug) > MaxSlugLen {
		slug = slug[:MaxSlugLen]
	}

	slug = strings.TrimRight(slug, "-")

	if slug == "" {
		return Fallback
	}

	return slug
}

// isAlnum reports whether r survives slugging untouched. Only ASCII
// letters and digits qualify, which keeps byte length equal to rune
// length and makes the MaxSlugLen clamp exact.
func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
