// Package sanitize strips unsafe markup from schema text and walks schema
// trees applying it to every string.
//
// Two modes are provided. Plain removes all markup and is meant for text
// that gets indexed or summarized. Rich keeps a safe structural subset
// (paragraphs, emphasis, lists, links, code) and drops script-bearing and
// event-handler markup. Both are idempotent.
package sanitize

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// mode selects the policy a cached entry was produced with.
type mode uint8

const (
	modePlain mode = iota
	modeRich
	modeMarkdown
)

type cacheKey struct {
	mode mode
	text string
}

// Sanitizer sanitizes text with a plain and a rich policy.
// It is safe for concurrent use once constructed.
type Sanitizer struct {
	plain *bluemonday.Policy
	rich  *bluemonday.Policy
	cache *lru.Cache[cacheKey, string]
}

// Option configures a Sanitizer.
type Option func(*Sanitizer) error

// WithCache memoizes up to size sanitized strings.
func WithCache(size int) Option {
	return func(s *Sanitizer) error {
		c, err := lru.New[cacheKey, string](size)
		if err != nil {
			return err
		}
		s.cache = c
		return nil
	}
}

// New returns a Sanitizer with the default policies.
func New(opts ...Option) (*Sanitizer, error) {
	s := &Sanitizer{
		plain: bluemonday.StrictPolicy(),
		rich:  bluemonday.UGCPolicy(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Default returns an uncached Sanitizer.
func Default() *Sanitizer {
	s, _ := New()
	return s
}

// Plain strips all markup from text.
func (s *Sanitizer) Plain(text string) string {
	return s.apply(modePlain, text)
}

// Rich strips unsafe markup from text, keeping structural formatting.
func (s *Sanitizer) Rich(text string) string {
	return s.apply(modeRich, text)
}

// Markdown renders text as Markdown and sanitizes the resulting HTML with
// the rich policy.
func (s *Sanitizer) Markdown(text string) string {
	return s.apply(modeMarkdown, text)
}

// PlainPtr is Plain for optional text. A nil input yields nil.
func (s *Sanitizer) PlainPtr(text *string) *string {
	if text == nil {
		return nil
	}
	out := s.Plain(*text)
	return &out
}

// RichPtr is Rich for optional text. A nil input yields nil.
func (s *Sanitizer) RichPtr(text *string) *string {
	if text == nil {
		return nil
	}
	out := s.Rich(*text)
	return &out
}

func (s *Sanitizer) apply(m mode, text string) string {
	if text == "" {
		return ""
	}
	key := cacheKey{mode: m, text: text}
	if s.cache != nil {
		if out, ok := s.cache.Get(key); ok {
			return out
		}
	}
	var out string
	switch m {
	case modePlain:
		out = s.plain.Sanitize(text)
	case modeRich:
		out = s.rich.Sanitize(text)
	case modeMarkdown:
		html := blackfriday.Run([]byte(text), blackfriday.WithExtensions(blackfriday.CommonExtensions))
		out = string(s.rich.SanitizeBytes(html))
	}
	if s.cache != nil {
		s.cache.Add(key, out)
	}
	return out
}
