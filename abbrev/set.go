package abbrev

import (
	"fmt"
	"io"
	"sort"

	"github.com/derekparker/trie"

	"github.com/npillmayer/indicnorm/dat"
)

// GroupReader yields lines of synonyms one-by-one.
// It should return io.EOF when the stream is exhausted.
type GroupReader interface {
	Next() ([]string, error)
}

// Set is an immutable set of initials and acronyms. Membership tests run on
// a frozen double-array trie; a prefix trie keeps the synonym groups for
// lookup and completion.
type Set struct {
	words      *dat.DAT
	groups     *trie.Trie
	Identifier string // Identifies the set
}

// NewSet creates a set from a list of words, every word its own group.
func NewSet(name string, words ...string) (*Set, error) {
	groups := make([][]string, len(words))
	for i, w := range words {
		groups[i] = []string{w}
	}
	return newSet(name, groups)
}

// EmptySet creates a set without members.
func EmptySet(name string) *Set {
	s, _ := newSet(name, nil)
	return s
}

// LoadSet reads synonym groups from a streaming source.
func LoadSet(name string, reader GroupReader) (*Set, error) {
	var groups [][]string
	for {
		group, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("initials %s: %w", name, err)
		}
		groups = append(groups, group)
	}
	s, err := newSet(name, groups)
	if err != nil {
		return nil, err
	}
	stats := s.words.Stats()
	tracer().Infof("initials %s: %d words, %d trie states, fill ratio %.2f",
		name, s.Len(), stats.TotalSlots, stats.FillRatio())
	return s, nil
}

func newSet(name string, groups [][]string) (*Set, error) {
	b := dat.NewBuilder()
	index := trie.New()
	for _, group := range groups {
		for _, w := range group {
			if w == "" {
				continue
			}
			if err := b.Add(w); err != nil {
				return nil, fmt.Errorf("initials %s: %w", name, err)
			}
			index.Add(w, group)
		}
	}
	return &Set{
		words:      b.Freeze(),
		groups:     index,
		Identifier: fmt.Sprintf("initials: %s", name),
	}, nil
}

// Contains checks if word is a member.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	return s.words.Contains(word)
}

// Len returns the number of distinct members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.words.Len()
}

// Synonyms returns the group a member was listed with.
func (s *Set) Synonyms(word string) []string {
	if s == nil {
		return nil
	}
	node, ok := s.groups.Find(word)
	if !ok {
		return nil
	}
	group, _ := node.Meta().([]string)
	return append([]string(nil), group...)
}

// WithPrefix returns the members starting with prefix, sorted.
func (s *Set) WithPrefix(prefix string) []string {
	if s == nil || !s.groups.HasKeysWithPrefix(prefix) {
		return nil
	}
	words := s.groups.PrefixSearch(prefix)
	sort.Strings(words)
	return words
}
