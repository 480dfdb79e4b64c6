package seed

import "fmt"

// StringPool tracks strings that must stay unique across a run, such as
// emails and organization names.
type StringPool struct {
	seen map[string]struct{}
}

// NewStringPool seeds the pool with values already taken, typically rows
// read back from the database.
func NewStringPool(existing ...string) *StringPool {
	p := &StringPool{seen: make(map[string]struct{}, len(existing))}
	for _, s := range existing {
		p.seen[s] = struct{}{}
	}
	return p
}

// Has reports whether s is already taken.
func (p *StringPool) Has(s string) bool {
	_, ok := p.seen[s]
	return ok
}

// Add marks s as taken.
func (p *StringPool) Add(s string) {
	p.seen[s] = struct{}{}
}

// Len returns the number of taken values.
func (p *StringPool) Len() int { return len(p.seen) }

// Unique draws candidates from gen up to maxAttempts times and claims the
// first unseen one. When every attempt collides it claims fallback(),
// suffixing it with a counter if even that is taken. It always returns a
// value not previously in the pool.
func (p *StringPool) Unique(maxAttempts int, gen func() string, fallback func() string) string {
	for i := 0; i < maxAttempts; i++ {
		if c := gen(); !p.Has(c) {
			p.Add(c)
			return c
		}
	}
	base := fallback()
	c := base
	for n := 2; p.Has(c); n++ {
		c = fmt.Sprintf("%s-%d", base, n)
	}
	p.Add(c)
	return c
}
