package requirements

// Cache memoizes requirements per (title, topic) pair for a session's
// lifetime. A subtopic must never receive different requirements
// mid-session; the cache makes that an invariant rather than a hope.
type Cache struct {
	entries map[cacheKey]SubtopicRequirements
}

type cacheKey struct {
	title string
	topic string
}

// NewCache creates an empty requirements cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]SubtopicRequirements)}
}

// Get returns the cached requirements for the pair, generating and caching
// them on first use.
func (c *Cache) Get(subtopicTitle, topic string) SubtopicRequirements {
	key := cacheKey{title: subtopicTitle, topic: topic}
	if req, ok := c.entries[key]; ok {
		return req
	}
	req := Generate(subtopicTitle, topic)
	c.entries[key] = req
	return req
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
