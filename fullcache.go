package uniqgen

// fullCache implements FullCache over some history set. The set decides the
// concurrency story; the retry loop is the same for both variants.
type fullCache[T any] struct {
	verifier[T]
	hist history[T]
}

func (c *fullCache[T]) sealed() {}

func (c *fullCache[T]) Produce() (T, bool)  { return c.Generate() }
func (c *fullCache[T]) Generate() (T, bool) { return c.GenerateWith(c.MaxRetry()) }

// GenerateWith accepts a candidate by inserting it into the history; a value
// already present costs one attempt. On exhaustion the history is unchanged.
func (c *fullCache[T]) GenerateWith(maxRetry int) (T, bool) {
	return c.run(maxRetry, c.tryAdd)
}

func (c *fullCache[T]) tryAdd(v T) bool {
	added, err := c.hist.add(v)
	if err != nil {
		c.keyError(err)
		return false
	}
	if !added {
		c.hooks.Collision()
	}
	return added
}

// Exists reports history membership. Values that cannot be keyed are never
// members; Exists reports them as absent without logging or hooks.
func (c *fullCache[T]) Exists(v T) bool {
	ok, err := c.hist.has(v)
	return err == nil && ok
}

func (c *fullCache[T]) Purge() {
	removed := c.hist.clear()
	c.log.Debug("history purged", Fields{"removed": removed})
	c.hooks.Purged(removed)
}

// Keys returns a snapshot; changing it never affects the generator.
func (c *fullCache[T]) Keys() []T {
	ks, err := c.hist.keys()
	if err != nil {
		c.log.Error("history snapshot incomplete", Fields{"err": err, "returned": len(ks)})
	}
	return ks
}

func (c *fullCache[T]) Len() int { return c.hist.size() }

func (c *fullCache[T]) keyError(err error) {
	c.log.Warn("history key rejected", Fields{"err": err})
	c.hooks.KeyError(err)
}
