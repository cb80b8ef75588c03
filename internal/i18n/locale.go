package i18n

import "sync"

// Locale is the process-wide language context, threaded explicitly through
// the components that need it instead of living in package globals. It
// bundles the current language, its text direction, and the translation
// function, and notifies subscribers on change.
type Locale struct {
	mu     sync.RWMutex
	lang   Lang
	bundle *Bundle
	subs   map[int]func(Lang)
	nextID int
}

// NewLocale returns a locale fixed to the given starting language.
func NewLocale(lang Lang) *Locale {
	l := ParseLang(string(lang), LangEnglish)
	return &Locale{
		lang:   l,
		bundle: NewBundle(l),
		subs:   make(map[int]func(Lang)),
	}
}

// Lang returns the current language.
func (c *Locale) Lang() Lang {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Direction returns the current text direction.
func (c *Locale) Direction() Direction {
	return c.Lang().Direction()
}

// T resolves a message key in the current language.
func (c *Locale) T(key string) string {
	c.mu.RLock()
	b := c.bundle
	c.mu.RUnlock()
	return b.T(key)
}

// SetLang switches the current language and notifies subscribers.
// Setting the already-current language is a no-op.
func (c *Locale) SetLang(lang Lang) {
	l := ParseLang(string(lang), LangEnglish)

	c.mu.Lock()
	if l == c.lang {
		c.mu.Unlock()
		return
	}
	c.lang = l
	c.bundle = NewBundle(l)
	subs := make([]func(Lang), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(l)
	}
}

// Subscribe registers fn to run on every language change and returns an
// unsubscribe function.
func (c *Locale) Subscribe(fn func(Lang)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
