package main

import (
	"fmt"

	"sanad/internal/assist"
	"sanad/internal/i18n"
	"sanad/internal/llm"
	"sanad/internal/logging"
	"sanad/internal/storage"
	"sanad/internal/submissions"
)

// langStorageKey persists the applicant's language choice across runs.
const langStorageKey = "lang"

// app bundles the wired services behind one Close.
type app struct {
	store  *storage.LocalStore
	subs   *submissions.Service
	assist *assist.Service
	locale *i18n.Locale
}

// openApp opens the local store and wires the services on top of it.
func openApp() (*app, error) {
	store, err := storage.NewLocalStore(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	client, _ := llm.NewClientFromConfig(cfg.AI)

	a := &app{
		store:  store,
		subs:   submissions.NewService(store, submissions.LoggingInterceptor()),
		assist: assist.NewService(client, cfg.AI),
		locale: i18n.NewLocale(loadLang(store)),
	}
	return a, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logging.Store("close failed: %v", err)
	}
}

// loadLang resolves the effective language: persisted choice first, then
// configuration, then English.
func loadLang(kv storage.KV) i18n.Lang {
	if v, ok, err := kv.Get(langStorageKey); err == nil && ok {
		if i18n.IsSupported(v) {
			return i18n.Lang(v)
		}
	}
	return i18n.ParseLang(cfg.Language, i18n.LangEnglish)
}

// saveLang persists the language choice. Best effort.
func saveLang(kv storage.KV, lang i18n.Lang) {
	if err := kv.Set(langStorageKey, string(lang)); err != nil {
		logging.Store("language save failed: %v", err)
	}
}
