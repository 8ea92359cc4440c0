/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package i18n provides the bundled translation dictionaries and the
// translation template resolver for flow component trees.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// FallbackLocale is the locale used when no bundle matches the requested one.
const FallbackLocale = "en-US"

// TranslateFunc resolves a dot-separated translation key into localized text.
// Unresolvable keys return the key string itself; that miss signal is relied
// on throughout the adapter fallback chains.
type TranslateFunc func(key string) string

// Translator resolves translation keys for a fixed locale.
type Translator interface {
	// T resolves a key, returning the key itself on a miss.
	T(key string) string
	// Tf resolves a key and substitutes {name} placeholders from args.
	Tf(key string, args map[string]string) string
	// Locale returns the locale the translator resolved to.
	Locale() string
}

type bundle struct {
	locale  string
	entries map[string]string
}

var (
	bundles     map[string]*bundle
	bundleTags  []language.Tag
	bundleNames []string
	loadOnce    sync.Once
	loadErr     error
)

func loadBundles() {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		loadErr = fmt.Errorf("failed to read bundled locales: %w", err)
		return
	}

	bundles = make(map[string]*bundle, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			loadErr = fmt.Errorf("failed to read locale bundle %s: %w", name, err)
			return
		}

		var dict map[string]string
		if err := json.Unmarshal(data, &dict); err != nil {
			loadErr = fmt.Errorf("failed to parse locale bundle %s: %w", name, err)
			return
		}
		bundles[name] = &bundle{locale: name, entries: dict}
		names = append(names, name)
	}

	// The fallback locale must come first so the matcher prefers it on no-match.
	sort.Slice(names, func(i, j int) bool {
		if names[i] == FallbackLocale {
			return true
		}
		if names[j] == FallbackLocale {
			return false
		}
		return names[i] < names[j]
	})

	bundleNames = names
	bundleTags = make([]language.Tag, len(names))
	for i, name := range names {
		bundleTags[i] = language.Make(name)
	}
}

// NewTranslator returns a translator for the closest matching bundled locale.
// Unknown or empty locales resolve to the fallback locale.
func NewTranslator(locale string) (Translator, error) {
	loadOnce.Do(loadBundles)
	if loadErr != nil {
		return nil, loadErr
	}

	if locale == "" {
		locale = FallbackLocale
	}

	matcher := language.NewMatcher(bundleTags)
	tag, err := language.Parse(locale)
	if err != nil {
		return bundles[FallbackLocale], nil
	}

	_, index, _ := matcher.Match(tag)
	return bundles[bundleNames[index]], nil
}

// T resolves a key, returning the key itself on a miss.
func (b *bundle) T(key string) string {
	if value, ok := b.entries[key]; ok && value != "" {
		return value
	}
	// Fall back to the default bundle before signalling a miss.
	if b.locale != FallbackLocale {
		if fallback, ok := bundles[FallbackLocale]; ok {
			if value, ok := fallback.entries[key]; ok && value != "" {
				return value
			}
		}
	}
	return key
}

// Tf resolves a key and substitutes {name} placeholders from args.
func (b *bundle) Tf(key string, args map[string]string) string {
	value := b.T(key)
	if value == key {
		return value
	}
	for name, replacement := range args {
		value = strings.ReplaceAll(value, "{"+name+"}", replacement)
	}
	return value
}

// Locale returns the locale the translator resolved to.
func (b *bundle) Locale() string {
	return b.locale
}
