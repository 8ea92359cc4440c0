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

package i18n

import (
	"regexp"
	"strings"

	"github.com/asgardeo/thunder-go/flow/model"
)

// translationTemplatePattern matches the interior of a {{ ... }} template:
// t(<key>) with the key optionally quoted.
var translationTemplatePattern = regexp.MustCompile(`^t\(\s*['"]?([^'")\s]+)['"]?\s*\)$`)

// IsTranslationTemplate reports whether the string is a translation template
// of the form "{{ t(namespace:key.path) }}".
func IsTranslationTemplate(s string) bool {
	_, ok := templateKey(s)
	return ok
}

// ResolveTranslation resolves a translation template into localized text.
// Strings that are not templates are returned verbatim, with no lookup
// performed.
func ResolveTranslation(s string, translate TranslateFunc) string {
	key, ok := templateKey(s)
	if !ok {
		return s
	}
	return translate(key)
}

// ResolveComponentTranslations returns a copy of the component tree with all
// translation templates on the label, placeholder, text, title and subtitle
// properties resolved. Child components are resolved recursively.
func ResolveComponentTranslations(components []model.Component, translate TranslateFunc) []model.Component {
	if len(components) == 0 {
		return components
	}

	resolved := make([]model.Component, len(components))
	for i, component := range components {
		component.Label = ResolveTranslation(component.Label, translate)
		component.Placeholder = ResolveTranslation(component.Placeholder, translate)
		component.Text = ResolveTranslation(component.Text, translate)
		component.Title = ResolveTranslation(component.Title, translate)
		component.Subtitle = ResolveTranslation(component.Subtitle, translate)
		if len(component.Components) > 0 {
			component.Components = ResolveComponentTranslations(component.Components, translate)
		}
		resolved[i] = component
	}
	return resolved
}

// templateKey extracts the normalized lookup key from a translation template.
// Colons in the key are converted to dots because the translation bundles are
// dot-keyed ("signin:heading.label" resolves as "signin.heading.label").
func templateKey(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{{") || !strings.HasSuffix(trimmed, "}}") {
		return "", false
	}

	interior := strings.TrimSpace(trimmed[2 : len(trimmed)-2])
	match := translationTemplatePattern.FindStringSubmatch(interior)
	if match == nil {
		return "", false
	}

	return strings.ReplaceAll(match[1], ":", "."), true
}
