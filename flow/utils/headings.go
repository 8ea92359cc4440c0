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

// Package utils provides utility functions for flow component trees.
package utils

import (
	"github.com/asgardeo/thunder-go/flow/model"
)

// maxHeadings bounds how many heading nodes are pulled out of a tree.
const maxHeadings = 2

// Headings holds the extracted title and subtitle together with the component
// tree stripped of the extracted heading nodes.
type Headings struct {
	Title      string
	Subtitle   string
	Components []model.Component
}

// ExtractHeadings pulls up to two heading-variant text nodes out of the tree
// for separate chrome rendering. The first heading found in depth-first order
// becomes the title, the second the subtitle. Displayed values follow the
// precedence override > extracted heading > caller default > empty string.
// Containers whose children are all removed by the filtering are dropped.
func ExtractHeadings(components []model.Component,
	titleOverride, subtitleOverride, defaultTitle, defaultSubtitle string) Headings {
	found := make([]string, 0, maxHeadings)
	collectHeadings(components, &found)

	var extractedTitle, extractedSubtitle string
	if len(found) > 0 {
		extractedTitle = found[0]
	}
	if len(found) > 1 {
		extractedSubtitle = found[1]
	}

	remaining := maxHeadings
	filtered := removeHeadings(components, &remaining)

	return Headings{
		Title:      firstNonEmpty(titleOverride, extractedTitle, defaultTitle),
		Subtitle:   firstNonEmpty(subtitleOverride, extractedSubtitle, defaultSubtitle),
		Components: filtered,
	}
}

// collectHeadings gathers heading texts depth-first, stopping early once the
// bound is reached.
func collectHeadings(components []model.Component, found *[]string) {
	for i := range components {
		if len(*found) == maxHeadings {
			return
		}
		c := &components[i]
		if c.IsHeading() {
			*found = append(*found, c.Text)
			continue
		}
		if len(c.Components) > 0 {
			collectHeadings(c.Components, found)
		}
	}
}

// removeHeadings filters out at most *remaining heading nodes, recursively.
func removeHeadings(components []model.Component, remaining *int) []model.Component {
	filtered := make([]model.Component, 0, len(components))
	for _, c := range components {
		if *remaining > 0 && c.IsHeading() {
			*remaining--
			continue
		}
		if len(c.Components) > 0 {
			children := removeHeadings(c.Components, remaining)
			if len(children) == 0 {
				// Container emptied by the filtering; drop it.
				continue
			}
			c.Components = children
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
