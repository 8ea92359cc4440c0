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

// Package utils provides utility functions shared across the SDK.
package utils

import (
	"strings"
	"unicode"
)

// SplitCamelCase splits a camelCase identifier into space-separated, capitalized words.
// For example "firstName" becomes "First Name".
func SplitCamelCase(s string) string {
	if s == "" {
		return ""
	}

	var words []string
	var current []rune
	for _, r := range s {
		if len(current) > 0 && unicode.IsUpper(r) && !unicode.IsUpper(current[len(current)-1]) {
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	words = append(words, string(current))

	for i, word := range words {
		words[i] = CapitalizeFirstLetter(word)
	}
	return strings.Join(words, " ")
}

// CapitalizeFirstLetter capitalizes the first letter of the given string.
func CapitalizeFirstLetter(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FormatIdentifier converts an underscore-separated identifier into a display
// string with the first letter capitalized. For example "resend_otp" becomes
// "Resend otp".
func FormatIdentifier(s string) string {
	return CapitalizeFirstLetter(strings.ReplaceAll(s, "_", " "))
}

// MergeStringMaps merges two maps of strings and returns the result.
func MergeStringMaps(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string)
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// FilterEmptyValues returns a copy of the given map with empty-string values removed.
func FilterEmptyValues(input map[string]string) map[string]string {
	output := make(map[string]string, len(input))
	for k, v := range input {
		if v != "" {
			output[k] = v
		}
	}
	return output
}
