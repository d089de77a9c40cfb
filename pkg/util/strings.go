package util

import "strings"

// NormaliseName trims surrounding whitespace and case-folds a stop name
func NormaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SplitList splits a separated list, trimming each item and dropping empty ones
func SplitList(s string, separator string) []string {
	var list []string

	for _, item := range strings.Split(s, separator) {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}

	return list
}

// UniqueNames drops empty names and case-insensitive repeats, including anything matching ignore
func UniqueNames(names []string, ignore ...string) []string {
	present := make(map[string]bool)
	var list []string

	for _, ignoreName := range ignore {
		present[NormaliseName(ignoreName)] = true
	}

	for _, name := range names {
		key := NormaliseName(name)
		if key == "" || present[key] {
			continue
		}

		present[key] = true
		list = append(list, name)
	}

	return list
}
