// Package parse holds the narrowly-scoped scraping utilities for external
// tool output: best-effort JSON recovery plus the ping RTT and open-port
// pattern matches. Every function degrades gracefully instead of failing.
package parse

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	rttPattern  = regexp.MustCompile(`time=([0-9.]+)\s*ms`)
	portPattern = regexp.MustCompile(`\b([1-9][0-9]{0,4})\b`)
)

// RecoverJSON converts semi-structured tool output into a structured
// value. It tries a full-text JSON parse first, then the outermost
// {...} span, and finally wraps the raw text so the caller never sees a
// parse failure.
func RecoverJSON(text string) map[string]interface{} {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return payload
	}

	s := strings.TrimSpace(text)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(s[start:end+1]), &payload); err == nil {
			return payload
		}
	}

	return map[string]interface{}{"raw": text}
}

// PingRTT scrapes the round-trip time from textual ping output, matching
// the "time=<ms> ms" substring. Returns nil when the pattern is absent.
func PingRTT(text string) *float64 {
	m := rttPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// OpenPorts extracts the sorted unique port numbers from greppable
// scanner output, keeping only values in the valid 1-65535 range.
func OpenPorts(text string) []int {
	seen := make(map[int]struct{})
	for _, m := range portPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > 65535 {
			continue
		}
		seen[n] = struct{}{}
	}
	ports := make([]int, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}
