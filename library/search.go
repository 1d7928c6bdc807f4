// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package library

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Shelf search. Substring hits rank first (earlier hit position wins),
// then typo-tolerant matches by levenshtein distance against title and
// author. Queries a shelf filter and the `open` command share this.

// Rank returns the books matching query, best first. An empty query
// returns the shelf unchanged.
func Rank(books []Book, query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return books
	}

	type scored struct {
		book Book
		// class 0 = substring match, 1 = distance match
		class int
		score int
	}

	var hits []scored
	for _, b := range books {
		title := strings.ToLower(b.Title)
		author := strings.ToLower(b.Author)
		slug := strings.ToLower(b.Slug)

		if i := earliestIndex(q, title, author, slug); i >= 0 {
			hits = append(hits, scored{book: b, class: 0, score: i})
			continue
		}

		d := levenshtein.ComputeDistance(q, title)
		if author != "" {
			if da := levenshtein.ComputeDistance(q, author); da < d {
				d = da
			}
		}
		if d <= distanceBudget(q) {
			hits = append(hits, scored{book: b, class: 1, score: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].class != hits[j].class {
			return hits[i].class < hits[j].class
		}
		if hits[i].score != hits[j].score {
			return hits[i].score < hits[j].score
		}
		return strings.ToLower(hits[i].book.Title) < strings.ToLower(hits[j].book.Title)
	})

	out := make([]Book, len(hits))
	for i, h := range hits {
		out[i] = h.book
	}
	return out
}

// MatchBook resolves a query to the single best book, used by the `open`
// command. Empty queries match nothing.
func MatchBook(books []Book, query string) (Book, bool) {
	if strings.TrimSpace(query) == "" {
		return Book{}, false
	}
	ranked := Rank(books, query)
	if len(ranked) == 0 {
		return Book{}, false
	}
	return ranked[0], true
}

func earliestIndex(q string, fields ...string) int {
	best := -1
	for _, f := range fields {
		if i := strings.Index(f, q); i >= 0 && (best == -1 || i < best) {
			best = i
		}
	}
	return best
}

// distanceBudget scales the tolerated edit distance with query length, so
// short queries do not match everything.
func distanceBudget(q string) int {
	budget := len(q) / 3
	if budget < 1 {
		budget = 1
	}
	if budget > 3 {
		budget = 3
	}
	return budget
}
