package book

import (
	"context"
	"fmt"
)

// SeedData returns example books to pre-populate the store.
func SeedData() []Input {
	return []Input{
		{
			Name:      "Dunia Sophie",
			Year:      1991,
			Author:    "Jostein Gaarder",
			Summary:   "A novel about the history of philosophy.",
			Publisher: "Mizan",
			PageCount: 544,
			ReadPage:  120,
			Reading:   true,
		},
		{
			Name:      "The Go Programming Language",
			Year:      2015,
			Author:    "Alan A. A. Donovan",
			Summary:   "The authoritative resource on Go.",
			Publisher: "Addison-Wesley",
			PageCount: 380,
			ReadPage:  0,
			Reading:   false,
		},
		{
			Name:      "Concurrency in Go",
			Year:      2017,
			Author:    "Katherine Cox-Buday",
			Summary:   "Tools and techniques for developers.",
			Publisher: "O'Reilly Media",
			PageCount: 238,
			ReadPage:  200,
			Reading:   true,
		},
	}
}

// Seed creates every input through the service, returning the new IDs.
func Seed(ctx context.Context, s *Service, inputs []Input) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := s.Create(ctx, in)
		if err != nil {
			return ids, fmt.Errorf("seed %q: %w", in.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
