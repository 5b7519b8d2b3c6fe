package book

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseFlag coerces a query flag to a boolean filter.
// An empty value yields nil; numeric values are true when nonzero and
// anything else is false.
func ParseFlag(raw string) *bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v := false
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		v = n != 0
	}
	return &v
}

// FilterFromQuery builds a Filter from the name, reading and finished query parameters.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Name:     q.Get("name"),
		Reading:  ParseFlag(q.Get("reading")),
		Finished: ParseFlag(q.Get("finished")),
	}
}
