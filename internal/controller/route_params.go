package controller

import (
	"errors"
	"math"
	"strconv"
)

var errRouteNotMatched = errors.New("route not matched")

const (
	minBlogYear = 2015
	maxBlogYear = math.MaxInt32
)

// parseRouteInt parses a constrained path segment. Anything that is not an
// integer within [minValue, maxValue] means the route does not match.
func parseRouteInt(raw string, minValue, maxValue int64) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errRouteNotMatched
	}

	if v < minValue || v > maxValue {
		return 0, errRouteNotMatched
	}

	return v, nil
}

func parseBookID(params map[string]string) (int64, error) {
	return parseRouteInt(params["id"], math.MinInt64, math.MaxInt64)
}

type blogDate struct {
	year, month, day int64
}

func parseBlogDate(params map[string]string) (blogDate, error) {
	var (
		d   blogDate
		err error
	)

	if d.year, err = parseRouteInt(params["year"], minBlogYear, maxBlogYear); err != nil {
		return blogDate{}, err
	}

	if d.month, err = parseRouteInt(params["month"], 1, 12); err != nil {
		return blogDate{}, err
	}

	if d.day, err = parseRouteInt(params["day"], 1, 31); err != nil {
		return blogDate{}, err
	}

	return d, nil
}
