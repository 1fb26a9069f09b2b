package matchstats

// This file complements stats.go with day-boundary helpers.

// Today returns the UTC date key used to bucket daily records, exposed so
// callers building a leaderboard endpoint don't have to duplicate the
// format string.
func Today() string {
	return nowKey()
}
