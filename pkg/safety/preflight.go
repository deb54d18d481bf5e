// Package safety validates LLM-generated SQL before it reaches a
// warehouse adapter. The check is deliberately conservative: only a
// single SELECT (or WITH ... SELECT) statement passes, everything else
// is rejected before execution.
package safety

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxRowLimit is the hard cap applied to every outgoing query. Queries
// without a LIMIT clause get one appended; larger limits are clamped.
const MaxRowLimit = 10000

// RejectionReason is the closed set of preflight rejection reasons.
type RejectionReason string

const (
	ReasonEmptyQuery         RejectionReason = "empty_query"
	ReasonNotSelect          RejectionReason = "not_a_select"
	ReasonMultipleStatements RejectionReason = "multiple_statements"
	ReasonForbiddenToken     RejectionReason = "forbidden_token"
)

// QueryRejected is returned when a query fails preflight. The worker
// records it as a query failure so the reflexion loop can correct it.
type QueryRejected struct {
	Reason RejectionReason
	Detail string
}

func (e *QueryRejected) Error() string {
	return fmt.Sprintf("query rejected (%s): %s", e.Reason, e.Detail)
}

// forbiddenTokens are statement keywords that must not appear anywhere
// in the query, even inside subqueries or CTE bodies.
var forbiddenTokens = []string{
	"INSERT", "UPDATE", "DELETE", "MERGE", "UPSERT",
	"DROP", "CREATE", "ALTER", "TRUNCATE", "RENAME",
	"GRANT", "REVOKE",
	"COPY", "CALL", "EXECUTE", "EXEC",
	"VACUUM", "ANALYZE", "REINDEX", "CLUSTER",
	"SET", "RESET", "LOCK",
}

var (
	tokenPattern   = buildTokenPattern()
	commentPattern = regexp.MustCompile(`(?s)--[^\n]*|/\*.*?\*/`)
	// Trailing LIMIT with an optional OFFSET, at the end of the query.
	limitPattern = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)(\s+OFFSET\s+\d+)?\s*$`)
)

func buildTokenPattern() *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + strings.Join(forbiddenTokens, "|") + `)\b`)
}

// Preflight validates a candidate query and returns the rewritten form
// that will actually run. On rejection the returned query is empty and
// the error is a *QueryRejected.
func Preflight(query string) (string, error) {
	stripped := strings.TrimSpace(commentPattern.ReplaceAllString(query, " "))
	stripped = strings.TrimSuffix(stripped, ";")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return "", &QueryRejected{Reason: ReasonEmptyQuery, Detail: "query is empty"}
	}

	if strings.Contains(stripped, ";") {
		return "", &QueryRejected{
			Reason: ReasonMultipleStatements,
			Detail: "only a single statement is allowed",
		}
	}

	upper := strings.ToUpper(stripped)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return "", &QueryRejected{
			Reason: ReasonNotSelect,
			Detail: "only SELECT statements are allowed",
		}
	}

	if m := tokenPattern.FindString(stripped); m != "" {
		return "", &QueryRejected{
			Reason: ReasonForbiddenToken,
			Detail: fmt.Sprintf("forbidden keyword %q", strings.ToUpper(m)),
		}
	}

	return enforceLimit(stripped), nil
}

// enforceLimit appends a LIMIT clause when missing and clamps an
// existing one to MaxRowLimit.
func enforceLimit(query string) string {
	m := limitPattern.FindStringSubmatch(query)
	if m == nil {
		return query + fmt.Sprintf(" LIMIT %d", MaxRowLimit)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > MaxRowLimit {
		loc := limitPattern.FindStringSubmatchIndex(query)
		// Replace just the numeric limit, keeping any OFFSET.
		return query[:loc[2]] + strconv.Itoa(MaxRowLimit) + query[loc[3]:]
	}
	return query
}
