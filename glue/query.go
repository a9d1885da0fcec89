package glue

import (
	"fmt"
	"sort"
)

// Rewrite translates q over original RV names into the statement list the
// external inference engine expects: one "obs name=value;" per evidence
// pair using names rewritten via rvToIndividual, followed by one
// "query name;". Evidence statements are emitted in sorted original-name
// order for reproducibility. Fails with ErrInvalidQuery if q.QueryVar or
// any evidence variable is absent from rvToIndividual.
func Rewrite(q Query, rvToIndividual map[string]string) ([]string, error) {
	queryName, ok := rvToIndividual[q.QueryVar]
	if !ok {
		return nil, fmt.Errorf("%w: query var %s", ErrInvalidQuery, q.QueryVar)
	}

	names := make([]string, 0, len(q.Evidence))
	for name := range q.Evidence {
		names = append(names, name)
	}
	sort.Strings(names)

	stmts := make([]string, 0, len(names)+1)
	for _, name := range names {
		rewritten, ok := rvToIndividual[name]
		if !ok {
			return nil, fmt.Errorf("%w: evidence var %s", ErrInvalidQuery, name)
		}
		stmts = append(stmts, fmt.Sprintf("obs %s=%s;", rewritten, q.Evidence[name]))
	}
	stmts = append(stmts, fmt.Sprintf("query %s;", queryName))

	return stmts, nil
}
