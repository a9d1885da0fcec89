package glue

import "errors"

// Sentinel errors for the glue layer.
var (
	// ErrInvalidQuery indicates a Query references a variable absent from
	// rvToIndividual.
	ErrInvalidQuery = errors.New("glue: invalid query")

	// ErrTimeout is reserved for the external inference collaborator; the
	// core never raises it itself.
	ErrTimeout = errors.New("glue: inference engine timed out")
)

// Query is one query over original RV names: the variable to query, and an
// evidence dictionary of observed values.
type Query struct {
	QueryVar string
	Evidence map[string]string
}
