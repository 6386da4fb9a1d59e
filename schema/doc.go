// Package schema defines structured error records: a closed set of error
// categories, the ErrorSchema record with one factory per category, a
// classifier that maps arbitrary Go errors onto categories, and an ordered
// Group for batch reporting.
//
// Every ErrorSchema is itself an error, so it can be returned, wrapped and
// recovered with errors.As:
//
//	if err := load(path); err != nil {
//		return schema.File.NotFound(path, schema.WithCause(err))
//	}
//
//	s := schema.FromError(err)
//	body, _ := s.JSON()
//
// The web sub-package extends the record with request location, input echo
// and an end-user message.
package schema
