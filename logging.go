// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

// Operation logging, grounded on transformer.go's own logging idiom
// (standard-library log.Printf with a "garble: " message prefix — no
// structured-logging library appears anywhere in the teacher or the rest
// of the retrieval pack) plus the per-call correlation ID pattern from
// SnellerInc-sneller/elasticproxy/proxy_http/logging.go's
// QueryID: uuid.New().String().
//
// Logging is opt-in: a Session constructed without WithLogger never
// touches a logger. When enabled, only sizes, phase names and the
// operation ID are logged — never key, nonce, header, message, trailer or
// tag bytes.

// logf writes one correlated log line if a logger is attached. opID is the
// per-call operation identifier generated in aeadEncrypt/aeadDecrypt.
func (s *session[T]) logf(opID, format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("norx[%s]: "+format, append([]any{opID}, args...)...)
}
