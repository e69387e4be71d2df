// Package redact masks secrets in pasted source before any of it is written
// to a log.
//
// Detection uses regex heuristics for common secret shapes: credential
// assignments, bearer tokens, JWTs, private key headers, AWS access key IDs,
// and provider tokens. Excerpt combines masking with truncation so log lines
// stay single-line and bounded.
package redact
