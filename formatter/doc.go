// Package formatter turns a format template into the literal string a
// sink receives.
//
// Templates use %-tokens: %t local timestamp, %T ISO-8601 timestamp,
// %j JSON (UTC) timestamp, %p pid, %h hostname, %L level label (empty
// for the file level), %E platform end-of-line, %S call stack, %m the
// message body. Unrecognized tokens pass through unchanged.
//
// The template is scanned in a single pass and token values are
// computed lazily, so the expensive tokens (%S in particular) cost
// nothing unless they occur. Rendering never returns an error: a
// message argument the JSON encoder rejects degrades to the
// Type(key,key) fallback form, untyped nil renders as [null], and a
// typed nil renders as [undefined].
package formatter
