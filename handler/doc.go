// Package handler provides the two sink types log output is
// dispatched to.
//
// Console multiplexes the six named streams (log, info, warn, error,
// debug, trace) onto an out and an err writer. Both writers are
// injectable, which is how the test suites capture output. The
// console owns its line terminator: the dispatcher strips one
// rendered EOL before calling Print and Print appends exactly one.
// When coloring is enabled it is applied only on writers that are
// real terminals, so redirected output never contains escape codes.
//
// FileWriter performs synchronous create-if-absent appends. Sink
// descriptors that name no console stream are file-path templates;
// ResolvePath expands their %p/%h/%L/%l tokens and applies the base
// log location prefix. Write errors are returned to the dispatcher,
// which forwards them to the configured OnWriteError hook.
package handler
