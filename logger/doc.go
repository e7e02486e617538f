// Package logger is the public API of logtap. Most users only need to
// import this package.
//
// A log call enters the dispatcher with a severity level and a
// variadic argument list, passes the gating flags (trace and debug
// are suppressible, other levels are not), and is then matched
// against the compiled routing table. Every matching rule fires in
// configuration order: its template is rendered and the result goes
// to a console stream or an appended file. With retention enabled
// (Config.KeepLast), the first match of each call is held in a
// bounded in-memory buffer instead, to be collected later with
// GetEntries and replayed with DisplayEntries.
//
//	log := logger.New(logger.Config{
//	    Targets: []router.Target{
//	        {Levels: "*", Sink: "log"},
//	        {Levels: "error,fatal", Sink: "errors-%h.log"},
//	    },
//	    LogLocation: "/var/log/app",
//	})
//	log.Info("listening on", 8080)
//
// Logging calls never fail and never panic. Sink write errors are
// delivered to the optional Config.OnWriteError hook; without one
// they are dropped. All calls return the Logger, so setters and log
// calls chain:
//
//	log.SetDebugLevel(3).Debuglevel(2, "cache warmed")
//
// The package also maintains a default instance with the default
// console routing; the package-level functions Info, Error, File,
// etc. delegate to it.
package logger
