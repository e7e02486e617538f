// Package config loads logger construction options from a file.
//
// It is a thin shim over spf13/viper: the file format follows the
// extension (yaml, json, toml), unrecognized keys are silently
// ignored, and LOGTAP_-prefixed environment variables override the
// scalar keys. Routing targets are expressed as a list of
// {levels, sink, format} entries:
//
//	format: "%t %L %m%E"
//	logLocation: /var/log/app
//	targets:
//	  - levels: "!warn,error,fatal,trace"
//	    sink: log
//	  - levels: warn,error,fatal
//	    sink: error
//	  - levels: error,fatal
//	    sink: "errors-%h.log"
package config
