package core

import (
	"os"
	"runtime"
	"strconv"
)

// Identity caches the process-wide values referenced by format and
// path tokens. It is resolved once at logger construction; none of
// these values change over the life of a process.
type Identity struct {
	PID      int
	Hostname string
	EOL      string
}

// CurrentIdentity resolves the identity of the running process. A
// hostname lookup failure degrades to "localhost" rather than failing
// construction.
func CurrentIdentity() Identity {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}

	return Identity{
		PID:      os.Getpid(),
		Hostname: host,
		EOL:      eol,
	}
}

// PIDString returns the pid formatted for token substitution
func (id Identity) PIDString() string {
	return strconv.Itoa(id.PID)
}
