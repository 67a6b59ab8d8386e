package model

// Zone classifies a log by the network segment its device belongs to,
// derived from the directory the log was found in.
type Zone string

const (
	ZoneInternal Zone = "internal"
	ZoneExternal Zone = "external"
)

// RawLog is the intermediate type produced by the walker and consumed by the
// engine: one inspection log file, decoded to UTF-8 text.
type RawLog struct {
	Path string
	Zone Zone
	Text string
	// ReadErr is set when the file could not be read or decoded. Such logs
	// still flow through the engine and surface as error rows in the report.
	ReadErr error
}
