package rep

// Version identifies this package's release. It is the only static,
// process-wide datum the package keeps; everything else lives on a Matcher
// or is borrowed from the caller for the duration of one call.
const Version = "1.0.0"
