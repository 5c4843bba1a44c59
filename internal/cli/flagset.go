package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and a silent
// default usage; ParseArgs installs the real one.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
