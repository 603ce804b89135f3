package flags

import "github.com/spf13/pflag"

// changed reports whether the flag exists and was set on the command line.
// Presence is what matters for layering: an explicit `--reverse=false` still
// outranks a document that says otherwise.
func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// stringArg returns the value of a string-valued flag when it was explicitly
// set. Values are validated during argument parsing, so no value read here
// can be invalid.
func stringArg(fs *pflag.FlagSet, name string) (string, bool) {
	if !changed(fs, name) {
		return "", false
	}

	return fs.Lookup(name).Value.String(), true
}

// boolArg returns the value of a bool flag when it was explicitly set.
func boolArg(fs *pflag.FlagSet, name string) (bool, bool) {
	if !changed(fs, name) {
		return false, false
	}

	v, err := fs.GetBool(name)
	if err != nil {
		return false, false
	}

	return v, true
}

// boolFromArgs builds the argument reader for a plain bool option.
func boolFromArgs(name string) func(*pflag.FlagSet) (bool, bool) {
	return func(fs *pflag.FlagSet) (bool, bool) {
		return boolArg(fs, name)
	}
}
