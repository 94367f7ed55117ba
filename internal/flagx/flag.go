// Package flagx lets several components parse their own flags from one
// command line without tripping over each other's options.
package flagx

import (
	"strings"

	"github.com/spf13/pflag"
)

// FilterArgs keeps only the arguments that fs defines, together with their
// values. Both "--name value" / "-n value" and "--name=value" / "-n=value"
// are understood. A value is only consumed from the next argument when it
// does not start with '-' and the flag is not boolean. Positional arguments
// and unknown flags are dropped.
func FilterArgs(args []string, fs *pflag.FlagSet) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, _, hasValue := strings.Cut(arg, "=")

		f := lookup(fs, name)
		if f == nil {
			continue
		}
		out = append(out, arg)
		if hasValue || f.NoOptDefVal != "" {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

func lookup(fs *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		return fs.Lookup(arg[2:])
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return fs.ShorthandLookup(arg[1:])
	default:
		return nil
	}
}

// ConfigPath returns the value of -c / --config, or "" when absent. The last
// occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.StringVarP(&path, "config", "c", "", "path to config file")
	_ = fs.Parse(FilterArgs(args, fs))

	return path
}
