// Package flagx lets the config loaders share os.Args. The JSON file
// selector (-c/-config) and the main option flags (-a, -s, -t, -l) are
// parsed by separate FlagSets; filtering the argument list first keeps each
// set from choking on flags it does not define.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags, with their values, from args.
//
// Both spellings are recognized:
//
//	-t 10              flag and value as separate arguments
//	-config=conf.json  flag and value combined with '='
//
// Unknown flags, their values, and positional arguments are dropped. The
// result is safe to hand to a flag.FlagSet that defines exactly the
// allowed flags.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// empty, not nil, so callers can append and range without nil checks
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" stays a single argument
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// the next token is this flag's value unless it is a flag itself
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path named by -c or -config.
// It runs before the config package parses the main option flags, so only
// these two flags are considered; everything else on the command line is
// left for the later FlagSet.
//
// Returns "" when no config file flag is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
