package config

import (
	"flag"
	"os"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/flagx"
)

var ownedFlags = []string{"-a", "-timeout", "-wait", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
// Only the flags this package owns are parsed; the rest of os.Args is the
// command line (see Command).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-timeout", "-wait"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "deadline for ordinary requests")
	fs.DurationVar(&cfg.AuditTimeout, "wait", cfg.AuditTimeout, "deadline for running an audit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// Command returns args with the configuration flags (and their values)
// removed, leaving the subcommand and its arguments. Flag values are
// recognised the same way flagx.FilterArgs does.
func Command(args []string) []string {
	owned := make(map[string]bool, len(ownedFlags))
	for _, f := range ownedFlags {
		owned[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, _, hasValue := strings.Cut(args[i], "=")
		if !owned[name] {
			out = append(out, args[i])
			continue
		}
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}
	return out
}
