package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		v, rev := buildVersion()
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, v)
			return
		}
		fmt.Fprintln(out, "adaptutor", v)
		if rev != "" {
			fmt.Fprintln(out, "commit   ", rev)
		}
		fmt.Fprintln(out, "go       ", runtime.Version())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// buildVersion prefers the ldflags version, then the module version
// recorded by go install. rev is the VCS revision when known.
func buildVersion() (v, rev string) {
	v = version
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, ""
	}
	if v == "(devel)" && info.Main.Version != "" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			rev = s.Value[:12]
		}
	}
	return v, rev
}
