package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/crumbline/pkg/settings"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print crumbline version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return err
	},
}

// buildVersion prefers the ldflags version, then the module version, then
// the short VCS revision.
func buildVersion(info *rdebug.BuildInfo, ok bool) (version, goVersion string) {
	version = "dev"
	goVersion = runtime.Version()
	if v := settings.VersionInformation.BuildVersion; v != "" && v != settings.DefaultBuildVersion {
		version = v
	}
	if !ok || info == nil {
		return version, goVersion
	}
	if info.GoVersion != "" {
		goVersion = info.GoVersion
	}
	if version != "dev" {
		return version, goVersion
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, goVersion
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7], goVersion
		}
	}
	return version, goVersion
}

// cliVersionString builds the version line for `crumbline version` and
// cobra's --version flag.
func cliVersionString() string {
	version, goVersion := buildVersion(rdebug.ReadBuildInfo())
	return fmt.Sprintf("%s %s (go %s)", settings.CliBinaryName, version, goVersion)
}
