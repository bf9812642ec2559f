// qs is a command line client for the QuickSight control plane.
//
// # Installation
//
//	go install github.com/acksell/qsight/quicksight/cmd/qs@latest
//
// # Commands
//
//	qs serve        Start a local QuickSight server backed by BadgerDB
//	qs groups       List, create and delete groups
//	qs users        List and register users
//	qs ingestions   Start, cancel and inspect SPICE ingestions
//	qs datasets     List data sets
//	qs dashboards   List dashboards
//	qs version      Print the version
//
// # Quick Start
//
// Start a local server and point the client at it:
//
//	qs serve --memory
//	qs --endpoint http://localhost:3080 --account 111122223333 groups create analysts
//
// # Configuration
//
// Defaults are read from qs.yaml, searched for from the current directory up to
// the filesystem root. Flags override file values:
//
//	accountId: "111122223333"
//	namespace: default
//	region: eu-west-1
//	endpoint: http://localhost:3080
//	dataDir: ./data     # qs serve database directory
//	port: 3080          # qs serve port
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// globalFlags are shared by every command that talks to the service.
type globalFlags struct {
	account   string
	namespace string
	region    string
	endpoint  string
	profile   string
	verbose   bool
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:          "qs",
	Short:        "QuickSight control plane client",
	Long:         "A command line client for QuickSight users, groups, data sets, ingestions and dashboards, and a local server to run them against.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qs version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.account, "account", "", "AWS account id (default: accountId from qs.yaml, then the caller's account)")
	pf.StringVar(&flags.namespace, "namespace", "", "QuickSight namespace (default \"default\")")
	pf.StringVar(&flags.region, "region", "", "AWS region")
	pf.StringVar(&flags.endpoint, "endpoint", "", "service endpoint, for example a local qs serve")
	pf.StringVar(&flags.profile, "profile", "", "shared config profile")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log requests and responses")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(ingestionsCmd)
	rootCmd.AddCommand(dataSetsCmd)
	rootCmd.AddCommand(dashboardsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
