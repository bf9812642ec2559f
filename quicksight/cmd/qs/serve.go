package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/acksell/qsight/quicksight/qsserve"
)

var serveFlags struct {
	db     string
	memory bool
	port   int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local QuickSight server",
	Long: `Start a local QuickSight server backed by BadgerDB.

The server speaks the same REST-JSON protocol as the service, so any client can
use it by overriding its endpoint. Requests are not authenticated.`,
	Example: `  # Keep data in ./data
  qs serve --db ./data

  # Keep data in memory only
  qs serve --memory --port 3080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := loadWorkingConfig()
		if err != nil {
			return err
		}
		cfg := fileCfg.withFlags(flags)

		dbPath := cfg.DataDir
		if serveFlags.db != "" {
			dbPath = serveFlags.db
		}
		if serveFlags.memory {
			if serveFlags.db != "" {
				return fmt.Errorf("--db and --memory are mutually exclusive")
			}
			dbPath = ""
		}
		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = serveFlags.port
		}

		serverCfg := qsserve.ServerConfig{
			Port:   port,
			DBPath: dbPath,
			Region: cfg.Region,
		}
		if flags.verbose {
			serverCfg.StoreLogger = storeLogger{}
		}
		server, err := qsserve.NewServer(serverCfg)
		if err != nil {
			return err
		}
		return server.Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.db, "db", "", "database directory (default: dataDir from qs.yaml, else in-memory)")
	serveCmd.Flags().BoolVar(&serveFlags.memory, "memory", false, "keep data in memory only")
	serveCmd.Flags().IntVar(&serveFlags.port, "port", defaultPort, "HTTP port")
}

// storeLogger sends BadgerDB's log output to the standard logger.
type storeLogger struct{}

func (storeLogger) Errorf(format string, args ...any)   { log.Printf("badger ERROR: "+format, args...) }
func (storeLogger) Warningf(format string, args ...any) { log.Printf("badger WARN: "+format, args...) }
func (storeLogger) Infof(format string, args ...any)    { log.Printf("badger INFO: "+format, args...) }
func (storeLogger) Debugf(format string, args ...any)   {}
