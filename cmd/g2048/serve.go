package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/g2048/internal/platform/devserver"
)

var (
	flagAddr string
	flagRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser build for local development",
	Long: `Serve the static browser build over HTTP.

"/" returns index.html; every other path is read from the content root.
Missing files answer 404, unreadable ones 500.

Build the browser game first:
  GOOS=js GOARCH=wasm go build -o web/static/game.wasm ./cmd/wasm
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/static/

Examples:
  g2048 serve                     # http://localhost:3000/
  g2048 serve --addr :8080
  g2048 serve --root ./dist`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default from config, :3000)")
	serveCmd.Flags().StringVar(&flagRoot, "root", "", "Content root directory (default from config, web/static)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sc := cfg.Server
	if cmd.Flags().Changed("addr") {
		sc.Addr = flagAddr
	}
	if cmd.Flags().Changed("root") {
		sc.Root = flagRoot
	}

	server := devserver.New(sc, nil, logger.WithPrefix("g2048-serve"))
	logger.Info("server running", "url", "http://localhost"+sc.Addr+"/")
	return server.ListenAndServe()
}
