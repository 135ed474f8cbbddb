package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spawnproof/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeDir    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor SSH server",
	Long: `Start an SSH server that opens the canvas editor for every connection.

Each session gets a blank canvas sized to its terminal (at most the
configured editor size). Saved layouts and exported blueprints are written
to --dir under a unique per-session name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spawnproof/host_key

Examples:
  spawnproof serve                           # Listen on :23234 with auto-generated key
  spawnproof serve --ssh :2222               # Listen on port 2222
  spawnproof serve --dir ./shared-patterns   # Collect layouts in a custom directory

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeDir, "dir", "patterns", "Directory receiving saved layouts")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg := appConfig

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		Dir:         flagServeDir,
		Size:        cfg.Editor.Size,
		Layout:      editorLayout(cfg),
		TickRate:    cfg.Editor.TickRate,
		Radius:      cfg.Editor.CircleRadius,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger.WithPrefix("ssh"),
	})
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe()
}
