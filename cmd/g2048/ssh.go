package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/g2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the g2048 SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. A PTY is required.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.g2048/host_key

Examples:
  g2048 ssh                           # Listen on :23234 with auto-generated key
  g2048 ssh --addr :2222              # Listen on port 2222
  g2048 ssh --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH server address (default from config, :23234)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config, 30m)")
}

func runSSH(cmd *cobra.Command, _ []string) error {
	sc := cfg.SSH
	if cmd.Flags().Changed("addr") {
		sc.Addr = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		sc.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sc.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(sc, cfg.TUI, logger.WithPrefix("g2048-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with", "command", "ssh localhost -p "+portOf(sc.Addr))
	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
