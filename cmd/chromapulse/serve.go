package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapulse/internal/config"
	"github.com/vovakirdan/chromapulse/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ChromaPulse SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. All users share the same
leaderboard and run history.

Settings come from the environment and can be overridden by flags:
  CHROMAPULSE_SSH_ADDR       listen address (default :23234)
  CHROMAPULSE_HOST_KEY       host key path
  CHROMAPULSE_DB             scores database path
  CHROMAPULSE_IDLE_TIMEOUT   idle timeout, e.g. 30m

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.chromapulse/host_key

Examples:
  chromapulse serve                           # Listen on :23234 with auto-generated key
  chromapulse serve --ssh :2222               # Listen on port 2222
  chromapulse serve --host-key ./my_host_key  # Use specific host key
  chromapulse serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	env, err := config.LoadServerEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		env.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		env.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		env.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flags.Changed("db") {
		env.DBPath = flagDBPath
	}

	game, err := loadGameConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFromEnv(env, game))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting ChromaPulse SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
