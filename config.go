package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind    string
	profile bool
	tlsCert string
	tlsKey  string
	verbose bool
	version bool
	webPort int
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.webPort != 0 && (c.webPort < 1 || c.webPort > 65535) {
		return fmt.Errorf("invalid web port (must be between 1-65535 inclusive): %d", c.webPort)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func parsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port (must be between 1-65535 inclusive): %s", arg)
	}
	return port, nil
}

func parsePlayers(arg string) (int, error) {
	players, err := strconv.Atoi(arg)
	if err != nil || players < 1 {
		return 0, fmt.Errorf("invalid player count (must be at least 1): %s", arg)
	}
	return players, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SPOCKBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "spockbox",
		Short:         "A turn-synchronized rock-paper-scissors-lizard-spock table, played over plain TCP sockets or a browser.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
	}

	serveCmd := &cobra.Command{
		Use:   "serve <port> <players>",
		Short: "Referee a table of remote players",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}
			players, err := parsePlayers(args[1])
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return serveTable(cmd.Context(), cfg, port, players)
		},
	}

	sfs := serveCmd.Flags()
	sfs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SPOCKBOX_BIND)")
	sfs.IntVarP(&cfg.webPort, "web-port", "w", 0, "also serve a browser lobby on this port, 0 to disable (env: SPOCKBOX_WEB_PORT)")
	sfs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers on the web lobby (env: SPOCKBOX_PROFILE)")
	sfs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate for the web lobby (env: SPOCKBOX_TLS_CERT)")
	sfs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile for the web lobby (env: SPOCKBOX_TLS_KEY)")

	hostCmd := &cobra.Command{
		Use:   "host <port> [players]",
		Short: "Referee a table while playing from this terminal",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}
			players := 2
			if len(args) == 2 {
				players, err = parsePlayers(args[1])
				if err != nil {
					return err
				}
			}
			return hostTable(cfg, port, players)
		},
	}

	hostCmd.Flags().StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SPOCKBOX_BIND)")

	joinCmd := &cobra.Command{
		Use:   "join <host> <port>",
		Short: "Sit down at a remote table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[1])
			if err != nil {
				return err
			}
			return joinTable(cfg, args[0], port)
		},
	}

	chatCmd := &cobra.Command{
		Use:   "chat [host] <port>",
		Short: "Turn-based two-party chat, for hashing out the stakes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[len(args)-1])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return chatListen(cfg, port)
			}
			return chatDial(cfg, args[0], port)
		},
	}

	chatCmd.Flags().StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SPOCKBOX_BIND)")

	pfs := cmd.PersistentFlags()
	pfs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: SPOCKBOX_VERBOSE)")

	fs := cmd.Flags()
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: SPOCKBOX_VERSION)")

	cmd.AddCommand(serveCmd, hostCmd, joinCmd, chatCmd)

	for _, sub := range []*pflag.FlagSet{pfs, fs, sfs, hostCmd.Flags(), joinCmd.Flags(), chatCmd.Flags()} {
		bindFlags(v, sub)
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("spockbox v{{.Version}}\n")

	return cmd
}
