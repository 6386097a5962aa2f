package servecmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/easel/pkg/logger"
	"github.com/papercomputeco/easel/server"
)

const serveLongDesc string = `Start the easel chart-generation server.

The server exposes POST /api/chat, which forwards a chat transcript to an
OpenAI-compatible completion API and returns normalized chart data produced
by the generate_graph_data tool.

The upstream API key is read from --api-key, the config file, or the
OPENAI_API_KEY environment variable, in that order.

Examples:
  easel serve
  easel serve --listen :6062 --base-url http://localhost:11434/v1
  easel serve --config /etc/easel/easel.toml`

const serveShortDesc string = "Start the easel server"

type serveCommander struct {
	configPath string
	listenAddr string
	baseURL    string
	apiKey     string
	debug      bool
}

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().StringVar(&cmder.listenAddr, "listen", "", "Address to listen on")
	cmd.Flags().StringVar(&cmder.baseURL, "base-url", "", "Upstream chat-completion API base URL")
	cmd.Flags().StringVar(&cmder.apiKey, "api-key", "", "Upstream API key")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *serveCommander) run(cmd *cobra.Command) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Debug, cfg.JSONLogs)
	defer log.Sync()

	log.Info("easel starting",
		zap.String("listen", cfg.ListenAddr),
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("debug", cfg.Debug),
	)

	completer := server.NewCompleter(cfg.APIKey, cfg.BaseURL)

	srv := server.New(cfg, completer, log)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// resolveConfig layers flags over the config file over the defaults, with an
// environment fallback for the API key.
func (c *serveCommander) resolveConfig() (server.Config, error) {
	cfg := server.DefaultConfig()

	if c.configPath != "" {
		loaded, err := server.LoadConfig(c.configPath)
		if err != nil {
			return server.Config{}, err
		}
		cfg = loaded
	}

	if c.listenAddr != "" {
		cfg.ListenAddr = c.listenAddr
	}
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	if c.apiKey != "" {
		cfg.APIKey = c.apiKey
	}
	if c.debug {
		cfg.Debug = true
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, nil
}
