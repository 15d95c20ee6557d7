package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/ecordell/optgen/helpers"
	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	v1 "github.com/nonx2/yuuna-server/api/v1"
	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/handlers"
	"github.com/nonx2/yuuna-server/internal/server"
	"github.com/nonx2/yuuna-server/internal/services"
	"github.com/nonx2/yuuna-server/internal/store"
	"github.com/nonx2/yuuna-server/internal/store/migrations"
	"github.com/nonx2/yuuna-server/pkg/vts"
)

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Yuna server",
		Example: `  # Run with VTube Studio on the default port, keeping the token in memory
  yuna run

  # Persist the token and talk to VTube Studio on another port
  yuna run --data-folder /var/lib/yuna --vts-port 8002

  # Run in production mode with the web UI
  yuna run --data-folder /var/lib/yuna --server-mode prod --server-statics-folder /var/www/yuna`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfiguration(cfg); err != nil {
				return err
			}

			zap.S().Infow("using configuration",
				"agent", helpers.Flatten(cfg.Agent.DebugMap()),
				"server", helpers.Flatten(cfg.Server.DebugMap()),
				"vts", helpers.Flatten(cfg.VTS.DebugMap()),
				"tts", helpers.Flatten(cfg.TTS.DebugMap()),
			)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
			defer cancel()
			wg := sync.WaitGroup{}
			wg.Add(1)

			// init store
			dbPath := filepath.Join(cfg.Agent.DataFolder, "yuna.duckdb")
			if cfg.Agent.DataFolder == "" {
				dbPath = ":memory:"
				zap.S().Warn("data-folder not set, using in-memory database (the vts token will not persist)")
			}
			db, err := store.NewDB(dbPath)
			if err != nil {
				zap.S().Errorw("failed to initialize database", "error", err)
				return err
			}
			s := store.NewStore(db)
			defer s.Close()

			if err := migrations.Run(ctx, db); err != nil {
				zap.S().Errorw("failed to run migrations", "error", err)
				return err
			}
			zap.S().Info("database initialized successfully")

			// init services
			vtsSrv := services.NewVTSService(cfg.VTS, vts.NewClient(cfg.VTS.Timeout), s.Token())
			ttsSrv := services.NewTTSService(cfg.TTS)

			// init handlers
			h := handlers.New(vtsSrv, ttsSrv)

			srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlers(router, h)
			})
			if err != nil {
				zap.S().Errorw("failed to create http server", "error", err)
				return err
			}

			go func() {
				defer func() {
					wg.Done()
					cancel()
				}()
				zap.S().Infof("Starting HTTP server on port %d", cfg.Server.HTTPPort)

				if err := srv.Start(ctx); err != nil {
					zap.S().Errorw("http server stopped", "error", err)
				}
			}()

			<-ctx.Done()

			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			_ = srv.Stop(stopCtx)

			wg.Wait()
			zap.S().Info("server shutdown")

			return nil
		},
	}

	registerFlags(runCmd, cfg)

	return runCmd
}

func registerFlags(cmd *cobra.Command, config *config.Configuration) {
	nfs := cobrautil.NewNamedFlagSets(cmd)

	serverFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("Server"))
	registerServerFlags(serverFlagSet, config)

	agentFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("Agent"))
	registerAgentFlags(agentFlagSet, config)

	vtsFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("VTube Studio"))
	registerVTSFlags(vtsFlagSet, config)

	ttsFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("TTS"))
	registerTTSFlags(ttsFlagSet, config)

	nfs.AddFlagSets(cmd)
}

func validateConfiguration(cfg *config.Configuration) error {
	switch config.ServerModeType(cfg.Server.ServerMode) {
	case config.ServerModeProd, config.ServerModeDev:
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.ServerMode, config.ServerModeProd, config.ServerModeDev)
	}

	if config.ServerModeType(cfg.Server.ServerMode) == config.ServerModeProd && cfg.Server.StaticsFolder == "" {
		return errors.New("statics folder must be set when server mode is production")
	}

	if err := validatePort(cfg.Server.HTTPPort, "server-http-port"); err != nil {
		return err
	}
	if err := validatePort(cfg.VTS.Port, "vts-port"); err != nil {
		return err
	}

	if cfg.VTS.Host == "" {
		return errors.New("vts-host cannot be empty")
	}
	if cfg.VTS.PluginName == "" || cfg.VTS.PluginDeveloper == "" {
		return errors.New("vts-plugin-name and vts-plugin-developer cannot be empty")
	}
	if cfg.VTS.Timeout <= 0 {
		return fmt.Errorf("invalid vts-timeout %s: must be positive", cfg.VTS.Timeout)
	}

	if cfg.TTS.URL == "" {
		return errors.New("tts-url cannot be empty")
	}
	if cfg.TTS.RequestTimeout <= 0 {
		return fmt.Errorf("invalid tts-timeout %s: must be positive", cfg.TTS.RequestTimeout)
	}

	return nil
}

func validatePort(port int, name string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", name, port)
	}
	return nil
}

func registerServerFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.IntVar(&config.Server.HTTPPort, "server-http-port", config.Server.HTTPPort, "Port on which the HTTP server is listening")
	flagSet.StringVar(&config.Server.StaticsFolder, "server-statics-folder", config.Server.StaticsFolder, "Path to statics folder")
	flagSet.StringVar(&config.Server.ServerMode, "server-mode", config.Server.ServerMode, "Server mode: either prod or dev. If prod the statics folder must be set")
}

func registerAgentFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.StringVar(&config.Agent.DataFolder, "data-folder", config.Agent.DataFolder, "Path to the persistent data folder")
}

func registerVTSFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.StringVar(&config.VTS.Host, "vts-host", config.VTS.Host, "Host of the VTube Studio API")
	flagSet.IntVar(&config.VTS.Port, "vts-port", config.VTS.Port, "Port of the VTube Studio API")
	flagSet.StringVar(&config.VTS.PluginName, "vts-plugin-name", config.VTS.PluginName, "Plugin name shown in VTube Studio")
	flagSet.StringVar(&config.VTS.PluginDeveloper, "vts-plugin-developer", config.VTS.PluginDeveloper, "Plugin developer shown in VTube Studio")
	flagSet.DurationVar(&config.VTS.Timeout, "vts-timeout", config.VTS.Timeout, "Timeout of each VTube Studio request")
}

func registerTTSFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.StringVar(&config.TTS.URL, "tts-url", config.TTS.URL, "URL of the VOICEVOX engine")
	flagSet.IntVar(&config.TTS.DefaultSpeaker, "tts-speaker", config.TTS.DefaultSpeaker, "Default VOICEVOX speaker id")
	flagSet.DurationVar(&config.TTS.RequestTimeout, "tts-timeout", config.TTS.RequestTimeout, "Timeout of each VOICEVOX request")
}
