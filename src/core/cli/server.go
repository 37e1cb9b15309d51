package cli

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"test-grid/src/core/config"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolved node configuration over HTTP for diagnostics",
		RunE:  runServe,
	}
	addNodeFlags(cmd)
	cmd.Flags().String("listen", ":5556", "address to serve diagnostics on")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	cfg, err := loadNodeConfig(cmd)
	if err != nil {
		return err
	}
	hub, err := finalizeNodeConfig(cfg, log)
	if err != nil {
		return err
	}

	if log.IsDebugEnabled() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	if log.IsDebugEnabled() {
		engine.Use(gin.Logger())
	}

	setupDiagnosticsRoutes(engine, cfg, hub)

	listen, _ := cmd.Flags().GetString("listen")
	log.Info("serving node configuration diagnostics on %s", listen)
	return engine.Run(listen)
}

// setupDiagnosticsRoutes configures the read-only diagnostics endpoints.
// This surface re-emits configuration only; it does not speak the node/hub
// protocol.
func setupDiagnosticsRoutes(engine *gin.Engine, cfg *config.NodeConfig, hub config.HostPort) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":      "test-grid node",
			"role":         cfg.Role,
			"hub":          hub.String(),
			"advertised":   cfg.AdvertisedAddress(),
			"capabilities": len(cfg.Capabilities),
		})
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.ToMap())
	})
}
