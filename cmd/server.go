package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"polyconf/config"
	logger "polyconf/log"
	"polyconf/routes"
	"polyconf/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var serverCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server", "s"},
	Short:   "Start API Server",
	Long:    `Start the configurator API, picking the first free port from app.port onwards`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	serverCmd.Flags().String("host", "", "bind address (app.host)")
	serverCmd.Flags().Int("port", 0, "first port to try (app.port)")
	serverCmd.Flags().Int("port-range", 0, "how many ports to probe (app.port_range)")
	serverCmd.Flags().Bool("debug", false, "gin debug mode (app.debug)")

	bindFlag("app.host", serverCmd.Flags().Lookup("host"))
	bindFlag("app.port", serverCmd.Flags().Lookup("port"))
	bindFlag("app.port_range", serverCmd.Flags().Lookup("port-range"))
	bindFlag("app.debug", serverCmd.Flags().Lookup("debug"))

	rootCmd.AddCommand(serverCmd)
}

// logger and configuration
var (
	conf = config.GetConfig()
	log  = logger.GetLogger()
)

// bindFlag - flags only win over config when set on the command line
func bindFlag(key string, flag *pflag.Flag) {
	if err := conf.BindPFlag(key, flag); err != nil {
		log.Errorf("cannot bind flag %s : %v", flag.Name, err)
	}
}

func run() error {

	// environment may have come from a flag
	logger.Configure(conf.GetString("app.environment"), conf.GetString("app.log_path"))

	host := conf.GetString("app.host")

	port, err := utils.FindAvailablePort(host, conf.GetInt("app.port"), conf.GetInt("app.port_range"))
	if err != nil {
		log.Errorf("cannot start server : %v", err)
		return err
	}

	//attach routes
	router := routes.Router()

	// HTTP Server
	server := &http.Server{
		Addr:           net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Handle graceful shutdown on SIGINT
	idleConnectionsClosed := make(chan struct{})

	go func() {

		s := make(chan os.Signal, 1)
		signal.Notify(s, os.Interrupt, syscall.SIGTERM)
		<-s

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("HTTP server shutdown error: %v", err)
		}

		close(idleConnectionsClosed)
	}()

	log.Infof("Starting server on http://%s", server.Addr)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Error(err)
		return err
	}

	<-idleConnectionsClosed

	return nil
}
