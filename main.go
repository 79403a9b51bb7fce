package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"staffdir/config"
	"staffdir/database"
	"staffdir/logger"
	"staffdir/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetAdmin() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := database.ResetUser(); err != nil {
		fmt.Println("reset admin failed:", err)
		return
	}
	fmt.Println("admin credentials restored to the defaults")
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "Internal staff directory panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reset-admin",
		Short: "Restore the default admin credentials",
		Run: func(cmd *cobra.Command, args []string) {
			resetAdmin()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
