package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tahseenjamal/stompy"
)

var (
	server  string
	envFile string
	verbose bool
)

func initLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.TraceLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "stompcat").Logger()
}

func dial() (*stompy.Conn, zerolog.Logger, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, zerolog.Nop(), fmt.Errorf("loading env file: %w", err)
		}
	}
	if server == "" {
		server = os.Getenv("STOMP_SERVER")
	}
	if server == "" {
		return nil, zerolog.Nop(), fmt.Errorf("no server given, use --server or STOMP_SERVER")
	}
	log := initLogger()
	conn, err := stompy.Dial(stompy.ConnOpts{
		HostAndPort: server,
		Timeout:     10 * time.Second,
		Logger:      &log,
	})
	if err != nil {
		return nil, log, err
	}
	log.Info().Str("session", conn.Session().Get(stompy.HdrSession)).Msg("connected")
	return conn, log, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "stompcat",
		Short:         "publish to and drain frames from a STOMP style broker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "broker host:port (defaults to STOMP_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "optional .env file with connection settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace level frame logging")

	var (
		destination string
		wantReceipt bool
	)
	publishCmd := &cobra.Command{
		Use:   "publish <body>",
		Short: "send one frame to a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, log, err := dial()
			if err != nil {
				return err
			}
			defer conn.Disconnect()

			headers := stompy.NewHeaders()
			headers.Set(stompy.HdrDestination, destination)
			frame := conn.Build(stompy.CmdSend, headers, []byte(args[0]), wantReceipt)
			reply, err := conn.Send(frame)
			if err != nil {
				return err
			}
			if reply != nil {
				log.Info().Str("command", reply.Command).Msg("broker acknowledged")
			}
			return nil
		},
	}
	publishCmd.Flags().StringVarP(&destination, "destination", "d", "/queue/stompcat", "destination header value")
	publishCmd.Flags().BoolVarP(&wantReceipt, "receipt", "r", false, "request a receipt and wait for it")

	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "print message frames as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, log, err := dial()
			if err != nil {
				return err
			}
			defer conn.Disconnect()

			for {
				msg, err := conn.GetMessage(false)
				if err != nil {
					return err
				}
				log.Info().
					Str("destination", msg.Headers.Get(stompy.HdrDestination)).
					Msg("message")
				fmt.Println(string(msg.Body))
			}
		},
	}

	rootCmd.AddCommand(publishCmd, listenCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
