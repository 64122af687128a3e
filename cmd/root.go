package cmd

import (
	"fmt"
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Hamming code encoder, decoder and channel simulator",
	Long: `hamming encodes bit strings with a single error correcting Hamming code,
decodes (possibly corrupted) codewords showing every parity check, and
runs channel simulations to measure how well the code holds up.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verbose, logFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool, logFile string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if logFile == "" {
		return
	}
	pathMap := lfshook.PathMap{
		logrus.DebugLevel: logFile + ".debug",
		logrus.InfoLevel:  logFile + ".info",
		logrus.WarnLevel:  logFile + ".warn",
		logrus.ErrorLevel: logFile + ".error",
	}
	logrus.AddHook(lfshook.NewHook(pathMap, &logrus.JSONFormatter{
		TimestampFormat: "Jan _2 2006 15:04:05.000000",
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose info")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to LOG_FILE.<level>")
}
