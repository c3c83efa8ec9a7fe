// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/H0llyW00dzZ/cert-tree/src/internal/helper/posix"
	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
	x509remote "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/remote"
	x509tree "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/tree"
	"github.com/H0llyW00dzZ/cert-tree/src/logger"
	"github.com/H0llyW00dzZ/cert-tree/src/tui"
)

var (
	cfgFile     string
	inputFile   string
	inputURL    string
	interactive bool
	textMode    bool
)

// OperationPerformed indicates whether a certificate operation was started.
var OperationPerformed bool

// OperationPerformedSuccessfully indicates whether the operation completed without error.
var OperationPerformedSuccessfully bool

// ErrNoInput indicates that neither a file nor a URL was provided.
var ErrNoInput = errors.New("cli: no input, provide --file or --url")

// currentVersion is recorded by Execute for the remote fetcher User-Agent.
var currentVersion string

// Execute runs the root command with the given context, version, and logger.
// It returns the error from command execution so the caller decides the exit path.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	currentVersion = version
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:     exe,
		Short:   "X.509 certificate chain inspector",
		Long:    "Assemble X.509 certificates into issuer trees and inspect their validity and trust paths.",
		Version: version,
		Example: fmt.Sprintf(`  %s -f chain.pem
  %s -f chain.pem -o table
  %s -U example.com -t
  %s -f chain.pem -i`, exe, exe, exe, exe),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd.Context(), log)
		},
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .cert-tree.yaml)")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read the certificate chain from FILE (PEM, DER, or PKCS#7)")
	rootCmd.Flags().StringVarP(&inputURL, "url", "U", "", "fetch the certificate chain from URL (https assumed when no scheme)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the chain in an interactive terminal UI")
	rootCmd.Flags().BoolVarP(&textMode, "text", "t", false, "force plain text output, skipping the terminal UI")
	rootCmd.Flags().StringP("output", "o", "tree", "output format: tree, table, json, or yaml")
	rootCmd.Flags().Int("warn-days", x509tree.DefaultWarnDays, "days before expiry to flag a certificate as expiring soon")

	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("warn-days", rootCmd.Flags().Lookup("warn-days"))

	rootCmd.AddCommand(newCompletionCmd(exe))

	return rootCmd.ExecuteContext(ctx)
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cert-tree")
	}

	viper.SetEnvPrefix("CERT_TREE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.ReadInConfig()
}

// execCli loads the requested certificate chain, assembles the issuer tree,
// and renders it in the selected mode.
func execCli(ctx context.Context, log logger.Logger) error {
	OperationPerformed = true

	certs, err := loadInput(ctx)
	if err != nil {
		return err
	}

	records := x509certinfo.ExtractAll(certs)

	// A single certificate gets the detailed report rather than a one-node tree.
	if len(records) == 1 && !interactive {
		log.Println(x509certinfo.FormatVerbose(records[0]))
		OperationPerformedSuccessfully = true
		return nil
	}

	classifier := x509tree.NewClassifier()
	classifier.WarnDays = viper.GetInt("warn-days")
	forest := x509tree.BuildForest(records, classifier)

	if interactive && !textMode {
		fallThroughToText, err := tui.Run(forest)
		if err != nil {
			return err
		}
		if !fallThroughToText {
			OperationPerformedSuccessfully = true
			return nil
		}
	}

	out, err := render(forest)
	if err != nil {
		return err
	}
	log.Println(out)

	OperationPerformedSuccessfully = true
	return nil
}

// loadInput resolves the chain from the file or URL flag.
func loadInput(ctx context.Context) ([]*x509.Certificate, error) {
	switch {
	case inputFile != "":
		data, err := x509remote.LoadFile(inputFile)
		if err != nil {
			return nil, err
		}
		certs, err := x509certinfo.New().DecodeMultiple(data)
		if err != nil {
			return nil, fmt.Errorf("cli: failed to decode certificates: %w", err)
		}
		return certs, nil
	case inputURL != "":
		return x509remote.NewFetcher(currentVersion).FetchChain(ctx, inputURL)
	default:
		return nil, ErrNoInput
	}
}

// render serializes the forest in the configured output format.
func render(forest *x509tree.Forest) (string, error) {
	format := viper.GetString("output")
	if textMode {
		format = "tree"
	}

	switch format {
	case "tree":
		return x509tree.RenderText(forest), nil
	case "table":
		return x509tree.RenderTable(forest), nil
	case "json":
		data, err := x509tree.ExportJSON(forest)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml":
		data, err := x509tree.ExportYAML(forest)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("cli: unknown output format %q", format)
	}
}
