// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LeeDigitalWorks/logarchive/pkg/config"
	"github.com/LeeDigitalWorks/logarchive/pkg/deletion"
	"github.com/LeeDigitalWorks/logarchive/pkg/env"
	"github.com/LeeDigitalWorks/logarchive/pkg/handler"
	"github.com/LeeDigitalWorks/logarchive/pkg/logger"
	"github.com/LeeDigitalWorks/logarchive/pkg/s3client"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// functionCmds maps function names to their subcommands.
var functionCmds = make(map[string]*cobra.Command)

func init() {
	for _, fn := range []struct{ name, short string }{
		{handler.DeleteOriginals, "Delete archived log objects with all their versions"},
		{handler.DetermineArchiveKey, "Compute the archive key for a set of log files"},
		{handler.DynamicSetup, "Expand bucket name prefixes and default the run date"},
		{handler.GetAccountPrefixes, "List account prefixes of a Control Tower log bucket"},
		{handler.GetRegions, "List region prefixes under an account prefix"},
	} {
		c := newFunctionCmd(fn.name, fn.short)
		functionCmds[fn.name] = c
		rootCmd.AddCommand(c)
	}
}

func newFunctionCmd(name, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := NewFlagLoader(cmd)
			if flags.Bool("lambda") || env.InLambda() {
				return serveLambda(cmd, name)
			}
			return runOnce(cmd, name, flags.String("event"))
		},
	}

	f := c.Flags()
	f.String("event", "-", "JSON event file, or - to read stdin")
	f.Bool("lambda", false, "Serve the function through the Lambda runtime API")

	return c
}

func loadFunctions(ctx context.Context) (*handler.Functions, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	client, err := s3client.Default().GetClient(ctx, cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return handler.New(cfg, client), nil
}

func serveLambda(cmd *cobra.Command, name string) error {
	fns, err := loadFunctions(cmd.Context())
	if err != nil {
		return err
	}
	h, ok := fns.Handler(name)
	if !ok {
		return fmt.Errorf("unknown function %q", name)
	}

	logger.Info().Str("function", name).Msg("Starting Lambda handler")
	lambda.StartWithOptions(h, lambda.WithEnableSIGTERM(func() {
		logger.Info().Str("function", name).Msg("Lambda runtime shutting down")
	}))
	return nil
}

func runOnce(cmd *cobra.Command, name, eventPath string) error {
	payload, err := readEvent(cmd.InOrStdin(), eventPath)
	if err != nil {
		return err
	}

	fns, err := loadFunctions(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if name == handler.DeleteOriginals {
		var req deletion.Request
		if err := json.Unmarshal(payload, &req); err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		report, err := fns.Delete(cmd.Context(), req)
		if err != nil {
			return err
		}
		printReport(out, report)
		return nil
	}

	h, ok := fns.Handler(name)
	if !ok {
		return fmt.Errorf("unknown function %q", name)
	}
	result, err := lambda.NewHandler(h).Invoke(cmd.Context(), payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(result))
	return err
}

// readEvent reads the event from path, or from stdin when path is empty or "-".
func readEvent(stdin io.Reader, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("read event: not valid JSON")
	}
	return data, nil
}

func printReport(w io.Writer, r *deletion.Report) {
	fmt.Fprintf(w, "Bucket:           %s\n", r.Bucket)
	fmt.Fprintf(w, "Source:           %s\n", r.Source)
	fmt.Fprintf(w, "Files:            %s\n", humanize.Comma(int64(r.KeysResolved)))
	fmt.Fprintf(w, "Versions found:   %s\n", humanize.Comma(int64(r.VersionsFound)))
	fmt.Fprintf(w, "Batches:          %s\n", humanize.Comma(int64(r.BatchesIssued)))
	fmt.Fprintf(w, "Versions removed: %s\n", humanize.Comma(int64(r.VersionsRemoved)))
	if n := len(r.ItemErrors); n > 0 {
		fmt.Fprintf(w, "Item errors:      %s\n", humanize.Comma(int64(n)))
	}
	if r.Source == deletion.SourceManifest {
		fmt.Fprintf(w, "Manifest removed: %t\n", r.ManifestRemoved)
	}
	fmt.Fprintf(w, "Outcome:          %s\n", r.Outcome())
	if r.Err != nil {
		fmt.Fprintf(w, "Error:            %v\n", r.Err)
	}
}
