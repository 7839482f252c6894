package main

import (
	"bot-chat/flow"
	"bot-chat/repositories"
	"bot-chat/server"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type options struct {
	badgerPath string
	logLevel   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "flowctl",
		Short:        "Manage the conversation flows stored by the bot server",
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.badgerPath, "badger", os.Getenv("BADGER_FILEPATH"), "Badger directory of the server")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "WARN", "Log level")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored flows, oldest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRepository(opts, true, func(repo repositories.FlowRepository) error {
					docs, err := repo.List()
					if err != nil {
						return err
					}
					renderFlows(cmd.OutOrStdout(), docs)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print the JSON of a stored flow",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return err
				}
				return withRepository(opts, true, func(repo repositories.FlowRepository) error {
					doc, err := repo.Get(id)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.JSON)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Validate a flow file, store it and make it active",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				return withRepository(opts, false, func(repo repositories.FlowRepository) error {
					doc, err := server.ImportFlow(repo, flow.NewHolder(slog.Default()), raw)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s) as version %d\n", doc.Name, doc.ID, doc.Version)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "activate <id>",
			Short: "Make a stored flow the active one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return err
				}
				return withRepository(opts, false, func(repo repositories.FlowRepository) error {
					doc, err := repo.Activate(id)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Activated %s (%s)\n", doc.Name, doc.ID)
					return err
				})
			},
		},
	)
	return root
}

// withRepository opens Badger for the duration of fn. The server must be stopped
// for writes; reads bypass the directory lock.
func withRepository(opts *options, readOnly bool, fn func(repositories.FlowRepository) error) error {
	if opts.badgerPath == "" {
		return fmt.Errorf("badger directory is required (--badger or BADGER_FILEPATH)")
	}
	badgerOpts := badger.DefaultOptions(opts.badgerPath).WithLoggingLevel(badger.ERROR)
	if readOnly {
		badgerOpts = badgerOpts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()
	return fn(repositories.NewFlowRepository(db, logs.GetLoggerFromString(opts.logLevel)))
}

func renderFlows(out io.Writer, docs []repositories.FlowDocument) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Version", "ID", "Name", "Active", "Created", "Size"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, d := range docs {
		active := ""
		if d.Active {
			active = "*"
		}
		table.Append([]string{
			strconv.Itoa(d.Version),
			d.ID.String(),
			d.Name,
			active,
			d.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(len(d.JSON)),
		})
	}
	table.Render()
}
