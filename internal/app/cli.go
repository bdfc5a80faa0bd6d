package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Egor213/dblogger/internal/config"
	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/service"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/logger"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

type writeOptions struct {
	level   string
	message string
	context string
	actor   int64
	ip      string
}

type listOptions struct {
	page    int
	perPage int
	search  string
	level   string
	orderBy string
	desc    bool
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "dblogger",
		Short:        "Database backed structured logger",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (overrides APP_CONFIG_PATH)")

	// loadConfig runs lazily so --help works without a config file.
	loadConfig := func(out io.Writer) (*config.Config, error) {
		if configPath != "" {
			if err := os.Setenv("APP_CONFIG_PATH", configPath); err != nil {
				return nil, errorsUtils.WrapPathErr(err)
			}
		}
		cfg, err := config.New()
		if err != nil {
			return nil, err
		}
		logger.SetupLogger(cfg.Log.Level, logger.WithOutput(out))
		log.Info("Logger has been set up")
		return cfg, nil
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newMigrateCmd(loadConfig),
		newWriteCmd(loadConfig),
		newListCmd(loadConfig),
	)
	return root
}

type configLoader func(out io.Writer) (*config.Config, error)

func newServeCmd(loadConfig configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin API and the metrics server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return Serve(cfg)
		},
	}
}

func newMigrateCmd(loadConfig configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the log table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			_, closeStorage, err := openStorage(cfg)
			if err != nil {
				return err
			}
			closeStorage()
			return nil
		},
	}
}

func newWriteCmd(loadConfig configLoader) *cobra.Command {
	opts := writeOptions{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write one log record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logCtx, err := parseContext(opts.context)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			repositories, closeStorage, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			env := environment.Static{Address: opts.ip, Actor: opts.actor}
			logService := service.NewLogService(repositories.Log, env, metrics.New())

			if err := logService.Log(cmd.Context(), domain.Level(opts.level), opts.message, logCtx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.level, "level", "l", string(domain.LevelInfo), "record level")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "message, may contain {placeholders}")
	cmd.Flags().StringVar(&opts.context, "context", "", "context as a JSON object")
	cmd.Flags().Int64Var(&opts.actor, "actor", 0, "acting user id")
	cmd.Flags().StringVar(&opts.ip, "ip", "", "client address")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newListCmd(loadConfig configLoader) *cobra.Command {
	opts := listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of log records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			repositories, closeStorage, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			queryService := service.NewQueryService(repositories.Log, metrics.New())
			filter := service.Filter{
				Page:    opts.page,
				PerPage: opts.perPage,
				Message: opts.search,
				Level:   domain.Level(opts.level),
				OrderBy: opts.orderBy,
				Desc:    opts.desc,
			}

			records, total, err := queryService.Query(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records, total, filter)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&opts.perPage, "per-page", 20, "records per page")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "message substring")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "only this level")
	cmd.Flags().StringVar(&opts.orderBy, "orderby", "", "sortable column")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending")

	return cmd
}

func parseContext(raw string) (domain.Context, error) {
	logCtx := domain.Context{}
	if raw == "" {
		return logCtx, nil
	}
	if err := json.Unmarshal([]byte(raw), &logCtx); err != nil {
		return nil, fmt.Errorf("context must be a JSON object: %w", err)
	}
	return logCtx, nil
}

func printRecords(w io.Writer, records []domain.LogRecord, total int, f service.Filter) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tLEVEL\tGROUP\tUSER\tIP\tMESSAGE")
	for _, r := range records {
		ts := "-"
		if r.Time != nil {
			ts = domain.FormatTime(*r.Time)
		}
		user := "-"
		if r.User != nil {
			user = fmt.Sprint(*r.User)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Id, ts, r.Level.Label(), dash(r.Group), user, dash(r.IP), r.Message)
	}
	if err := tw.Flush(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	_, err := fmt.Fprintf(w, "page %d/%d (%d records)\n", f.Page, service.TotalPages(total, f.PerPage), total)
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
