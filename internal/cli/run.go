package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/rowpipe/rowpipe/internal/config"
	"github.com/rowpipe/rowpipe/pkg/etl"
	"github.com/rowpipe/rowpipe/pkg/logger"
	"github.com/rowpipe/rowpipe/pkg/models"
)

func newRunCmd() *cobra.Command {
	var tasksFile string

	runCmd := &cobra.Command{
		Use:   "run [task...]",
		Short: "Execute tasks from the task file",
		Long: `Execute the named tasks in order. With no arguments every task in
the file runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if tasksFile == "" {
				tasksFile = cfg.TasksFile
			}
			log := logger.New("rowpipe", cfg.LogLevel)

			tf, err := models.LoadTaskFile(tasksFile)
			if err != nil {
				return err
			}

			tasks := make([]*models.Task, 0, len(tf.Tasks))
			if len(args) == 0 {
				for i := range tf.Tasks {
					tasks = append(tasks, &tf.Tasks[i])
				}
			} else {
				for _, name := range args {
					task, err := tf.Find(name)
					if err != nil {
						return err
					}
					tasks = append(tasks, task)
				}
			}

			for _, task := range tasks {
				if err := runTask(cmd.Context(), task, log); err != nil {
					return err
				}
			}
			return nil
		},
	}

	runCmd.Flags().StringVarP(&tasksFile, "tasks", "f", "", "path to the task file (default $ROWPIPE_TASKS or tasks.json)")

	return runCmd
}

func runTask(ctx context.Context, task *models.Task, log hclog.Logger) error {
	extractor, err := buildExtractor(task.Source)
	if err != nil {
		return fmt.Errorf("task %q: %w", task.Name, err)
	}
	loader, err := buildLoader(task.Destination, log)
	if err != nil {
		return fmt.Errorf("task %q: %w", task.Name, err)
	}

	opts := []etl.Option{etl.WithLogger(log.Named(task.Name))}
	if task.Transform != nil {
		opts = append(opts, etl.WithTransformation(buildTransformation(task.Transform)))
	}

	log.Info("running task", "task", task.Name,
		"source", task.Source.Kind, "destination", task.Destination.Kind)

	pipeline := etl.New(extractor, loader, opts...)
	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("task %q: %w", task.Name, err)
	}

	log.Info("task done", "task", task.Name, "rows", pipeline.ProcessedData.Len())
	return nil
}
