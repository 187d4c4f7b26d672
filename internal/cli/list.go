package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rowpipe/rowpipe/internal/config"
	"github.com/rowpipe/rowpipe/pkg/models"
)

func newListCmd() *cobra.Command {
	var tasksFile string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks defined in the task file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if tasksFile == "" {
				tasksFile = cfg.TasksFile
			}

			tf, err := models.LoadTaskFile(tasksFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tDESTINATION")
			for _, task := range tf.Tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", task.Name, task.Source.Kind, task.Destination.Kind)
			}
			return w.Flush()
		},
	}

	listCmd.Flags().StringVarP(&tasksFile, "tasks", "f", "", "path to the task file (default $ROWPIPE_TASKS or tasks.json)")

	return listCmd
}
