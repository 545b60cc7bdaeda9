package cli

import (
	"context"
	"fmt"
	"io"

	"catalogrenamer/internal/domain/entities"
	"catalogrenamer/internal/ports/input"
	"catalogrenamer/internal/ports/output"
)

// Command runs the rename use case from the command line. It is silent
// unless verbose output was requested.
type Command struct {
	renameUseCase input.RenameUseCase
	translator    output.T
	out           io.Writer
	dir           string
	lang          string
	verbose       bool
}

// NewCommand creates a Command. dir is only used to label the summary.
func NewCommand(
	renameUseCase input.RenameUseCase,
	translator output.T,
	out io.Writer,
	dir, lang string,
	verbose bool,
) *Command {
	return &Command{
		renameUseCase: renameUseCase,
		translator:    translator,
		out:           out,
		dir:           dir,
		lang:          lang,
		verbose:       verbose,
	}
}

// Run executes one pass. In verbose mode the outcomes handled so far are
// printed even when the run fails.
func (c *Command) Run(ctx context.Context) error {
	report, err := c.renameUseCase.Run(ctx)
	if c.verbose && report != nil {
		c.print(report)
	}
	return err
}

func (c *Command) print(report *entities.Report) {
	for _, o := range report.Outcomes {
		fmt.Fprintln(c.out, c.translator.T(c.lang, "report."+string(o.Status), map[string]any{
			"File":   o.File,
			"Target": o.Target,
		}))
	}
	fmt.Fprintln(c.out, c.translator.T(c.lang, "report.summary", map[string]any{
		"Dir":     c.dir,
		"Renamed": report.Renamed(),
		"Skipped": report.Skipped(),
	}))
}
