package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/browser-schedule/internal/ui/styles"
)

// Interactive reports whether stdin and stderr are both terminals.
func Interactive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stderr.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// run drives model on stderr and returns the final model.
func run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(styles.Profile(os.Stderr)),
	)
	return p.Run()
}
