package ui

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mgutz/str"
)

// runPager pipes content through the configured pager, attached to the
// terminal. We block until the pager exits; the REPL owns the terminal
// again afterwards.
func (r *Repl) runPager(content string) error {
	pagerCommand := r.Config.UserConfig.OS.Pager
	if pagerCommand == "" {
		pagerCommand = "less"
	}

	argv := str.ToArgv(pagerCommand)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.Log.Info("paging output through " + pagerCommand)
	return cmd.Run()
}
