package ui

import (
	"fmt"
	"strings"

	"github.com/Bowery/prompt"
	"github.com/fatih/color"

	"github.com/KnightChaser/llce/pkg/config"
	"github.com/KnightChaser/llce/pkg/i18n"
	"github.com/KnightChaser/llce/pkg/session"
	"github.com/KnightChaser/llce/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Repl is the interactive command loop: it reads a line, tokenizes it, and
// dispatches to the command handlers. All state lives in the Session; the
// Repl only renders.
type Repl struct {
	Log     *logrus.Entry
	Tr      *i18n.TranslationSet
	Config  *config.AppConfig
	Session *session.Session

	// readLine reads one input line; NewRepl sets it to a Bowery/prompt reader
	readLine func(prefix string) (string, error)
}

// NewRepl creates a Repl wired to the given session
func NewRepl(log *logrus.Entry, tr *i18n.TranslationSet, appConfig *config.AppConfig, sess *session.Session) *Repl {
	return &Repl{
		Log:     log,
		Tr:      tr,
		Config:  appConfig,
		Session: sess,
		readLine: func(prefix string) (string, error) {
			return prompt.Basic(prefix, false)
		},
	}
}

// Run drives the loop until end-of-input or an explicit 'exit'. The session
// is detached on the way out whatever the exit path was.
func (r *Repl) Run() error {
	defer r.Session.Detach()

	r.success(r.Tr.Welcome)
	r.printHelp()

	for {
		line, err := r.readLine(r.promptString())
		if err != nil {
			// ctrl-d or a closed stdin: leave quietly
			r.Log.Debug(err)
			break
		}
		if quit := r.dispatch(line); quit {
			break
		}
	}

	r.success(r.Tr.Goodbye)
	return nil
}

// dispatch runs one command line and reports whether the loop should end
func (r *Repl) dispatch(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	command := args[0]
	args = args[1:]

	switch command {
	case "help":
		r.printHelp()
	case "attach":
		r.handleAttach(args)
	case "fullscan":
		r.handleFullscan()
	case "detect":
		r.handleDetect(args)
	case "search":
		r.handleSearch(args)
	case "poke":
		r.handlePoke(args)
	case "exit":
		return true
	default:
		r.error(r.Tr.UnknownCommand, command)
		r.printHelp()
	}
	return false
}

func (r *Repl) promptString() string {
	if r.Session.Attached() {
		return fmt.Sprintf("llce (%s:%d)> ", r.Session.ProcessName(), r.Session.PID())
	}
	return "llce> "
}

func (r *Repl) printHelp() {
	r.warning(r.Tr.AvailableCommands)

	rows := [][]string{
		{"attach <pid>", r.Tr.HelpAttach},
		{"fullscan", r.Tr.HelpFullscan},
		{"detect [page]", r.Tr.HelpDetect},
		{"search <type> <value>", r.Tr.HelpSearch},
		{"poke <addr> <type> <value>", r.Tr.HelpPoke},
		{"help", r.Tr.HelpHelp},
		{"exit", r.Tr.HelpExit},
	}
	for i := range rows {
		rows[i][0] = "  " + utils.ColoredString(rows[i][0], r.successAttribute())
		rows[i][1] = ": " + rows[i][1]
	}

	table, err := utils.RenderTable(rows)
	if err != nil {
		r.Log.Error(err)
		return
	}
	fmt.Println(table)
	r.warning("  " + r.Tr.TypesLine)
}

func (r *Repl) plain(format string, a ...interface{}) {
	fmt.Println(fmt.Sprintf(format, a...))
}

func (r *Repl) success(format string, a ...interface{}) {
	r.styled(r.Config.UserConfig.Gui.Theme.SuccessColor, format, a...)
}

func (r *Repl) warning(format string, a ...interface{}) {
	r.styled(r.Config.UserConfig.Gui.Theme.WarningColor, format, a...)
}

func (r *Repl) error(format string, a ...interface{}) {
	r.styled(r.Config.UserConfig.Gui.Theme.ErrorColor, format, a...)
}

func (r *Repl) styled(colorName string, format string, a ...interface{}) {
	str := fmt.Sprintf(format, a...)
	fmt.Println(utils.ColoredString(str, utils.GetColorAttribute(colorName)))
}

func (r *Repl) successAttribute() color.Attribute {
	return utils.GetColorAttribute(r.Config.UserConfig.Gui.Theme.SuccessColor)
}
