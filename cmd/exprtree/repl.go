package main

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/exprtree/expr"
)

var replCmd = cli.Command{
	Name:    "repl",
	Summary: "evaluate expressions interactively",
	Handler: &ReplCmd{},
}

const maxHistory = 20

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

type ReplCmd struct{}

func (c *ReplCmd) Run(args []string) error {
	set := cli.NewFlagSet("repl")
	if err := set.Parse(args); err != nil {
		return err
	}
	_, err := tea.NewProgram(createRepl()).Run()
	return err
}

type repl struct {
	input   textinput.Model
	history []string
}

func createRepl() repl {
	in := textinput.New()
	in.Prompt = promptStyle.Render("expr> ")
	in.Placeholder = "(3 + 4) * 2"
	in.Focus()
	return repl{
		input: in,
	}
}

func (r repl) Init() tea.Cmd {
	return nil
}

func (r repl) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "ctrl+d", "esc":
			return r, tea.Quit
		case "enter":
			line := strings.TrimSpace(r.input.Value())
			r.input.Reset()
			switch line {
			case "":
				return r, nil
			case "quit", "exit":
				return r, tea.Quit
			}
			r.history = append(r.history, report(line))
			if n := len(r.history); n > maxHistory {
				r.history = r.history[n-maxHistory:]
			}
			return r, nil
		}
	}
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r repl) View() tea.View {
	var str strings.Builder
	for _, h := range r.history {
		str.WriteString(h)
		str.WriteString("\n")
	}
	str.WriteString(r.input.View())
	str.WriteString("\n")
	return tea.NewView(str.String())
}

func report(line string) string {
	tree, err := expr.BuildString(line)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("%s: %s", line, err))
	}
	res, err := tree.Eval()
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("%s: %s", line, err))
	}
	var str strings.Builder
	str.WriteString(line)
	str.WriteString(" = ")
	str.WriteString(valueStyle.Render(fmt.Sprint(res)))
	str.WriteString(reportOrders(tree))
	return str.String()
}

func reportOrders(tree *expr.Tree) string {
	var str strings.Builder
	for _, order := range []string{orderPrefix, orderInfix, orderPostfix} {
		str.WriteString("\n  ")
		str.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", order)))
		s, err := render(tree, order)
		if err != nil {
			str.WriteString(errorStyle.Render(err.Error()))
			continue
		}
		str.WriteString(s)
	}
	return str.String()
}
