package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/view"
)

const exploreHelp = "commands: hover <district>, leave, select <district>, reset, quit"

// textRenderer prints every visible effect of an interaction as one line.
type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) SetStyle(region string, s models.Style) {
	fmt.Fprintf(r.w, "style %s: fill=%s opacity=%.2f border=%s weight=%.1f\n",
		region, s.FillColor, s.FillOpacity, s.Color, s.Weight)
}

func (r *textRenderer) ShowTooltip(region string, t models.Tooltip) {
	fmt.Fprintf(r.w, "tooltip %s: %s\n", t.Name, strings.Join(t.Lines, " | "))
}

func (r *textRenderer) HideTooltip() {
	fmt.Fprintln(r.w, "tooltip hidden")
}

func (r *textRenderer) ShowPanel(p models.Panel) {
	printPanel(r.w, p)
}

func (r *textRenderer) ClearPanel() {
	fmt.Fprintln(r.w, "panel cleared")
}

func printPanel(w io.Writer, p models.Panel) {
	fmt.Fprintf(w, "== %s [%s] ==\n", p.Name, p.BadgeLabel)
	if !p.HasData {
		fmt.Fprintln(w, p.Message)
		return
	}
	fmt.Fprintln(w, p.Total)
	if p.Share != "" {
		fmt.Fprintf(w, "Podíl převládajícího slova: %s\n", p.Share)
	}
	for _, item := range p.Items {
		fmt.Fprintf(w, "  %-12s %8s %8s\n", item.Label, item.Count, item.Percentage)
	}
}

// explore feeds one command per input line to ui until EOF or quit.
func explore(in io.Reader, out io.Writer, ui view.Interaction) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "hover":
			ui.OnHover(arg)
		case "leave":
			ui.OnHover("")
		case "select":
			if arg == "" {
				fmt.Fprintln(out, "select needs a district")
				continue
			}
			ui.OnSelect(arg)
		case "reset":
			ui.OnReset()
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, exploreHelp)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}
