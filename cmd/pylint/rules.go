package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/romarionagy/pylint/internal/checkers"
)

var rulesFormat string

func init() {
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "pretty", "output format (pretty|json)")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules and their defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(rulesFormat) {
		case "pretty":
			renderRulesPretty(cmd.OutOrStdout())
			return nil
		case "json":
			return renderRulesJSON(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", rulesFormat)
		}
	},
}

type rulePayload struct {
	Code        string   `json:"code"`
	Symbol      string   `json:"symbol"`
	Default     bool     `json:"default_enabled"`
	Description string   `json:"description"`
	OldNames    []string `json:"old_names,omitempty"`
}

func renderRulesPretty(out io.Writer) {
	codeStyle := color.New(color.Bold)
	onStyle := color.New(color.FgGreen)
	offStyle := color.New(color.FgYellow)

	for i, m := range checkers.Messages() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		state := onStyle.Sprint("enabled")
		if !m.DefaultEnabled {
			state = offStyle.Sprint("disabled")
		}
		fmt.Fprintf(out, "%s %s (%s by default)\n", codeStyle.Sprint(m.Code.ID()), m.Symbol, state)
		fmt.Fprintf(out, "  %s\n", m.Description)
		for _, old := range m.OldNames {
			fmt.Fprintf(out, "  previously: %s %s\n", old.Code, old.Symbol)
		}
	}
}

func renderRulesJSON(out io.Writer) error {
	defs := checkers.Messages()
	payload := make([]rulePayload, 0, len(defs))
	for _, m := range defs {
		p := rulePayload{
			Code:        m.Code.ID(),
			Symbol:      m.Symbol,
			Default:     m.DefaultEnabled,
			Description: m.Description,
		}
		for _, old := range m.OldNames {
			p.OldNames = append(p.OldNames, old.Code+" "+old.Symbol)
		}
		payload = append(payload, p)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
