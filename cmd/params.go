package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/render"
)

// newParamsCmd builds the per-endpoint variable reference:
// `openmeteo <endpoint> params [--hourly-params|--daily-params|--current-params]`.
// Output honors the global format flags, so scripts can feed the list
// into completion or validation themselves.
func newParamsCmd(a *app, spec *endpoint.Spec) *cobra.Command {
	var hourlyOnly, dailyOnly, currentOnly bool
	cmd := &cobra.Command{
		Use:   "params",
		Short: fmt.Sprintf("List the variables the %s accepts", spec.Title),
		Long: fmt.Sprintf(`List the variables the %s accepts per time category.

This is the endpoint's variable reference (the listing some clients hang
off "help"; it lives under "params" here because help is the built-in
usage command). Variables marked * are requested by default.`, spec.Title),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := selectCategories(hourlyOnly, dailyOnly, currentOnly)
			switch a.cfg.Format {
			case render.FormatPorcelain:
				return a.printParamsPorcelain(spec, cats)
			case render.FormatCompact, render.FormatRaw:
				return a.printParamsCompact(spec, cats)
			default:
				return a.printParamsHuman(spec, cats)
			}
		},
	}
	cmd.Flags().BoolVar(&hourlyOnly, "hourly-params", false, "only hourly variables")
	cmd.Flags().BoolVar(&dailyOnly, "daily-params", false, "only daily variables")
	cmd.Flags().BoolVar(&currentOnly, "current-params", false, "only current variables")
	return cmd
}

func selectCategories(hourly, daily, current bool) []models.Category {
	if !hourly && !daily && !current {
		return models.Categories
	}
	var cats []models.Category
	if current {
		cats = append(cats, models.Current)
	}
	if hourly {
		cats = append(cats, models.Hourly)
	}
	if daily {
		cats = append(cats, models.Daily)
	}
	return cats
}

func (a *app) printParamsHuman(spec *endpoint.Spec, cats []models.Category) error {
	opts := a.renderOptions()
	printedAny := false
	for _, cat := range cats {
		vars := spec.Variables(cat)
		if len(vars) == 0 {
			continue
		}
		printedAny = true
		defaults := make(map[string]bool)
		for _, d := range spec.Defaults(cat) {
			defaults[d] = true
		}

		heading := fmt.Sprintf("%s variables (--%s-params)", cat, cat)
		if opts.Color {
			heading = "\x1b[1m" + heading + "\x1b[0m"
		}
		fmt.Fprintln(a.out, heading)
		for _, v := range vars {
			marker := " "
			if defaults[v] {
				marker = "*"
			}
			fmt.Fprintf(a.out, "  %s %s %s\n", marker, render.VariableEmoji(v), v)
		}
		fmt.Fprintln(a.out)
	}
	if printedAny {
		fmt.Fprintln(a.out, "* requested by default")
	} else {
		fmt.Fprintf(a.out, "the %s takes no variable parameters\n", spec.Title)
	}
	return nil
}

func (a *app) printParamsPorcelain(spec *endpoint.Spec, cats []models.Category) error {
	for _, cat := range cats {
		for _, v := range spec.Variables(cat) {
			fmt.Fprintf(a.out, "%s.%s\n", cat, v)
		}
	}
	return nil
}

func (a *app) printParamsCompact(spec *endpoint.Spec, cats []models.Category) error {
	for _, cat := range cats {
		vars := spec.Variables(cat)
		if len(vars) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "%s\t%s\n", cat, strings.Join(vars, ","))
	}
	return nil
}
