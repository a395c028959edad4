package commands

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/filmlens/internal/cli/output"
	"github.com/leapstack-labs/filmlens/internal/dataset"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the detected dataset schema and capabilities",
		Long: `Inspect the dataset header: which columns were found, which canonical
fields they resolved to, and which filters and charts that enables.

Columns the pipeline does not recognize are listed but unused. A
missing column disables the dependent chart or filter; it is never an
error.`,
		Example: `  # Inspect the default dataset
  filmlens schema

  # Inspect another file as JSON
  filmlens schema --dataset movies.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd)
		},
	}
}

// fieldUse maps each canonical field to what it enables, for display.
var fieldUse = map[dataset.Field]string{
	dataset.FieldTitle:   "top-rated chart, scatter labels",
	dataset.FieldGenre:   "genre filter",
	dataset.FieldYear:    "year filter, rating trend",
	dataset.FieldRating:  "top-rated, trend, scatter, censor charts",
	dataset.FieldRuntime: "runtime histogram",
	dataset.FieldGross:   "gross-vs-rating scatter",
	dataset.FieldCensor:  "censor-group chart",
}

type schemaRow struct {
	Field    string `json:"field"`
	Column   string `json:"column,omitempty"`
	Label    string `json:"label,omitempty"`
	Resolved bool   `json:"resolved"`
	Enables  string `json:"enables"`
}

func runSchema(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	tbl := cmdCtx.Session.Table()
	schema := cmdCtx.Session.Schema()
	titler := cases.Title(language.English)

	rows := make([]schemaRow, 0, len(dataset.Fields))
	for _, f := range dataset.Fields {
		row := schemaRow{Field: string(f), Enables: fieldUse[f]}
		if col, ok := schema.Col(f); ok {
			row.Resolved = true
			row.Column = tbl.Columns[col]
			row.Label = humanizeColumn(titler, tbl.Columns[col])
		}
		rows = append(rows, row)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Dataset string      `json:"dataset"`
			Rows    int         `json:"rows"`
			Columns []string    `json:"columns"`
			Fields  []schemaRow `json:"fields"`
		}{cmdCtx.Cfg.Dataset, tbl.Len(), tbl.Columns, rows})
	default:
		r.Header(1, "Dataset Schema")
		r.KeyValue("Dataset", cmdCtx.Cfg.Dataset)
		r.KeyValue("Rows", tbl.Len())
		r.KeyValue("Columns", strings.Join(tbl.Columns, ", "))
		r.Println()

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Field", "Column", "Label", "Enables"})
		for _, row := range rows {
			col := row.Column
			if !row.Resolved {
				col = "(absent)"
			}
			t.AppendRow(table.Row{row.Field, col, row.Label, row.Enables})
		}
		t.Render()
		return nil
	}
}

// humanizeColumn turns a normalized column name back into a display
// label: "runtime_(mins)" -> "Runtime (Mins)".
func humanizeColumn(titler cases.Caser, col string) string {
	return titler.String(strings.ReplaceAll(col, "_", " "))
}
