package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/podkit/resolve"
)

type format string

const (
	formatJSON  format = "json"
	formatYAML  format = "yaml"
	formatTable format = "table"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case formatJSON, formatYAML, formatTable:
		return f, nil
	case "":
		return formatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or table)", s)
	}
}

// view is a set of records with the columns shown in table output.
type view struct {
	columns []string
	rows    []resolve.Record
	// single renders one object instead of a list in json and yaml.
	single bool
}

func render(w io.Writer, f format, v view) error {
	var payload any = v.rows
	if v.single && len(v.rows) == 1 {
		payload = v.rows[0]
	}

	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader(v.columns)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		for _, row := range v.rows {
			table.Append(lo.Map(v.columns, func(col string, _ int) string {
				return cell(row[col])
			}))
		}
		table.Render()
		return nil
	}
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []int64:
		return strings.Join(lo.Map(x, func(n int64, _ int) string { return fmt.Sprint(n) }), ",")
	default:
		return fmt.Sprint(x)
	}
}
