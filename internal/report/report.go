package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/weekling/internal/config"
	"gopkg.in/yaml.v3"
)

// Field is a single named value of a record
type Field struct {
	Key   string
	Value interface{}
}

// Record is an ordered set of fields. Key order is kept in every format
type Record []Field

// Get returns the value stored under key
func (r Record) Get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the record as an object with keys in record order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in record order
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			value)
	}
	return node, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Faint(true)
)

// Printer renders records in one of the configured output formats
type Printer struct {
	out    io.Writer
	format string
}

// NewPrinter creates a printer for "text", "json" or "yaml"
func NewPrinter(out io.Writer, format string) (*Printer, error) {
	format = strings.ToLower(format)
	switch format {
	case "":
		format = config.FormatText
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Printer{out: out, format: format}, nil
}

// Format returns the printer's output format
func (p *Printer) Format() string {
	return p.format
}

// PrintRecord renders a single record
func (p *Printer) PrintRecord(record Record) error {
	switch p.format {
	case config.FormatJSON:
		return p.writeJSON(record)
	case config.FormatYAML:
		return p.writeYAML(record)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, f := range record {
		fmt.Fprintf(w, "%s\t%s\n", keyStyle.Render(f.Key+":"), formatValue(f.Value))
	}
	return w.Flush()
}

// PrintTable renders a list of records that share the same keys
func (p *Printer) PrintTable(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	switch p.format {
	case config.FormatJSON:
		return p.writeJSON(records)
	case config.FormatYAML:
		return p.writeYAML(records)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(p.out, "(no rows)")
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	headers := make([]string, len(records[0]))
	for i, f := range records[0] {
		headers[i] = headerStyle.Render(strings.ToUpper(f.Key))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, record := range records {
		cells := make([]string, len(record))
		for i, f := range record {
			cells[i] = formatValue(f.Value)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func (p *Printer) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = p.out.Write(data)
	return err
}

func (p *Printer) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func formatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "-"
	case string:
		if value == "" {
			return "-"
		}
		return value
	case []string:
		return strings.Join(value, ", ")
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
