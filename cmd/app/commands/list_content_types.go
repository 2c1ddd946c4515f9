package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
)

// ContentTypeLister lists registered content types.
type ContentTypeLister interface {
	List() []contentTypeDomain.ContentType
}

type contentTypeOutput struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	RESTBase     string   `json:"rest_base"`
	ShowInREST   bool     `json:"show_in_rest"`
	ShowUI       bool     `json:"show_ui"`
	Supports     []string `json:"supports"`
	Capabilities []string `json:"granted_capabilities"`
}

// RunListContentTypes prints the registered content types with their resolved arguments.
func RunListContentTypes(lister ContentTypeLister, io IOTuple, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	types := lister.List()
	outputs := make([]contentTypeOutput, 0, len(types))
	for _, ct := range types {
		outputs = append(outputs, contentTypeOutput{
			Name:         ct.Name,
			Label:        ct.Label,
			RESTBase:     ct.RESTBase,
			ShowInREST:   ct.ShowInREST,
			ShowUI:       ct.ShowUI,
			Supports:     nonNil(ct.Supports),
			Capabilities: ct.GrantSet(),
		})
	}

	if format == "json" {
		return writeJSON(io.Writer, outputs)
	}

	w := tabwriter.NewWriter(io.Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tLABEL\tREST BASE\tSUPPORTS\tGRANTED CAPABILITIES")
	for _, o := range outputs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			o.Name,
			o.Label,
			o.RESTBase,
			strings.Join(o.Supports, ","),
			strings.Join(o.Capabilities, ","),
		)
	}
	return w.Flush()
}
