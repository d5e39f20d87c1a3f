package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"crimemap/internal/services/api/dashboard/domain"
)

var printer = message.NewPrinter(language.English)

// num formats a count with thousands separators
func num(n int64) string { return printer.Sprintf("%d", n) }

func share(part, whole int64) string {
	if whole == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	t.SetAutoFormatHeaders(false)
	t.SetBorder(true)
	t.SetHeader(header)
	return t
}

func heading(e env, s domain.Selection) {
	fmt.Fprintf(e.out, "%s, %d-%d\n", s.State, s.YearFrom, s.YearTo)
}

// notice prints n and reports whether the section was replaced by it
func notice(e env, n *domain.Notice) bool {
	if n == nil {
		return false
	}
	fmt.Fprintf(e.out, "[%s] %s\n", n.Level, n.Message)
	return true
}
