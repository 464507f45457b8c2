package present

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/scenario"
)

// NoAdjustments is the summary shown when every knob is at zero.
const NoAdjustments = "No adjustments applied."

// SummarySeparator joins the parts of a scenario summary.
const SummarySeparator = " • "

// Summary describes every non-zero adjustment in a fixed order: revenue,
// expenses, new hire, vendors, payroll. It does not filter by st.Report, so
// knobs hidden on the current report still show up here.
func Summary(st scenario.State) string {
	var bits []string
	if st.RevAdjPct != 0 {
		bits = append(bits, "Revenue "+cli.FormatSignedPercent(st.RevAdjPct))
	}
	if st.ExpAdjPct != 0 {
		bits = append(bits, "Expenses "+cli.FormatSignedPercent(st.ExpAdjPct))
	}
	if st.HireCost != 0 {
		bits = append(bits, fmt.Sprintf("New hire %s/mo (starts in %d mo)",
			cli.FormatMoney(st.HireCost), st.HireStartOffset+1))
	}
	if st.VendorAdjPct != 0 {
		bits = append(bits, "Vendors "+cli.FormatSignedPercent(st.VendorAdjPct))
	}
	if p := st.PayrollAdjPct; !p.IsZero() {
		bits = append(bits, fmt.Sprintf("Payroll adj S:%s B:%s T:%s",
			cli.FormatPercent(p.Sal), cli.FormatPercent(p.Ben), cli.FormatPercent(p.Tax)))
	}
	if len(bits) == 0 {
		return NoAdjustments
	}
	return strings.Join(bits, SummarySeparator)
}
