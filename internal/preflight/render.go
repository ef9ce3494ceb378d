package preflight

import (
	"fmt"

	"github.com/raphi011/relprep/internal/output"
	"github.com/raphi011/relprep/internal/ui/styles"
)

// Render prints check results followed by a one-line summary.
func Render(p *output.Printer, results []Result) {
	for _, r := range results {
		detail := r.Detail
		if r.Status == StatusOK {
			detail = styles.MutedStyle.Render(detail)
		}
		p.Printf("  %s %s %s\n", symbol(r.Status), styles.Bold.Render(fmt.Sprintf("%-13s", r.Name)), detail)
	}

	var ok, warn, fail int
	for _, r := range results {
		switch r.Status {
		case StatusFail:
			fail++
		case StatusWarn:
			warn++
		default:
			ok++
		}
	}

	p.Println()
	summary := fmt.Sprintf("%d passed", ok)
	if warn > 0 {
		summary += fmt.Sprintf(", %d warnings", warn)
	}
	if fail > 0 {
		summary += fmt.Sprintf(", %d failed", fail)
		p.Println(styles.ErrorStyle.Render("✗ " + summary))
		return
	}
	if warn > 0 {
		p.Println(styles.WarningStyle.Render("⚠ " + summary))
		return
	}
	p.Println(styles.SuccessStyle.Render("✓ " + summary))
}

func symbol(s Status) string {
	switch s {
	case StatusFail:
		return styles.ErrorStyle.Render("✗")
	case StatusWarn:
		return styles.WarningStyle.Render("⚠")
	default:
		return styles.SuccessStyle.Render("✓")
	}
}
