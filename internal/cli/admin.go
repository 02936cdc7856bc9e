package cli

import (
	"context"
	"fmt"
	"time"
)

// generateReports writes both report files. A write failure is shown
// and logged but the session continues.
func (c *CLI) generateReports(ctx context.Context) {
	if err := c.services.Generate(ctx, time.Now()); err != nil {
		c.log.Errorw("report generation failed", "err", err)
		fmt.Fprintln(c.out, "Error: it wasn't possible to write the reports:", err)
		return
	}
	fmt.Fprintln(c.out, "\nReports successfully generated!")
}

// displayStats renders the same figures the reports use, to the console.
func (c *CLI) displayStats() {
	ov, stats, err := c.services.Compute(time.Now())
	if err != nil {
		c.log.Errorw("stats computation failed", "err", err)
		fmt.Fprintln(c.out, "Could not compute statistics:", err)
		return
	}

	fmt.Fprintln(c.out)
	c.separator()
	if err := c.services.WriteOverview(c.out, ov); err != nil {
		c.log.Errorw("stats display failed", "err", err)
		return
	}
	fmt.Fprintln(c.out)
	c.separator()
	if err := c.services.WriteUserStats(c.out, ov.Total, stats); err != nil {
		c.log.Errorw("stats display failed", "err", err)
	}
}
