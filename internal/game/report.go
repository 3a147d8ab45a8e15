package game

import (
	"fmt"
	"strings"
)

// RunReport aggregates behaviour counts from one headless run's SimLog.
type RunReport struct {
	Ticks int

	Shots      int
	DryFires   int
	Reloads    int
	DryReloads int
	Casings    int

	StepsClimbed  int
	GroundedTicks int

	EndMagazine int
	EndReserve  int
}

// BuildRunReport tallies one run. Grounded ticks require a verbose log;
// without one the field stays zero.
func BuildRunReport(log *SimLog, ticks int, w Weapon) RunReport {
	r := RunReport{Ticks: ticks}
	r.Shots = log.Count("weapon", "fire")
	r.DryFires = log.Count("weapon", "fire-dry")
	r.Reloads = log.Count("weapon", "reload")
	r.DryReloads = log.Count("weapon", "reload-dry")
	r.Casings = log.Count("weapon", "eject")
	r.StepsClimbed = log.Count("step", "climb")
	r.GroundedTicks = log.Count("ground", "contact")
	if w != nil {
		r.EndMagazine = w.AmmoCurrent()
		r.EndReserve = w.AmmoReserve()
	}
	return r
}

// String renders the report as an aligned block.
func (r RunReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ticks            %6d\n", r.Ticks)
	fmt.Fprintf(&b, "shots            %6d\n", r.Shots)
	fmt.Fprintf(&b, "dry fires        %6d\n", r.DryFires)
	fmt.Fprintf(&b, "reloads          %6d\n", r.Reloads)
	fmt.Fprintf(&b, "dry reloads      %6d\n", r.DryReloads)
	fmt.Fprintf(&b, "casings          %6d\n", r.Casings)
	fmt.Fprintf(&b, "steps climbed    %6d\n", r.StepsClimbed)
	fmt.Fprintf(&b, "grounded ticks   %6d\n", r.GroundedTicks)
	fmt.Fprintf(&b, "end magazine     %6d\n", r.EndMagazine)
	fmt.Fprintf(&b, "end reserve      %6d\n", r.EndReserve)
	return b.String()
}

// AggregateReport averages a set of run reports for the multi-seed
// headless tool.
type AggregateReport struct {
	Runs []RunReport
}

func (a AggregateReport) avg(pick func(RunReport) int) float64 {
	if len(a.Runs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range a.Runs {
		sum += pick(r)
	}
	return float64(sum) / float64(len(a.Runs))
}

// String renders per-metric averages over all runs.
func (a AggregateReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "runs %d\n", len(a.Runs))
	fmt.Fprintf(&b, "avg shots          %8.1f\n", a.avg(func(r RunReport) int { return r.Shots }))
	fmt.Fprintf(&b, "avg dry fires      %8.1f\n", a.avg(func(r RunReport) int { return r.DryFires }))
	fmt.Fprintf(&b, "avg reloads        %8.1f\n", a.avg(func(r RunReport) int { return r.Reloads }))
	fmt.Fprintf(&b, "avg casings        %8.1f\n", a.avg(func(r RunReport) int { return r.Casings }))
	fmt.Fprintf(&b, "avg steps climbed  %8.1f\n", a.avg(func(r RunReport) int { return r.StepsClimbed }))
	fmt.Fprintf(&b, "avg grounded ticks %8.1f\n", a.avg(func(r RunReport) int { return r.GroundedTicks }))
	return b.String()
}
