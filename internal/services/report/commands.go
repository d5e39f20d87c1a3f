package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"crimemap/internal/core/crimes"
	"crimemap/internal/services/api/dashboard/domain"
)

func summary(ctx context.Context, e env) error {
	res, err := e.svc.View(ctx, e.sel)
	if err != nil {
		return err
	}
	v := res.Data
	heading(e, v.Selection)

	if !notice(e, v.Summary.Notice) {
		s := v.Summary.Data
		t := newTable(e.out, "Metric", "Value")
		t.Append([]string{"Total incidents", num(s.Total)})
		t.Append([]string{crimes.LabelSevere, num(s.Severe)})
		t.Append([]string{crimes.LabelMinor, num(s.Minor)})
		t.Append([]string{"Districts", num(int64(s.Districts))})
		t.Render()
	}

	t := newTable(e.out, "Category", "Incidents", "Share")
	var all int64
	for _, c := range v.Breakdown.Data {
		all += c.Count
	}
	for _, c := range v.Breakdown.Data {
		t.Append([]string{c.Category, num(c.Count), share(c.Count, all)})
	}
	t.Render()
	return nil
}

func top(ctx context.Context, e env) error {
	res, err := e.svc.View(ctx, e.sel)
	if err != nil {
		return err
	}
	v := res.Data
	heading(e, v.Selection)

	if !notice(e, v.TopDistricts.Notice) {
		t := newTable(e.out, "#", "District", "State", crimes.TotalCrimes)
		for i, d := range v.TopDistricts.Data {
			t.Append([]string{strconv.Itoa(i + 1), d.District, d.State, num(d.Total)})
		}
		t.Render()
	}
	if !notice(e, v.TopStates.Notice) {
		fmt.Fprintln(e.out, "Top states over all years")
		t := newTable(e.out, "#", "State", "Incidents")
		for i, s := range v.TopStates.Data {
			t.Append([]string{strconv.Itoa(i + 1), s.State, num(s.Total)})
		}
		t.Render()
	}
	return nil
}

func trend(ctx context.Context, e env) error {
	res, err := e.svc.View(ctx, e.sel)
	if err != nil {
		return err
	}
	v := res.Data
	heading(e, v.Selection)
	if notice(e, v.Trend.Notice) {
		return nil
	}

	rates := map[int]string{}
	for _, g := range v.Growth.Data {
		rates[g.Year] = "n/a"
		if g.Rate != nil {
			rates[g.Year] = fmt.Sprintf("%+.2f%%", *g.Rate)
		}
	}
	t := newTable(e.out, "Year", "Total", crimes.LabelSevere, crimes.LabelMinor, "Growth")
	for _, y := range v.Trend.Data {
		t.Append([]string{strconv.Itoa(y.Year), num(y.Total), num(y.Severe), num(y.Minor), rates[y.Year]})
	}
	t.Render()
	notice(e, v.Growth.Notice)
	return nil
}

func options(ctx context.Context, e env) error {
	res, err := e.svc.Options(ctx)
	if err != nil {
		return err
	}
	o := res.Data
	fmt.Fprintf(e.out, "Years: %d-%d\n", o.MinYear, o.MaxYear)
	fmt.Fprintf(e.out, "States (%d): %s\n", len(o.States)-1, strings.Join(o.States, ", "))
	return nil
}

func collisions(ctx context.Context, e env) error {
	res, err := e.svc.Map(ctx, domain.SelectionInput{})
	if err != nil {
		return err
	}
	m := res.Data.Data
	fmt.Fprintf(e.out, "Boundaries matched: %s, unmatched: %s\n", num(int64(m.Matched)), num(int64(m.Unmatched)))
	if len(m.Collisions) == 0 {
		fmt.Fprintln(e.out, "No cross-state collisions")
		return nil
	}
	t := newTable(e.out, "District key", "States")
	for _, c := range m.Collisions {
		t.Append([]string{c.Key, strings.Join(c.States, ", ")})
	}
	t.Render()
	return nil
}
