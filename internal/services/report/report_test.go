package report

import (
	"bytes"
	"strings"
	"testing"

	"crimemap/internal/platform/testkit"
)

const header = "STATE/UT,DISTRICT,YEAR,MURDER,RAPE,KIDNAPPING & ABDUCTION,DACOITY,ROBBERY,BURGLARY,THEFT,CHEATING,COUNTERFIETING,TOTAL IPC CRIMES\n"

func sources(t *testing.T) []string {
	t.Helper()
	hist := testkit.WriteFile(t, "hist.csv", header+
		"Bihar,Aurangabad,2001,20,0,0,0,0,0,300,0,0,1200\n"+
		"Maharashtra,Aurangabad,2001,10,0,0,0,0,0,200,0,0,800\n")
	recent := testkit.WriteFile(t, "recent.csv", header+
		"Bihar,Aurangabad,2013,30,0,0,0,0,0,400,0,0,1500\n")
	bounds := testkit.WriteFile(t, "bounds.geojson", `{"type":"FeatureCollection","features":[`+
		`{"type":"Feature","properties":{"NAME_1":"Bihar","NAME_2":"Aurangabad"},`+
		`"geometry":{"type":"Polygon","coordinates":[[[84,24],[85,24],[85,25],[84,25],[84,24]]]}}]}`)
	return []string{"--historical", hist, "--recent", recent, "--boundaries", bounds}
}

func run(t *testing.T, args ...string) (ExitCode, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSummary(t *testing.T) {
	code, out, errOut := run(t, append([]string{"summary"}, sources(t)...)...)
	if code != exitCodeSuccess {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	testkit.MustContain(t, out, "All, 2001-2013")
	testkit.MustContain(t, out, "3,500")
	testkit.MustContain(t, out, "Heinous Crimes")
	testkit.MustContain(t, out, "COUNTERFIETING")
}

func TestTopAndTrend(t *testing.T) {
	src := sources(t)
	code, out, _ := run(t, append([]string{"top", "--state", "Bihar", "-n", "1"}, src...)...)
	if code != exitCodeSuccess {
		t.Fatalf("top exit %d", code)
	}
	testkit.MustContain(t, out, "AURANGABAD")
	testkit.MustContain(t, out, "2,700")
	testkit.MustContain(t, out, "Top states over all years")

	code, out, _ = run(t, append([]string{"trend", "--state", "Bihar"}, src...)...)
	if code != exitCodeSuccess {
		t.Fatalf("trend exit %d", code)
	}
	testkit.MustContain(t, out, "+25.00%")

	_, out, _ = run(t, append([]string{"trend", "--state", "Maharashtra"}, src...)...)
	testkit.MustContain(t, out, "Insufficient data to calculate growth rates.")
}

func TestOptionsAndCollisions(t *testing.T) {
	src := sources(t)
	_, out, _ := run(t, append([]string{"options"}, src...)...)
	testkit.MustContain(t, out, "Years: 2001-2013")
	testkit.MustContain(t, out, "All, Bihar, Maharashtra")

	_, out, _ = run(t, append([]string{"collisions"}, src...)...)
	testkit.MustContain(t, out, "Bihar, Maharashtra")
}

func TestLoadFailureExitsNonZero(t *testing.T) {
	code, _, errOut := run(t, "summary", "--historical", "/nonexistent/hist.csv")
	if code != exitCodeError {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(errOut, "data source unavailable") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestReversedYearsFail(t *testing.T) {
	code, _, errOut := run(t, append([]string{"summary", "--from", "2013", "--to", "2001"}, sources(t)...)...)
	if code != exitCodeError || !strings.Contains(errOut, "year_from") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
}
