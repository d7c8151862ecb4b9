package sizing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"integrationdeck/deck"
)

func near(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestOverheadPercent(t *testing.T) {
	want := map[string]float64{
		"Kafka+Avro":    18.5,
		"Pulsar+Avro":   25.0,
		"gRPC+Protobuf": 30.0,
		"REST+Protobuf": 90.0,
	}
	for _, p := range Protocols() {
		if got := p.OverheadPercent(); !near(got, want[p.Name], 1e-9) {
			t.Errorf("%s overhead = %.3f%%, want %.1f%%", p.Name, got, want[p.Name])
		}
	}
}

func TestRawPayload(t *testing.T) {
	if RawPayloadBytes != 1000 {
		t.Fatalf("raw payload = %d, want 1000", RawPayloadBytes)
	}
}

func TestTable_Shape(t *testing.T) {
	rows := DefaultTable()
	if len(rows) != len(Rates())*len(Protocols()) {
		t.Fatalf("got %d rows", len(rows))
	}
	first := rows[0]
	if first.Protocol != "Kafka+Avro" || first.PerStream != 100 || first.TotalPerMin != 500 {
		t.Fatalf("unexpected first row: %+v", first)
	}
}

var mbPerMinPattern = regexp.MustCompile(`^([0-9.,K]+)/min/stream -> ([0-9,]+) total: ([0-9.]+) MB/min \(Kafka\+Avro\)$`)

// The throughput slide quotes rounded figures; the formula must reproduce them.
func TestThroughputSlideMatchesFormula(t *testing.T) {
	slide := deck.Build()[5].(deck.ContentSlide)
	kafka := Protocols()[0]

	for _, bullet := range slide.BulletPoints {
		m := mbPerMinPattern.FindStringSubmatch(bullet)
		if m == nil {
			t.Fatalf("bullet %q does not match the expected layout", bullet)
		}
		total, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
		if err != nil {
			t.Fatalf("total in %q: %v", bullet, err)
		}
		quoted, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			t.Fatalf("MB/min in %q: %v", bullet, err)
		}
		if got := MBPerMinute(total, kafka.MessageBytes); !near(got, quoted, 0.0051) {
			t.Errorf("%q: formula gives %.4f MB/min", bullet, got)
		}
	}
}

var bandwidthPattern = regexp.MustCompile(`^(\S+): ([0-9.]+) MB/min \| ([0-9.]+) GB/hr \| ~([0-9]+) Mbps$`)

func TestPeakBandwidthSlideMatchesFormula(t *testing.T) {
	slide := deck.Build()[6].(deck.ContentSlide)
	peakTotal := Rates()[3] * Streams

	byName := map[string]Protocol{}
	for _, p := range Protocols() {
		byName[p.Name] = p
	}

	checked := 0
	for _, bullet := range slide.BulletPoints {
		m := bandwidthPattern.FindStringSubmatch(bullet)
		if m == nil {
			continue
		}
		p, ok := byName[m[1]]
		if !ok {
			t.Fatalf("unknown protocol %q in %q", m[1], bullet)
		}
		mb := MBPerMinute(peakTotal, p.MessageBytes)
		quotedMB, _ := strconv.ParseFloat(m[2], 64)
		quotedGB, _ := strconv.ParseFloat(m[3], 64)
		quotedMbps, _ := strconv.Atoi(m[4])

		if !near(mb, quotedMB, 1e-9) {
			t.Errorf("%s: MB/min %.2f, slide says %s", p.Name, mb, m[2])
		}
		if !near(GBPerHour(mb), quotedGB, 0.051) {
			t.Errorf("%s: GB/hr %.3f, slide says %s", p.Name, GBPerHour(mb), m[3])
		}
		if int(math.Round(Mbps(mb))) != quotedMbps {
			t.Errorf("%s: Mbps %.2f, slide says ~%d", p.Name, Mbps(mb), quotedMbps)
		}
		checked++
	}
	if checked != len(Protocols()) {
		t.Fatalf("checked %d bandwidth bullets, want %d", checked, len(Protocols()))
	}
}
