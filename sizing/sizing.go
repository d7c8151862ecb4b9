// Package sizing implements the payload and throughput arithmetic quoted on
// the sizing slides: MB/min = total_msgs x msg_size / 1,000,000.
package sizing

const (
	FieldsPerMessage = 100
	CharsPerField    = 10
	RawPayloadBytes  = FieldsPerMessage * CharsPerField

	// Streams is the number of topics the scenario fans out to.
	Streams = 5
)

// Protocol is a wire format together with its framed message size.
type Protocol struct {
	Name         string
	MessageBytes int
}

// Protocols returns the compared wire formats, most efficient first.
func Protocols() []Protocol {
	return []Protocol{
		{Name: "Kafka+Avro", MessageBytes: 1185},
		{Name: "Pulsar+Avro", MessageBytes: 1250},
		{Name: "gRPC+Protobuf", MessageBytes: 1300},
		{Name: "REST+Protobuf", MessageBytes: 1900},
	}
}

// Rates returns the per-stream traffic levels in messages per minute.
func Rates() []int {
	return []int{100, 1_000, 10_000, 100_000}
}

// OverheadBytes is the framing added on top of the raw payload.
func (p Protocol) OverheadBytes() int {
	return p.MessageBytes - RawPayloadBytes
}

// OverheadPercent is OverheadBytes relative to the raw payload.
func (p Protocol) OverheadPercent() float64 {
	return float64(p.OverheadBytes()) * 100 / RawPayloadBytes
}

// MBPerMinute uses decimal megabytes.
func MBPerMinute(totalMsgsPerMin, msgBytes int) float64 {
	return float64(totalMsgsPerMin) * float64(msgBytes) / 1_000_000
}

// GBPerHour converts a MB/min figure to decimal GB per hour.
func GBPerHour(mbPerMin float64) float64 {
	return mbPerMin * 60 / 1_000
}

// Mbps converts a MB/min figure to megabits per second.
func Mbps(mbPerMin float64) float64 {
	return mbPerMin * 8 / 60
}

// Row is one line of the throughput table.
type Row struct {
	Protocol     string
	PerStream    int
	TotalPerMin  int
	MessageBytes int
	MBPerMin     float64
	GBPerHour    float64
	Mbps         float64
}

// Table computes every (rate, protocol) combination for the given stream
// count, ordered by rate and then by protocol.
func Table(streams int, rates []int, protocols []Protocol) []Row {
	rows := make([]Row, 0, len(rates)*len(protocols))
	for _, rate := range rates {
		total := rate * streams
		for _, p := range protocols {
			mb := MBPerMinute(total, p.MessageBytes)
			rows = append(rows, Row{
				Protocol:     p.Name,
				PerStream:    rate,
				TotalPerMin:  total,
				MessageBytes: p.MessageBytes,
				MBPerMin:     mb,
				GBPerHour:    GBPerHour(mb),
				Mbps:         Mbps(mb),
			})
		}
	}
	return rows
}

// DefaultTable is Table over the scenario's streams, rates and protocols.
func DefaultTable() []Row {
	return Table(Streams, Rates(), Protocols())
}
