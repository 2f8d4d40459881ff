package hyrox

import (
	"hyroxstats-backend/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hyroxstats.lib.scrapers.hyrox")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables HTTP exchange dumps for clients
// created after the call.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
