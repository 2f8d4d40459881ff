package main

import (
	"context"

	"hyroxstats-backend/cmd/hyrox-cli/commands"
	"hyroxstats-backend/lib/serviceutil"
	"hyroxstats-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "hyrox-cli")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
