package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/extract"
)

var config struct {
	ExportDir   string `long:"export-dir" env:"VDC_EXPORT_DIR" default:"export_extracted_gold/apple_health_export" description:"health export directory"`
	SummaryPath string `long:"summary" env:"VDC_SUMMARY_PATH" default:"vdc_lifetime_summary.json" description:"summary output path"`
	ReportPath  string `long:"report" env:"VDC_REPORT_PATH" default:"vdc_velocity_report.csv" description:"per-route csv output path"`
	TextPath    string `long:"text-summary" env:"VDC_TEXT_SUMMARY_PATH" default:"vdc_summary.txt" description:"human-readable summary output path"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	exportPath := filepath.Join(config.ExportDir, "export.xml")
	routesDir := filepath.Join(config.ExportDir, "workout-routes")

	summary, reports, err := extract.New(logger).Run(ctx, exportPath, routesDir)
	if err != nil {
		logger.Fatal("extraction failed", zap.Error(err))
	}

	if err := extract.WriteSummary(config.SummaryPath, summary); err != nil {
		logger.Fatal("write summary", zap.Error(err))
	}
	if err := extract.WriteVelocityReport(config.ReportPath, reports); err != nil {
		logger.Fatal("write velocity report", zap.Error(err))
	}
	if err := extract.WriteTextSummary(config.TextPath, summary); err != nil {
		logger.Fatal("write text summary", zap.Error(err))
	}

	rule := strings.Repeat("=", 44)
	fmt.Println("\nEXTRACTION COMPLETE")
	fmt.Println(rule)
	fmt.Printf("Lifetime VDC      : %s\n", summary.LifetimeVDC.StringFixed(10))
	fmt.Printf("Total kcal        : %.2f (%d records)\n", summary.TotalKcal, summary.EnergyRecords)
	fmt.Printf("Total distance    : %.2f km\n", summary.TotalDistanceKm)
	fmt.Printf("Max speed         : %.2f m/s (%.1f km/h)\n", summary.MaxSpeedMPS, summary.MaxSpeedKMH)
	fmt.Printf("Velocity anomalies: %d\n", summary.VelocityAnomalies)
	fmt.Printf("Routes processed  : %d\n", summary.RoutesProcessed)
	fmt.Println(rule)
	fmt.Printf("Wrote %s, %s, and %s\n", config.SummaryPath, config.ReportPath, config.TextPath)
}
