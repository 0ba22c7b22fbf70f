package extract

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
	"github.com/vdcprotocol/vdc-backend/pkg/atomicfile"
	"github.com/vdcprotocol/vdc-backend/pkg/workerpool"
)

const defaultWorkerCount = 8

// Summary aggregates a whole export: lifetime energy, distance, and the
// anomaly count across every route.
type Summary struct {
	TotalKcal           float64         `json:"total_kcal"`
	TotalJoules         float64         `json:"total_joules"`
	LifetimeVDC         decimal.Decimal `json:"lifetime_vdc"`
	TotalDistanceMeters float64         `json:"total_distance_meters"`
	TotalDistanceKm     float64         `json:"total_distance_km"`
	MaxSpeedMPS         float64         `json:"max_speed_mps"`
	MaxSpeedKMH         float64         `json:"max_speed_kmh"`
	VelocityAnomalies   int             `json:"velocity_anomalies_detected"`
	RoutesProcessed     int             `json:"gpx_workouts_processed"`
	EnergyRecords       int             `json:"energy_records"`
}

// Extractor scans an activity-log export directory tree.
type Extractor struct {
	logger      *zap.Logger
	workerCount int
}

// New builds an Extractor.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{
		logger:      logger.Named("extract"),
		workerCount: defaultWorkerCount,
	}
}

// Run processes the export document and every GPX route under routesDir,
// returning the aggregate summary plus per-route reports ordered by file
// name. Routes that fail to parse are logged and skipped.
func (e *Extractor) Run(ctx context.Context, exportPath, routesDir string) (Summary, []RouteReport, error) {
	f, err := os.Open(exportPath)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("open export: %w", err)
	}
	kcal, records, err := TotalActiveEnergy(f)
	_ = f.Close()
	if err != nil {
		return Summary{}, nil, err
	}
	e.logger.Info("active energy extracted",
		zap.Float64("total_kcal", kcal),
		zap.Int("records", records),
	)

	paths, err := filepath.Glob(filepath.Join(routesDir, "*.gpx"))
	if err != nil {
		return Summary{}, nil, fmt.Errorf("list routes: %w", err)
	}
	sort.Strings(paths)

	// Each worker writes only its own slot; the mutex guards nothing but
	// the skip log ordering.
	slots := make([]*RouteReport, len(paths))
	var mu sync.Mutex

	indexes := make([]int, len(paths))
	for i := range paths {
		indexes[i] = i
	}

	err = workerpool.Process(ctx, e.workerCount, indexes, func(ctx context.Context, i int) error {
		rf, openErr := os.Open(paths[i])
		if openErr != nil {
			return fmt.Errorf("open route: %w", openErr)
		}
		report, parseErr := AnalyzeRoute(filepath.Base(paths[i]), rf)
		_ = rf.Close()
		if parseErr != nil {
			mu.Lock()
			e.logger.Warn("skipping unparseable route", zap.String("file", paths[i]), zap.Error(parseErr))
			mu.Unlock()
			return nil
		}
		slots[i] = &report
		return nil
	})
	if err != nil {
		return Summary{}, nil, err
	}

	reports := make([]RouteReport, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			reports = append(reports, *r)
		}
	}

	return e.summarize(kcal, records, reports), reports, nil
}

func (e *Extractor) summarize(kcal float64, records int, reports []RouteReport) Summary {
	joules := kcal * protocol.JoulesPerKcal

	s := Summary{
		TotalKcal:       kcal,
		TotalJoules:     joules,
		LifetimeVDC:     decimal.NewFromFloat(joules).Mul(protocol.AlphaJoulesToVDC).Round(10),
		RoutesProcessed: len(reports),
		EnergyRecords:   records,
	}
	for _, r := range reports {
		s.TotalDistanceMeters += r.DistanceM
		s.VelocityAnomalies += r.Anomalies
		if r.MaxSpeedMPS > s.MaxSpeedMPS {
			s.MaxSpeedMPS = r.MaxSpeedMPS
		}
	}
	s.TotalDistanceKm = s.TotalDistanceMeters / 1000
	s.MaxSpeedKMH = s.MaxSpeedMPS * 3.6
	return s
}

// WriteSummary persists the summary as an atomically replaced JSON file.
func WriteSummary(path string, s Summary) error {
	raw, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := atomicfile.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// WriteTextSummary persists the human-readable lifetime report.
func WriteTextSummary(path string, s Summary) error {
	var b strings.Builder
	b.WriteString("LIFETIME VDC SUMMARY\n")
	b.WriteString(strings.Repeat("=", 38) + "\n")
	fmt.Fprintf(&b, "Total Active kcal      : %.2f\n", s.TotalKcal)
	fmt.Fprintf(&b, "Total Joules           : %.0f\n", s.TotalJoules)
	fmt.Fprintf(&b, "Lifetime VDC           : %s\n", s.LifetimeVDC.StringFixed(10))
	fmt.Fprintf(&b, "Total Distance         : %.2f km\n", s.TotalDistanceKm)
	fmt.Fprintf(&b, "Max Speed Ever         : %.2f m/s (%.1f km/h)\n", s.MaxSpeedMPS, s.MaxSpeedKMH)
	fmt.Fprintf(&b, "Velocity Anomalies     : %d\n", s.VelocityAnomalies)
	fmt.Fprintf(&b, "GPX Workouts           : %d\n", s.RoutesProcessed)

	if err := atomicfile.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write text summary: %w", err)
	}
	return nil
}

// WriteVelocityReport writes the per-route CSV report.
func WriteVelocityReport(path string, reports []RouteReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"file", "distance_m", "max_speed_mps", "anomalies"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range reports {
		record := []string{
			r.File,
			strconv.FormatFloat(r.DistanceM, 'f', 2, 64),
			strconv.FormatFloat(r.MaxSpeedMPS, 'f', 3, 64),
			strconv.Itoa(r.Anomalies),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
