package output

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"mission-copilot/internal/logging"
	"mission-copilot/internal/mission"
)

// Default table names.
const (
	DefaultTrackTable   = "mission_track_points"
	DefaultSummaryTable = "mission_summaries"
)

type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter stores track points and mission summaries in GreptimeDB.
type GreptimeDBWriter struct {
	client       greptimeClient
	trackTable   string
	summaryTable string
	timeout      time.Duration
	log          *slog.Logger
}

// GreptimeOptions configures NewGreptimeDBWriter.
type GreptimeOptions struct {
	Endpoint     string // host or host:port
	Database     string
	TrackTable   string
	SummaryTable string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// NewGreptimeDBWriter dials GreptimeDB through the ingester client.
func NewGreptimeDBWriter(opts GreptimeOptions) (*GreptimeDBWriter, error) {
	host, port, err := splitEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}
	cfg := greptime.NewConfig(host).WithDatabase(opts.Database)
	if port > 0 {
		cfg = cfg.WithPort(port)
	}
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	return newGreptimeDBWriter(client, opts), nil
}

func newGreptimeDBWriter(client greptimeClient, opts GreptimeOptions) *GreptimeDBWriter {
	w := &GreptimeDBWriter{
		client:       client,
		trackTable:   opts.TrackTable,
		summaryTable: opts.SummaryTable,
		timeout:      opts.Timeout,
		log:          opts.Logger,
	}
	if w.trackTable == "" {
		w.trackTable = DefaultTrackTable
	}
	if w.summaryTable == "" {
		w.summaryTable = DefaultSummaryTable
	}
	if w.timeout <= 0 {
		w.timeout = 10 * time.Second
	}
	if w.log == nil {
		w.log = logging.New()
	}
	return w
}

func splitEndpoint(endpoint string) (string, int, error) {
	if endpoint == "" {
		return "", 0, fmt.Errorf("greptime endpoint is empty")
	}
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		// no port given
		return endpoint, 0, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid greptime port %q: %w", portStr, err)
	}
	return host, port, nil
}

// WritePlan inserts the summary row and every track point of the plan.
func (w *GreptimeDBWriter) WritePlan(p *mission.Plan) error {
	summary, err := w.summaryTableFor(p.SummaryRow())
	if err != nil {
		return err
	}
	tracks, err := w.trackTableFor(p.TrackPointRows())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	resp, err := w.client.Write(ctx, summary, tracks)
	if err != nil {
		w.log.Error("greptime write failed", "mission_id", p.ID, "err", err)
		return fmt.Errorf("greptime write: %w", err)
	}
	w.log.Debug("greptime write", "mission_id", p.ID, "affected_rows", resp.GetAffectedRows().GetValue())
	return nil
}

func (w *GreptimeDBWriter) trackTableFor(rows []mission.TrackPointRow) (*table.Table, error) {
	tbl, err := table.New(w.trackTable)
	if err != nil {
		return nil, err
	}
	if err := addColumns(tbl,
		tag("mission_id", types.STRING),
		tag("satellite", types.INT64),
		field("seq", types.INT64),
		field("lat", types.FLOAT64),
		field("lon", types.FLOAT64),
		field("color", types.STRING),
		timeIndex("ts"),
	); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := tbl.AddRow(r.MissionID, int64(r.Satellite), int64(r.Seq), r.Lat, r.Lon, r.Color, r.Timestamp); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func (w *GreptimeDBWriter) summaryTableFor(r mission.SummaryRow) (*table.Table, error) {
	tbl, err := table.New(w.summaryTable)
	if err != nil {
		return nil, err
	}
	if err := addColumns(tbl,
		tag("mission_id", types.STRING),
		field("name", types.STRING),
		field("region", types.STRING),
		field("altitude_km", types.FLOAT64),
		field("inclination_deg", types.FLOAT64),
		field("satellites", types.INT64),
		field("period_minutes", types.FLOAT64),
		field("swath_width_km", types.FLOAT64),
		field("coverage_radius_m", types.FLOAT64),
		field("daily_passes", types.INT64),
		field("coverage_percent", types.INT64),
		field("revisit_minutes", types.FLOAT64),
		field("revisit_time", types.STRING),
		field("stations", types.INT64),
		timeIndex("ts"),
	); err != nil {
		return nil, err
	}
	err = tbl.AddRow(
		r.MissionID, r.Name, r.Region,
		r.AltitudeKm, r.InclinationDeg, int64(r.Satellites),
		r.PeriodMinutes, r.SwathWidthKm, r.CoverageRadiusM,
		int64(r.DailyPasses), int64(r.CoveragePercent),
		r.RevisitMinutes, r.RevisitTime, int64(r.Stations),
		r.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return tbl, nil
}

type column struct {
	name string
	typ  types.ColumnType
	kind gpb.SemanticType
}

func tag(name string, typ types.ColumnType) column {
	return column{name, typ, gpb.SemanticType_TAG}
}

func field(name string, typ types.ColumnType) column {
	return column{name, typ, gpb.SemanticType_FIELD}
}

func timeIndex(name string) column {
	return column{name, types.TIMESTAMP_MILLISECOND, gpb.SemanticType_TIMESTAMP}
}

func addColumns(tbl *table.Table, cols ...column) error {
	for _, c := range cols {
		var err error
		switch c.kind {
		case gpb.SemanticType_TAG:
			err = tbl.AddTagColumn(c.name, c.typ)
		case gpb.SemanticType_TIMESTAMP:
			err = tbl.AddTimestampColumn(c.name, c.typ)
		default:
			err = tbl.AddFieldColumn(c.name, c.typ)
		}
		if err != nil {
			return fmt.Errorf("column %s: %w", c.name, err)
		}
	}
	return nil
}
