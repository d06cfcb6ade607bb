package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/db"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
)

type DBRepository interface {
	UpdateRun(ctx context.Context, run entity.Run) error
	AddResource(ctx context.Context, resource entity.Resource) error
	SelectRun(ctx context.Context, runID string) (entity.Run, error)
	SelectResources(ctx context.Context, runID string) ([]entity.Resource, error)
	LatestRun(ctx context.Context, environment string, runType string) (entity.Run, error)
	RemoveRun(ctx context.Context, runID string) error
}

var ErrNotFound = errors.New("sql: no rows in result set")
var ErrNoRuns = errors.New("no runs found")

type DBRepo struct {
	db *db.Db
}

func NewDBRepo(db *db.Db) DBRepository {
	return &DBRepo{
		db: db,
	}
}

func (d *DBRepo) UpdateRun(ctx context.Context, run entity.Run) error {
	upsertQuery := `
		insert into runs (run_id, type, status, environment, err, snapshot_path, created_at)
		values ($1, $2, $3, $4, $5, $6, COALESCE(NULLIF($7, ''), datetime('now')))
		on conflict(run_id) do update set
			type          = excluded.type,
			status        = excluded.status,
			environment   = excluded.environment,
			err           = excluded.err,
			snapshot_path = COALESCE(NULLIF(excluded.snapshot_path, ''), runs.snapshot_path);
	`

	_, err := d.db.WriterDB.ExecContext(
		ctx, upsertQuery,
		run.RunID, run.Type, run.Status, run.Environment, run.Err,
		run.SnapshotPath, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating run status: %w", err)
	}
	return nil
}

func (d *DBRepo) AddResource(ctx context.Context, resource entity.Resource) error {
	upsertQuery := `
		insert into resources (run_id, tier, kind, name, arn)
		values ($1, $2, $3, $4, $5)
		on conflict(run_id, kind, name) do update set
			tier = excluded.tier,
			arn  = COALESCE(NULLIF(excluded.arn, ''), resources.arn);
	`

	_, err := d.db.WriterDB.ExecContext(
		ctx, upsertQuery,
		resource.RunID, resource.Tier, resource.Kind, resource.Name, resource.ARN,
	)
	if err != nil {
		return fmt.Errorf("error adding resource: %w", err)
	}
	return nil
}

func (d *DBRepo) SelectRun(ctx context.Context, runID string) (entity.Run, error) {
	var run entity.Run
	query := `select * from runs where run_id = $1`

	err := d.db.ReaderDB.QueryRowxContext(ctx, query, runID).StructScan(&run)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Run{}, fmt.Errorf("no run found with run_id %s: %w", runID, ErrNotFound)
		}
		return entity.Run{}, fmt.Errorf("error getting run: %w", err)
	}
	return run, nil
}

func (d *DBRepo) SelectResources(ctx context.Context, runID string) ([]entity.Resource, error) {
	var resources []entity.Resource
	query := `select * from resources where run_id = $1 order by tier, kind, name`

	if err := d.db.ReaderDB.SelectContext(ctx, &resources, query, runID); err != nil {
		return nil, fmt.Errorf("error getting resources: %w", err)
	}
	return resources, nil
}

func (d *DBRepo) LatestRun(ctx context.Context, environment string, runType string) (entity.Run, error) {
	var run entity.Run
	query := `select * from runs where environment = $1 and type = $2 order by created_at desc limit 1`

	err := d.db.ReaderDB.QueryRowxContext(ctx, query, environment, runType).StructScan(&run)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Run{}, fmt.Errorf("no %s run for environment %s: %w", runType, environment, ErrNoRuns)
		}
		return entity.Run{}, fmt.Errorf("error getting latest run: %w", err)
	}
	return run, nil
}

func (d *DBRepo) RemoveRun(ctx context.Context, runID string) error {
	deleteResources := `delete from resources where run_id = $1`
	if _, err := d.db.WriterDB.ExecContext(ctx, deleteResources, runID); err != nil {
		return fmt.Errorf("unable to delete resources of run %s: %v", runID, err)
	}

	deleteRun := `delete from runs where run_id = $1`
	res, err := d.db.WriterDB.ExecContext(ctx, deleteRun, runID)
	if err != nil {
		return fmt.Errorf("unable to delete run %s: %v", runID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to delete run %s: %v", runID, err)
	}
	if rows == 0 {
		return ErrNoRuns
	}
	return nil
}
