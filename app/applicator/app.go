package applicator

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/config"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/controller"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/db"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/policy"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/repo"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/rest"
	"go.uber.org/zap"
)

type App struct {
	logger *zap.SugaredLogger
	config *config.Config
}

func NewApp(logger *zap.SugaredLogger, config *config.Config) *App {
	return &App{
		logger: logger,
		config: config,
	}
}

func (a *App) Run() {
	var cfg = a.config
	var l = a.logger

	ctx, cancel := context.WithCancel(context.TODO())

	policies, err := loadPolicies(cfg)
	if err != nil {
		l.Fatalf("could not load policies err: %v", err)
	}

	namer := policy.NewNamer(cfg.NamePrefix, cfg.Environment, cfg.NameSuffix)

	dbConnections, err := db.NewConnection(cfg.DBPath)
	if err != nil {
		l.Fatalf("could not connect to database %v", err)
	}
	defer func() {
		if errDb := dbConnections.Close(); errDb != nil {
			l.Fatalf("could not close database %v", errDb)
		}
	}()

	dbRepo := repo.NewDBRepo(dbConnections)

	snapshotRepo := repo.NewSnapshotRepo(cfg.SnapshotRoot)

	backupClient, err := controller.NewBackupClient(ctx, cfg.EndpointURL, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.Region, cfg.SslVerify)
	if err != nil {
		l.Fatalf("could not create backup client %v", err)
	}

	iamClient, err := controller.NewIAMClient(ctx, cfg.EndpointURL, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.Region)
	if err != nil {
		l.Fatalf("could not create iam client %v", err)
	}

	var archive controller.SnapshotArchiveRepository
	if cfg.S3Enabled {
		archive, err = controller.NewS3Client(ctx, cfg.S3URL, cfg.S3AccessKeyID, cfg.S3AccessSecret, cfg.BucketName, cfg.S3Region, cfg.S3SslVerify)
		if err != nil {
			l.Fatalf("could not connect to s3 client %v", err)
		}
	}

	provisioner := controller.NewBackupProvisioner(policies, namer, backupClient, iamClient,
		dbRepo, snapshotRepo, archive, cfg.S3Enabled, cfg.RoleARN, l)

	endpointHandler := rest.NewEndpointHandler(provisioner, l)

	router := rest.NewRouter()

	server, err := rest.NewServer(cfg.Port, cfg.ShutdownTimeout, router, l, endpointHandler)
	if err != nil {
		l.Fatalf("failed to create server err: %v", err)
	}

	server.Run()
	defer func() {
		if err := server.Stop(); err != nil {
			l.Panicf("failed close server err: %v", err)
		}
		l.Info("server closed")
	}()

	a.gracefulShutdown(cancel)
}

func loadPolicies(cfg *config.Config) (*policy.Set, error) {
	if cfg.PolicyFile != "" {
		return policy.LoadDocument(cfg.PolicyFile, cfg.ProtectedEnvs, cfg.ColdStorageEnvs, cfg.SelectionTagKey)
	}
	protected := policy.DefaultProtectedEnvironments
	if cfg.ProtectedEnvs != nil {
		protected = cfg.ProtectedEnvs
	}
	coldStorage := policy.DefaultColdStorageEnvironments
	if cfg.ColdStorageEnvs != nil {
		coldStorage = cfg.ColdStorageEnvs
	}
	return policy.NewSet(policy.DefaultTiers(), protected, coldStorage, cfg.SelectionTagKey)
}

func (a *App) gracefulShutdown(cancel context.CancelFunc) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	<-ch
	signal.Stop(ch)
	cancel()
}
