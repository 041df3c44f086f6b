package reliability

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aristath/stockfolio/internal/database"
	"github.com/rs/zerolog"
)

const backupKeyPrefix = "stockfolio-backup-"

// BackupService checkpoints the portfolio database and uploads a snapshot of
// the database file to cloud storage.
type BackupService struct {
	db       *database.DB
	s3Client *S3Client
	log      zerolog.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, s3Client *S3Client, log zerolog.Logger) *BackupService {
	return &BackupService{
		db:       db,
		s3Client: s3Client,
		log:      log.With().Str("service", "backup").Logger(),
	}
}

// BackupNow checkpoints the WAL into the main database file and uploads it.
// Returns the object key of the stored backup.
func (s *BackupService) BackupNow(ctx context.Context) (string, error) {
	s.log.Info().Msg("Starting backup")
	startTime := time.Now()

	// Fold pending WAL pages into the main file so the snapshot is complete
	if err := s.db.WALCheckpoint("TRUNCATE"); err != nil {
		return "", fmt.Errorf("failed to checkpoint database: %w", err)
	}

	file, err := os.Open(s.db.Path())
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s%s.db", backupKeyPrefix, time.Now().UTC().Format("20060102-150405"))
	if err := s.s3Client.Upload(ctx, key, file); err != nil {
		return "", err
	}

	s.log.Info().
		Str("key", key).
		Dur("duration", time.Since(startTime)).
		Msg("Backup complete")

	return key, nil
}

// ListBackups returns the stored backups, newest first
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupObject, error) {
	return s.s3Client.List(ctx, backupKeyPrefix)
}
